// Package material implements material usage persistence using PostgreSQL.
// Records of a batch are superseded as a set, never patched.
package material

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/prodcost-backend/internal/adapter/postgres"
	"github.com/heartmarshall/prodcost-backend/internal/domain"
)

var columns = []string{
	"id", "batch_id", "material_id", "material_name", "planned_qty",
	"actual_qty", "unit", "unit_price", "total_cost", "weighed_at",
}

// Repo provides material usage persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new material usage repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListByBatch returns the current usage records of a batch ordered by
// weighing time. Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByBatch(ctx context.Context, batchID uuid.UUID) ([]domain.MaterialUsage, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("material_usages").
		Where(squirrel.Eq{"batch_id": batchID}).
		OrderBy("weighed_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list material_usages: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "material_usages of batch", batchID)
	}
	defer rows.Close()

	usages := []domain.MaterialUsage{}
	for rows.Next() {
		m, err := scanUsage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan material_usage: %w", err)
		}
		usages = append(usages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "material_usages of batch", batchID)
	}

	return usages, nil
}

// Replace deletes every record of the batch and inserts records in their
// place. Call it inside a transaction so readers never see the gap.
func (r *Repo) Replace(ctx context.Context, batchID uuid.UUID, records []domain.MaterialUsage) ([]domain.MaterialUsage, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	del, args, err := postgres.Builder().
		Delete("material_usages").
		Where(squirrel.Eq{"batch_id": batchID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete material_usages: %w", err)
	}
	if _, err := q.Exec(ctx, del, args...); err != nil {
		return nil, postgres.MapError(err, "material_usages of batch", batchID)
	}

	if len(records) == 0 {
		return []domain.MaterialUsage{}, nil
	}

	ins := postgres.Builder().
		Insert("material_usages").
		Columns(columns...).
		Suffix("RETURNING " + joinColumns())
	for _, m := range records {
		if m.ID == uuid.Nil {
			m.ID = uuid.New()
		}
		ins = ins.Values(
			m.ID, batchID, m.MaterialID, m.MaterialName, m.PlannedQty,
			m.ActualQty, m.Unit, m.UnitPrice, nullDecimal(m.TotalCost), weighedAt(m),
		)
	}

	query, args, err := ins.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert material_usages: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "material_usages of batch", batchID)
	}
	defer rows.Close()

	stored := make([]domain.MaterialUsage, 0, len(records))
	for rows.Next() {
		m, err := scanUsage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan material_usage: %w", err)
		}
		stored = append(stored, m)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "material_usages of batch", batchID)
	}

	return stored, nil
}

func scanUsage(row pgx.Row) (domain.MaterialUsage, error) {
	var (
		m     domain.MaterialUsage
		total decimal.NullDecimal
	)
	err := row.Scan(
		&m.ID, &m.BatchID, &m.MaterialID, &m.MaterialName, &m.PlannedQty,
		&m.ActualQty, &m.Unit, &m.UnitPrice, &total, &m.WeighedAt,
	)
	if err != nil {
		return domain.MaterialUsage{}, err
	}
	if total.Valid {
		m.TotalCost = &total.Decimal
	}
	return m, nil
}
