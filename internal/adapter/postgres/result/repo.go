// Package result implements production result persistence using PostgreSQL.
// A batch has at most one current result; corrections replace it.
package result

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/prodcost-backend/internal/adapter/postgres"
	"github.com/heartmarshall/prodcost-backend/internal/domain"
)

const returning = "RETURNING id, batch_id, good_qty, defect_qty, unit, secondary_qty, secondary_unit, recorded_at"

// Repo provides production result persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new production result repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByBatch returns the current result of a batch, or nil when none has
// been recorded yet.
func (r *Repo) GetByBatch(ctx context.Context, batchID uuid.UUID) (*domain.ProductionResult, error) {
	query, args, err := postgres.Builder().
		Select("id", "batch_id", "good_qty", "defect_qty", "unit", "secondary_qty", "secondary_unit", "recorded_at").
		From("production_results").
		Where(squirrel.Eq{"batch_id": batchID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select production_result: %w", err)
	}

	res, err := scanResult(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, postgres.MapError(err, "production_result of batch", batchID)
	}
	return &res, nil
}

// Replace supersedes the batch's result: the previous row is deleted and the
// new one inserted. Call it inside a transaction.
func (r *Repo) Replace(ctx context.Context, batchID uuid.UUID, res domain.ProductionResult) (domain.ProductionResult, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	del, args, err := postgres.Builder().
		Delete("production_results").
		Where(squirrel.Eq{"batch_id": batchID}).
		ToSql()
	if err != nil {
		return domain.ProductionResult{}, fmt.Errorf("build delete production_result: %w", err)
	}
	if _, err := q.Exec(ctx, del, args...); err != nil {
		return domain.ProductionResult{}, postgres.MapError(err, "production_result of batch", batchID)
	}

	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	if res.RecordedAt.IsZero() {
		res.RecordedAt = time.Now().UTC()
	}

	var secondary decimal.NullDecimal
	if res.SecondaryQty != nil {
		secondary = decimal.NullDecimal{Decimal: *res.SecondaryQty, Valid: true}
	}

	query, args, err := postgres.Builder().
		Insert("production_results").
		Columns("id", "batch_id", "good_qty", "defect_qty", "unit", "secondary_qty", "secondary_unit", "recorded_at").
		Values(res.ID, batchID, res.GoodQty, res.DefectQty, res.Unit, secondary, res.SecondaryUnit, res.RecordedAt).
		Suffix(returning).
		ToSql()
	if err != nil {
		return domain.ProductionResult{}, fmt.Errorf("build insert production_result: %w", err)
	}

	stored, err := scanResult(q.QueryRow(ctx, query, args...))
	if err != nil {
		return domain.ProductionResult{}, postgres.MapError(err, "production_result of batch", batchID)
	}
	return stored, nil
}

func scanResult(row pgx.Row) (domain.ProductionResult, error) {
	var (
		res       domain.ProductionResult
		secondary decimal.NullDecimal
	)
	err := row.Scan(&res.ID, &res.BatchID, &res.GoodQty, &res.DefectQty, &res.Unit, &secondary, &res.SecondaryUnit, &res.RecordedAt)
	if err != nil {
		return domain.ProductionResult{}, err
	}
	if secondary.Valid {
		res.SecondaryQty = &secondary.Decimal
	}
	return res, nil
}
