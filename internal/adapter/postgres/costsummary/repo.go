// Package costsummary implements cost summary persistence using PostgreSQL.
// There is at most one summary per batch; recalculation upserts it.
package costsummary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/prodcost-backend/internal/adapter/postgres"
	"github.com/heartmarshall/prodcost-backend/internal/domain"
)

// figureColumns are written by Upsert. calculated_at is maintained by the
// store and only moves when a figure changes.
var figureColumns = []string{
	"work_plan_id", "job_code", "job_name", "production_date",
	"input_material_qty", "input_material_unit", "material_cost",
	"output_qty", "output_unit_cost", "output_unit", "time_used_minutes",
	"operators_count", "labor_rate_per_hour", "loss_percent", "utility_percent",
}

// selectColumns reads numerics as text so they round-trip through
// decimal.NewFromString without float conversion.
var selectColumns = []string{
	"batch_id", "work_plan_id", "job_code", "job_name", "production_date",
	"input_material_qty::text", "input_material_unit", "material_cost::text",
	"output_qty::text", "output_unit_cost::text", "output_unit", "time_used_minutes",
	"operators_count", "labor_rate_per_hour::text", "loss_percent::text", "utility_percent::text",
	"calculated_at",
}

var upsertSuffix = buildUpsertSuffix()

func buildUpsertSuffix() string {
	sets := make([]string, 0, len(figureColumns)+1)
	current := make([]string, 0, len(figureColumns))
	excluded := make([]string, 0, len(figureColumns))
	for _, c := range figureColumns {
		sets = append(sets, c+" = EXCLUDED."+c)
		current = append(current, "cs."+c)
		excluded = append(excluded, "EXCLUDED."+c)
	}
	sets = append(sets, "calculated_at = now()")

	return "ON CONFLICT (batch_id) DO UPDATE SET " + strings.Join(sets, ", ") +
		" WHERE (" + strings.Join(current, ", ") + ") IS DISTINCT FROM (" + strings.Join(excluded, ", ") + ")"
}

// Repo provides cost summary persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new cost summary repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Upsert writes the summary of s.BatchID in one statement, replacing every
// figure of an existing row. When the stored figures already equal s the row
// is left untouched, calculated_at included, and changed is false. The
// stored row is returned in both cases.
func (r *Repo) Upsert(ctx context.Context, s domain.CostSummary) (stored domain.CostSummary, changed bool, err error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Insert("cost_summaries AS cs").
		Columns(append([]string{"batch_id"}, figureColumns...)...).
		Values(
			s.BatchID, s.WorkPlanID, s.JobCode, s.JobName, s.ProductionDate,
			s.InputMaterialQty, s.InputMaterialUnit, s.MaterialCost,
			s.OutputQty, s.OutputUnitCost, s.OutputUnit, s.TimeUsedMinutes,
			s.OperatorsCount, s.LaborRatePerHour, s.LossPercent, s.UtilityPercent,
		).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return domain.CostSummary{}, false, fmt.Errorf("build upsert cost_summary: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return domain.CostSummary{}, false, postgres.MapError(err, "cost_summary", s.BatchID)
	}

	stored, err = r.get(ctx, q, s.BatchID)
	if err != nil {
		return domain.CostSummary{}, false, err
	}

	return stored, tag.RowsAffected() > 0, nil
}

// GetByBatch returns the summary of a batch.
// Returns domain.ErrNotFound if it has not been calculated yet.
func (r *Repo) GetByBatch(ctx context.Context, batchID uuid.UUID) (*domain.CostSummary, error) {
	s, err := r.get(ctx, postgres.QuerierFromCtx(ctx, r.db), batchID)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListByDate returns the summaries of every batch produced on day, ordered
// by job code. Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByDate(ctx context.Context, day time.Time) ([]domain.CostSummary, error) {
	date := day.Format(time.DateOnly)

	query, args, err := postgres.Builder().
		Select(selectColumns...).
		From("cost_summaries").
		Where(squirrel.Expr("production_date = ?::date", date)).
		OrderBy("job_code", "batch_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list cost_summaries: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "cost_summaries on", date)
	}
	defer rows.Close()

	summaries := []domain.CostSummary{}
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cost_summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "cost_summaries on", date)
	}

	return summaries, nil
}

func (r *Repo) get(ctx context.Context, q postgres.Querier, batchID uuid.UUID) (domain.CostSummary, error) {
	query, args, err := postgres.Builder().
		Select(selectColumns...).
		From("cost_summaries").
		Where(squirrel.Eq{"batch_id": batchID}).
		ToSql()
	if err != nil {
		return domain.CostSummary{}, fmt.Errorf("build select cost_summary: %w", err)
	}

	s, err := scanSummary(q.QueryRow(ctx, query, args...))
	if err != nil {
		return domain.CostSummary{}, postgres.MapError(err, "cost_summary", batchID)
	}
	return s, nil
}

func scanSummary(row pgx.Row) (domain.CostSummary, error) {
	var (
		s                                  domain.CostSummary
		inputQty, materialCost, outputQty  string
		unitCost, laborRate, loss, utility string
		operators                          int32
	)
	err := row.Scan(
		&s.BatchID, &s.WorkPlanID, &s.JobCode, &s.JobName, &s.ProductionDate,
		&inputQty, &s.InputMaterialUnit, &materialCost,
		&outputQty, &unitCost, &s.OutputUnit, &s.TimeUsedMinutes,
		&operators, &laborRate, &loss, &utility,
		&s.CalculatedAt,
	)
	if err != nil {
		return domain.CostSummary{}, err
	}
	s.OperatorsCount = int(operators)

	for _, f := range []struct {
		dst *decimal.Decimal
		raw string
	}{
		{&s.InputMaterialQty, inputQty},
		{&s.MaterialCost, materialCost},
		{&s.OutputQty, outputQty},
		{&s.OutputUnitCost, unitCost},
		{&s.LaborRatePerHour, laborRate},
		{&s.LossPercent, loss},
		{&s.UtilityPercent, utility},
	} {
		d, err := decimal.NewFromString(f.raw)
		if err != nil {
			return domain.CostSummary{}, fmt.Errorf("parse numeric %q: %w", f.raw, err)
		}
		*f.dst = d
	}

	return s, nil
}
