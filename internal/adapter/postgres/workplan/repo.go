// Package workplan implements the work plan and production batch repository
// using PostgreSQL.
package workplan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/prodcost-backend/internal/adapter/postgres"
	"github.com/heartmarshall/prodcost-backend/internal/domain"
)

var (
	planColumns = []string{
		"id", "job_code", "job_name", "production_date", "planned_qty",
		"status", "created_at", "updated_at",
	}
	batchColumns = []string{
		"b.id", "b.work_plan_id", "b.batch_code", "b.job_code", "b.job_name",
		"b.production_date", "b.status", "b.created_at", "b.updated_at",
	}
)

// Repo provides work plan and batch persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new work plan repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Work plans
// ---------------------------------------------------------------------------

// Create inserts a work plan and returns the persisted row.
func (r *Repo) Create(ctx context.Context, plan domain.WorkPlan) (domain.WorkPlan, error) {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	if plan.Status == "" {
		plan.Status = domain.WorkPlanStatusPlanned
	}

	query, args, err := postgres.Builder().
		Insert("work_plans").
		Columns("id", "job_code", "job_name", "production_date", "planned_qty", "status").
		Values(plan.ID, plan.JobCode, plan.JobName, plan.ProductionDate, plan.PlannedQty, string(plan.Status)).
		Suffix("RETURNING " + joinColumns(planColumns)).
		ToSql()
	if err != nil {
		return domain.WorkPlan{}, fmt.Errorf("build insert work_plan: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...)
	created, err := scanPlan(row)
	if err != nil {
		return domain.WorkPlan{}, postgres.MapError(err, "work_plan", plan.ID)
	}
	return created, nil
}

// GetByID returns a work plan by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WorkPlan, error) {
	query, args, err := postgres.Builder().
		Select(planColumns...).
		From("work_plans").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select work_plan: %w", err)
	}

	plan, err := scanPlan(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "work_plan", id)
	}
	return &plan, nil
}

// GetMetadata returns the job metadata of the batch's parent work plan, or
// nil when the batch does not exist.
func (r *Repo) GetMetadata(ctx context.Context, batchID uuid.UUID) (*domain.JobMetadata, error) {
	query, args, err := postgres.Builder().
		Select("wp.job_code", "wp.job_name", "wp.production_date").
		From("production_batches b").
		Join("work_plans wp ON wp.id = b.work_plan_id").
		Where(squirrel.Eq{"b.id": batchID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select work_plan metadata: %w", err)
	}

	var md domain.JobMetadata
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).
		Scan(&md.JobCode, &md.JobName, &md.ProductionDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, postgres.MapError(err, "work_plan metadata for batch", batchID)
	}
	return &md, nil
}

// ---------------------------------------------------------------------------
// Batches
// ---------------------------------------------------------------------------

// CreateBatch inserts a batch. Returns domain.ErrNotFound when the work plan
// does not exist and domain.ErrAlreadyExists on a duplicate batch code.
func (r *Repo) CreateBatch(ctx context.Context, batch domain.Batch) (domain.Batch, error) {
	if batch.ID == uuid.Nil {
		batch.ID = uuid.New()
	}
	if batch.Status == "" {
		batch.Status = domain.BatchStatusOpen
	}

	query, args, err := postgres.Builder().
		Insert("production_batches AS b").
		Columns("id", "work_plan_id", "batch_code", "job_code", "job_name", "production_date", "status").
		Values(batch.ID, batch.WorkPlanID, batch.BatchCode, batch.JobCode, batch.JobName, batch.ProductionDate, string(batch.Status)).
		Suffix("RETURNING " + joinColumns(batchColumns)).
		ToSql()
	if err != nil {
		return domain.Batch{}, fmt.Errorf("build insert batch: %w", err)
	}

	created, err := scanBatch(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.Batch{}, postgres.MapError(err, "batch", batch.ID)
	}
	return created, nil
}

// GetBatch returns a batch by primary key.
func (r *Repo) GetBatch(ctx context.Context, id uuid.UUID) (*domain.Batch, error) {
	return r.getBatch(ctx, id, false)
}

// GetBatchForUpdate returns a batch and locks its row until the surrounding
// transaction ends. Concurrent cost calculations of one batch serialize here.
func (r *Repo) GetBatchForUpdate(ctx context.Context, id uuid.UUID) (*domain.Batch, error) {
	return r.getBatch(ctx, id, true)
}

func (r *Repo) getBatch(ctx context.Context, id uuid.UUID, lock bool) (*domain.Batch, error) {
	qb := postgres.Builder().
		Select(batchColumns...).
		From("production_batches b").
		Where(squirrel.Eq{"b.id": id})
	if lock {
		qb = qb.Suffix("FOR UPDATE")
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select batch: %w", err)
	}

	batch, err := scanBatch(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "batch", id)
	}
	return &batch, nil
}

// ListBatchesByDate returns the batches produced on day: the batch's own
// production date, or its work plan's when the batch has none.
func (r *Repo) ListBatchesByDate(ctx context.Context, day time.Time) ([]domain.Batch, error) {
	query, args, err := postgres.Builder().
		Select(batchColumns...).
		From("production_batches b").
		Join("work_plans wp ON wp.id = b.work_plan_id").
		Where(squirrel.Expr("COALESCE(b.production_date, wp.production_date) = ?::date", day.Format(time.DateOnly))).
		OrderBy("b.created_at", "b.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list batches: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "batches on", day.Format(time.DateOnly))
	}
	defer rows.Close()

	batches := []domain.Batch{}
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "batches on", day.Format(time.DateOnly))
	}

	return batches, nil
}
