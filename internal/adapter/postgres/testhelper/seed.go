package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/prodcost-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Day returns midnight UTC of the given date.
func Day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SeedWorkPlan creates a work plan produced on day. Returns a filled domain.WorkPlan.
func SeedWorkPlan(t *testing.T, pool *pgxpool.Pool, day time.Time) domain.WorkPlan {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	plan := domain.WorkPlan{
		ID:             uuid.New(),
		JobCode:        "JOB-" + suffix,
		JobName:        "Test job " + suffix,
		ProductionDate: day,
		PlannedQty:     decimal.NewFromInt(100),
		Status:         domain.WorkPlanStatusPlanned,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO work_plans (id, job_code, job_name, production_date, planned_qty, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		plan.ID, plan.JobCode, plan.JobName, plan.ProductionDate, plan.PlannedQty, string(plan.Status), plan.CreatedAt, plan.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWorkPlan: %v", err)
	}

	return plan
}

// SeedBatch creates a batch of the work plan without job metadata of its own.
func SeedBatch(t *testing.T, pool *pgxpool.Pool, workPlanID uuid.UUID) domain.Batch {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	batch := domain.Batch{
		ID:         uuid.New(),
		WorkPlanID: workPlanID,
		BatchCode:  "B-" + uniqueSuffix(),
		Status:     domain.BatchStatusOpen,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO production_batches (id, work_plan_id, batch_code, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		batch.ID, batch.WorkPlanID, batch.BatchCode, string(batch.Status), batch.CreatedAt, batch.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBatch: %v", err)
	}

	return batch
}

// SeedProcessEvent appends one start/stop event for the work plan.
func SeedProcessEvent(t *testing.T, pool *pgxpool.Pool, workPlanID uuid.UUID, process *int, status domain.EventStatus, at time.Time) domain.ProcessEvent {
	t.Helper()
	ctx := context.Background()

	ev := domain.ProcessEvent{
		ID:            uuid.New(),
		WorkPlanID:    workPlanID,
		ProcessNumber: process,
		Status:        status,
		LoggedAt:      at.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO process_logs (id, work_plan_id, process_number, status, logged_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		ev.ID, ev.WorkPlanID, ev.ProcessNumber, string(ev.Status), ev.LoggedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProcessEvent: %v", err)
	}

	return ev
}

// SeedMaterialUsage inserts one weighing record for the batch.
func SeedMaterialUsage(t *testing.T, pool *pgxpool.Pool, batchID uuid.UUID, qty, price, unit string) domain.MaterialUsage {
	t.Helper()
	ctx := context.Background()

	m := domain.MaterialUsage{
		ID:         uuid.New(),
		BatchID:    batchID,
		MaterialID: "MAT-" + uniqueSuffix(),
		ActualQty:  decimal.RequireFromString(qty),
		PlannedQty: decimal.RequireFromString(qty),
		Unit:       unit,
		UnitPrice:  decimal.RequireFromString(price),
		WeighedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO material_usages (id, batch_id, material_id, planned_qty, actual_qty, unit, unit_price, weighed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.ID, m.BatchID, m.MaterialID, m.PlannedQty, m.ActualQty, m.Unit, m.UnitPrice, m.WeighedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMaterialUsage: %v", err)
	}

	return m
}

// SeedProductionResult stores the result of the batch.
func SeedProductionResult(t *testing.T, pool *pgxpool.Pool, batchID uuid.UUID, good, defect, unit string) domain.ProductionResult {
	t.Helper()
	ctx := context.Background()

	r := domain.ProductionResult{
		ID:         uuid.New(),
		BatchID:    batchID,
		GoodQty:    decimal.RequireFromString(good),
		DefectQty:  decimal.RequireFromString(defect),
		Unit:       unit,
		RecordedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO production_results (id, batch_id, good_qty, defect_qty, unit, recorded_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		r.ID, r.BatchID, r.GoodQty, r.DefectQty, r.Unit, r.RecordedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProductionResult: %v", err)
	}

	return r
}
