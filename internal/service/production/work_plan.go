package production

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodcost-backend/internal/domain"
)

// CreateWorkPlan stores a new planned job.
func (s *Service) CreateWorkPlan(ctx context.Context, input CreateWorkPlanInput) (domain.WorkPlan, error) {
	if err := input.Validate(); err != nil {
		return domain.WorkPlan{}, err
	}
	input = input.normalize()

	var plan domain.WorkPlan
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		plan, createErr = s.plans.Create(txCtx, domain.WorkPlan{
			JobCode:        input.JobCode,
			JobName:        input.JobName,
			ProductionDate: input.ProductionDate,
			PlannedQty:     input.PlannedQty,
			Status:         domain.WorkPlanStatusPlanned,
		})
		if createErr != nil {
			return fmt.Errorf("create work plan: %w", createErr)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorFromCtx(ctx),
			EntityType: domain.EntityTypeWorkPlan,
			EntityID:   &plan.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"job_code":        map[string]any{"new": plan.JobCode},
				"production_date": map[string]any{"new": plan.ProductionDate.Format("2006-01-02")},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.WorkPlan{}, err
	}

	s.log.InfoContext(ctx, "work plan created",
		slog.String("work_plan_id", plan.ID.String()),
		slog.String("job_code", plan.JobCode),
	)

	return plan, nil
}

// GetWorkPlan returns a work plan by ID.
func (s *Service) GetWorkPlan(ctx context.Context, id uuid.UUID) (*domain.WorkPlan, error) {
	plan, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get work plan: %w", err)
	}
	return plan, nil
}

// CreateBatch opens a production batch under an existing work plan.
func (s *Service) CreateBatch(ctx context.Context, input CreateBatchInput) (domain.Batch, error) {
	if err := input.Validate(); err != nil {
		return domain.Batch{}, err
	}
	input = input.normalize()

	var batch domain.Batch
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		batch, createErr = s.plans.CreateBatch(txCtx, domain.Batch{
			WorkPlanID:     input.WorkPlanID,
			BatchCode:      input.BatchCode,
			JobCode:        input.JobCode,
			JobName:        input.JobName,
			ProductionDate: input.ProductionDate,
			Status:         domain.BatchStatusOpen,
		})
		if createErr != nil {
			return fmt.Errorf("create batch: %w", createErr)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorFromCtx(ctx),
			EntityType: domain.EntityTypeBatch,
			EntityID:   &batch.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"work_plan_id": map[string]any{"new": batch.WorkPlanID.String()},
				"batch_code":   map[string]any{"new": batch.BatchCode},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Batch{}, err
	}

	s.log.InfoContext(ctx, "batch created",
		slog.String("batch_id", batch.ID.String()),
		slog.String("work_plan_id", batch.WorkPlanID.String()),
		slog.String("batch_code", batch.BatchCode),
	)

	return batch, nil
}

// GetBatch returns a batch by ID.
func (s *Service) GetBatch(ctx context.Context, id uuid.UUID) (*domain.Batch, error) {
	batch, err := s.plans.GetBatch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return batch, nil
}
