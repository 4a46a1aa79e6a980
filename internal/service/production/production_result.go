package production

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodcost-backend/internal/domain"
)

// ReplaceProductionResult supersedes the batch's output quantities.
func (s *Service) ReplaceProductionResult(ctx context.Context, input ReplaceProductionResultInput) (domain.ProductionResult, error) {
	if err := input.Validate(); err != nil {
		return domain.ProductionResult{}, err
	}
	input = input.normalize()

	recordedAt := input.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = s.now()
	}

	var stored domain.ProductionResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.plans.GetBatch(txCtx, input.BatchID); err != nil {
			return fmt.Errorf("get batch: %w", err)
		}

		var replaceErr error
		stored, replaceErr = s.results.Replace(txCtx, input.BatchID, domain.ProductionResult{
			BatchID:       input.BatchID,
			GoodQty:       input.GoodQty,
			DefectQty:     input.DefectQty,
			Unit:          input.Unit,
			SecondaryQty:  input.SecondaryQty,
			SecondaryUnit: input.SecondaryUnit,
			RecordedAt:    recordedAt.UTC(),
		})
		if replaceErr != nil {
			return fmt.Errorf("replace production result: %w", replaceErr)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorFromCtx(ctx),
			EntityType: domain.EntityTypeProductionResult,
			EntityID:   &input.BatchID,
			Action:     domain.AuditActionReplace,
			Changes: map[string]any{
				"good_qty":   stored.GoodQty.String(),
				"defect_qty": stored.DefectQty.String(),
				"unit":       stored.Unit,
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.ProductionResult{}, err
	}

	s.log.InfoContext(ctx, "production result replaced",
		slog.String("batch_id", input.BatchID.String()),
		slog.String("good_qty", stored.GoodQty.String()),
	)

	return stored, nil
}

// GetProductionResult returns the batch's current result. Returns
// domain.ErrNotFound when the batch exists but has no result yet.
func (s *Service) GetProductionResult(ctx context.Context, batchID uuid.UUID) (*domain.ProductionResult, error) {
	if _, err := s.plans.GetBatch(ctx, batchID); err != nil {
		return nil, fmt.Errorf("get batch: %w", err)
	}

	res, err := s.results.GetByBatch(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("get production result: %w", err)
	}
	if res == nil {
		return nil, fmt.Errorf("production result of batch %s: %w", batchID, domain.ErrNotFound)
	}
	return res, nil
}
