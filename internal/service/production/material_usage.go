package production

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/prodcost-backend/internal/domain"
)

// ReplaceMaterialUsage supersedes the batch's weighing records as one set.
// The stored cost summary is not touched; it is refreshed by the next cost
// calculation.
func (s *Service) ReplaceMaterialUsage(ctx context.Context, input ReplaceMaterialUsageInput) ([]domain.MaterialUsage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	input = input.normalize()

	now := s.now().UTC()
	records := make([]domain.MaterialUsage, len(input.Records))
	totalQty := decimal.Zero
	for i, r := range input.Records {
		weighedAt := r.WeighedAt
		if weighedAt.IsZero() {
			weighedAt = now
		}
		records[i] = domain.MaterialUsage{
			BatchID:      input.BatchID,
			MaterialID:   r.MaterialID,
			MaterialName: r.MaterialName,
			PlannedQty:   r.PlannedQty,
			ActualQty:    r.ActualQty,
			Unit:         r.Unit,
			UnitPrice:    r.UnitPrice,
			TotalCost:    r.TotalCost,
			WeighedAt:    weighedAt,
		}
		totalQty = totalQty.Add(r.ActualQty)
	}

	var stored []domain.MaterialUsage
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.plans.GetBatch(txCtx, input.BatchID); err != nil {
			return fmt.Errorf("get batch: %w", err)
		}

		var replaceErr error
		stored, replaceErr = s.materials.Replace(txCtx, input.BatchID, records)
		if replaceErr != nil {
			return fmt.Errorf("replace material usage: %w", replaceErr)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorFromCtx(ctx),
			EntityType: domain.EntityTypeMaterialUsage,
			EntityID:   &input.BatchID,
			Action:     domain.AuditActionReplace,
			Changes: map[string]any{
				"records":    len(records),
				"actual_qty": totalQty.String(),
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "material usage replaced",
		slog.String("batch_id", input.BatchID.String()),
		slog.Int("records", len(stored)),
	)

	return stored, nil
}

// ListMaterialUsage returns the batch's current weighing records.
func (s *Service) ListMaterialUsage(ctx context.Context, batchID uuid.UUID) ([]domain.MaterialUsage, error) {
	if _, err := s.plans.GetBatch(ctx, batchID); err != nil {
		return nil, fmt.Errorf("get batch: %w", err)
	}

	usage, err := s.materials.ListByBatch(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("list material usage: %w", err)
	}
	return usage, nil
}
