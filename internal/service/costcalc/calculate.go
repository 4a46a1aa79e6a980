package costcalc

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodcost-backend/internal/costing"
	"github.com/heartmarshall/prodcost-backend/internal/domain"
	"github.com/heartmarshall/prodcost-backend/internal/observability"
	"github.com/heartmarshall/prodcost-backend/internal/timeacct"
)

// Calculation is the outcome of one CalculateCosts call.
type Calculation struct {
	Summary domain.CostSummary
	// Changed is false when the stored summary already carried these
	// figures; the row, including CalculatedAt, was left untouched.
	Changed bool
	// Anomalies are the malformed process event sequences that contributed
	// zero minutes to TimeUsedMinutes.
	Anomalies []timeacct.Anomaly
}

// CalculateCosts derives and stores the cost summary of one batch. Every
// read and the upsert run in one transaction with the batch row locked, so
// concurrent calculations of the same batch serialize and a failure leaves
// the previous summary intact. Transient store failures are returned as
// domain.ErrTransient without retrying.
func (s *Service) CalculateCosts(ctx context.Context, batchID uuid.UUID) (Calculation, error) {
	start := time.Now()

	var calc Calculation
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		batch, err := s.plans.GetBatchForUpdate(txCtx, batchID)
		if err != nil {
			return fmt.Errorf("get batch: %w", err)
		}

		planMD, err := s.plans.GetMetadata(txCtx, batchID)
		if err != nil {
			return fmt.Errorf("get work plan metadata: %w", err)
		}
		md, err := costing.ResolveMetadata(*batch, planMD)
		if err != nil {
			return err
		}

		materials, err := s.materials.ListByBatch(txCtx, batchID)
		if err != nil {
			return fmt.Errorf("list material usage: %w", err)
		}

		result, err := s.results.GetByBatch(txCtx, batchID)
		if err != nil {
			return fmt.Errorf("get production result: %w", err)
		}

		events, err := s.events.List(txCtx, batch.WorkPlanID, domain.ProcessEventFilter{Location: s.cfg.Location})
		if err != nil {
			return fmt.Errorf("list process events: %w", err)
		}
		elapsed := timeacct.Compute(events)

		summary, err := costing.Aggregate(costing.Input{
			Batch:           *batch,
			Metadata:        md,
			Materials:       materials,
			Result:          result,
			TimeUsedMinutes: elapsed.TotalMinutes,
		}, s.cfg.Params)
		if err != nil {
			return err
		}
		if units := costing.Units(materials); len(units) > 1 {
			s.log.WarnContext(ctx, "mixed material units",
				slog.String("batch_id", batchID.String()),
				slog.String("units", strings.Join(units, ",")),
				slog.String("used", summary.InputMaterialUnit),
			)
		}

		stored, changed, err := s.summaries.Upsert(txCtx, summary)
		if err != nil {
			return fmt.Errorf("upsert cost summary: %w", err)
		}

		if changed {
			if err := s.audit.Log(txCtx, domain.AuditRecord{
				ActorID:    actorFromCtx(ctx),
				EntityType: domain.EntityTypeCostSummary,
				EntityID:   &batchID,
				Action:     domain.AuditActionRecalculate,
				Changes: map[string]any{
					"material_cost":     stored.MaterialCost.String(),
					"output_qty":        stored.OutputQty.String(),
					"output_unit_cost":  stored.OutputUnitCost.String(),
					"time_used_minutes": stored.TimeUsedMinutes,
				},
			}); err != nil {
				return fmt.Errorf("audit log: %w", err)
			}
		}

		calc = Calculation{Summary: stored, Changed: changed, Anomalies: elapsed.Anomalies}
		return nil
	})
	observability.CostCalculationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		observability.CostCalculations.WithLabelValues(observability.OutcomeFailed).Inc()
		return Calculation{}, err
	}

	s.reportAnomalies(ctx, calc.Summary.WorkPlanID, calc.Anomalies)

	outcome := observability.OutcomeUnchanged
	if calc.Changed {
		outcome = observability.OutcomeChanged
	}
	observability.CostCalculations.WithLabelValues(outcome).Inc()

	s.log.InfoContext(ctx, "cost summary calculated",
		slog.String("batch_id", batchID.String()),
		slog.Bool("changed", calc.Changed),
		slog.String("material_cost", calc.Summary.MaterialCost.String()),
		slog.String("output_unit_cost", calc.Summary.OutputUnitCost.String()),
		slog.Int64("time_used_minutes", calc.Summary.TimeUsedMinutes),
	)

	return calc, nil
}

// GetCostSummary returns the stored summary of a batch.
func (s *Service) GetCostSummary(ctx context.Context, batchID uuid.UUID) (*domain.CostSummary, error) {
	summary, err := s.summaries.GetByBatch(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("get cost summary: %w", err)
	}
	return summary, nil
}

// ListCostSummaries returns the stored summaries of jobs produced on day.
func (s *Service) ListCostSummaries(ctx context.Context, day time.Time) ([]domain.CostSummary, error) {
	summaries, err := s.summaries.ListByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("list cost summaries: %w", err)
	}
	return summaries, nil
}
