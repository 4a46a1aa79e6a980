package costcalc

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodcost-backend/internal/domain"
	"github.com/heartmarshall/prodcost-backend/internal/observability"
	"github.com/heartmarshall/prodcost-backend/internal/timeacct"
)

// ElapsedFilter narrows an elapsed-time query. The zero value covers every
// process and every day.
type ElapsedFilter struct {
	ProcessNumber *int
	// OnDate keeps only events of this calendar day in the configured
	// location. The filter runs before pairing, so an interval crossing
	// midnight contributes nothing.
	OnDate *time.Time
}

// Elapsed returns the elapsed minutes of a work plan, per process and in
// total. Malformed event sequences are logged and counted, not returned as
// errors.
func (s *Service) Elapsed(ctx context.Context, workPlanID uuid.UUID, f ElapsedFilter) (timeacct.Result, error) {
	if _, err := s.plans.GetByID(ctx, workPlanID); err != nil {
		return timeacct.Result{}, fmt.Errorf("get work plan: %w", err)
	}
	return s.elapsed(ctx, workPlanID, f)
}

// ElapsedForBatch returns the elapsed minutes of the batch's work plan.
func (s *Service) ElapsedForBatch(ctx context.Context, batchID uuid.UUID, f ElapsedFilter) (timeacct.Result, error) {
	batch, err := s.plans.GetBatch(ctx, batchID)
	if err != nil {
		return timeacct.Result{}, fmt.Errorf("get batch: %w", err)
	}
	return s.elapsed(ctx, batch.WorkPlanID, f)
}

func (s *Service) elapsed(ctx context.Context, workPlanID uuid.UUID, f ElapsedFilter) (timeacct.Result, error) {
	events, err := s.events.List(ctx, workPlanID, domain.ProcessEventFilter{
		ProcessNumber: f.ProcessNumber,
		OnDate:        f.OnDate,
		Location:      s.cfg.Location,
	})
	if err != nil {
		return timeacct.Result{}, fmt.Errorf("list process events: %w", err)
	}

	res := timeacct.Compute(events)
	s.reportAnomalies(ctx, workPlanID, res.Anomalies)
	return res, nil
}

func (s *Service) reportAnomalies(ctx context.Context, workPlanID uuid.UUID, anomalies []timeacct.Anomaly) {
	for _, a := range anomalies {
		observability.TimeAnomalies.WithLabelValues(string(a.Kind)).Inc()

		attrs := []any{
			slog.String("work_plan_id", workPlanID.String()),
			slog.String("kind", string(a.Kind)),
			slog.Time("at", a.At),
		}
		if a.ProcessNumber != nil {
			attrs = append(attrs, slog.Int("process_number", *a.ProcessNumber))
		}
		s.log.WarnContext(ctx, "malformed process event sequence", attrs...)
	}
}
