package costcalc

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// RecalcFailure is one batch that could not be recalculated.
type RecalcFailure struct {
	BatchID uuid.UUID
	Err     error
}

// RecalcReport summarizes a RecalculateDate run.
type RecalcReport struct {
	Date      time.Time
	Batches   int
	Changed   int
	Unchanged int
	Failures  []RecalcFailure
}

// RecalculateDate recalculates every batch produced on day. Batches run
// concurrently, each in its own transaction; a failing batch is recorded in
// the report and does not stop the others. The returned error is non-nil
// only when the batch listing fails or ctx is cancelled.
func (s *Service) RecalculateDate(ctx context.Context, day time.Time) (RecalcReport, error) {
	report := RecalcReport{Date: day}

	batches, err := s.plans.ListBatchesByDate(ctx, day)
	if err != nil {
		return report, fmt.Errorf("list batches: %w", err)
	}
	report.Batches = len(batches)

	changed := make([]bool, len(batches))
	failures := make([]error, len(batches))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.RecalcConcurrency)
	for i, b := range batches {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			calc, err := s.CalculateCosts(gctx, b.ID)
			if err != nil {
				failures[i] = err
				return nil
			}
			changed[i] = calc.Changed
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report, fmt.Errorf("recalculate %s: %w", day.Format(time.DateOnly), err)
	}

	for i, b := range batches {
		switch {
		case failures[i] != nil:
			report.Failures = append(report.Failures, RecalcFailure{BatchID: b.ID, Err: failures[i]})
			s.log.ErrorContext(ctx, "batch recalculation failed",
				slog.String("batch_id", b.ID.String()),
				slog.String("error", failures[i].Error()),
			)
		case changed[i]:
			report.Changed++
		default:
			report.Unchanged++
		}
	}

	s.log.InfoContext(ctx, "date recalculated",
		slog.String("date", day.Format(time.DateOnly)),
		slog.Int("batches", report.Batches),
		slog.Int("changed", report.Changed),
		slog.Int("failed", len(report.Failures)),
	)

	return report, nil
}
