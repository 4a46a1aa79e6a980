package production

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/prodcost-backend/internal/domain"
)

// LogProcessEvent appends one start/stop transition to the work plan's
// process log. Events are never edited; a mistaken event is corrected by
// logging the missing counterpart.
func (s *Service) LogProcessEvent(ctx context.Context, input LogProcessEventInput) (domain.ProcessEvent, error) {
	if err := input.Validate(); err != nil {
		return domain.ProcessEvent{}, err
	}

	loggedAt := input.LoggedAt
	if loggedAt.IsZero() {
		loggedAt = s.now()
	}

	ev, err := s.events.Append(ctx, domain.ProcessEvent{
		WorkPlanID:    input.WorkPlanID,
		ProcessNumber: input.ProcessNumber,
		Status:        input.Status,
		LoggedAt:      loggedAt.UTC(),
		Note:          trimOrNil(input.Note),
	})
	if err != nil {
		return domain.ProcessEvent{}, fmt.Errorf("append process event: %w", err)
	}

	attrs := []any{
		slog.String("work_plan_id", ev.WorkPlanID.String()),
		slog.String("status", ev.Status.String()),
	}
	if ev.ProcessNumber != nil {
		attrs = append(attrs, slog.Int("process_number", *ev.ProcessNumber))
	}
	s.log.DebugContext(ctx, "process event logged", attrs...)

	return ev, nil
}

// ListProcessEvents returns the work plan's events ordered by time. A filter
// without Location uses the service's production time zone.
func (s *Service) ListProcessEvents(ctx context.Context, workPlanID uuid.UUID, filter domain.ProcessEventFilter) ([]domain.ProcessEvent, error) {
	if _, err := s.plans.GetByID(ctx, workPlanID); err != nil {
		return nil, fmt.Errorf("get work plan: %w", err)
	}

	if filter.Location == nil {
		filter.Location = s.loc
	}

	events, err := s.events.List(ctx, workPlanID, filter)
	if err != nil {
		return nil, fmt.Errorf("list process events: %w", err)
	}
	return events, nil
}
