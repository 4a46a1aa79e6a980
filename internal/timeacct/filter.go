package timeacct

import (
	"time"

	"github.com/samber/lo"

	"github.com/heartmarshall/prodcost-backend/internal/domain"
)

// DayBounds returns the half-open range [start, end) of the calendar day
// that contains the instant day as seen in loc. A nil loc means UTC.
func DayBounds(day time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := day.In(loc).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// FilterByDate keeps the events logged on the calendar day of day in loc.
// It must run before Compute: a start on one day and its stop on the next
// are both outside a single-day window, or only one of them is inside it.
func FilterByDate(events []domain.ProcessEvent, day time.Time, loc *time.Location) []domain.ProcessEvent {
	start, end := DayBounds(day, loc)
	return lo.Filter(events, func(e domain.ProcessEvent, _ int) bool {
		return !e.LoggedAt.Before(start) && e.LoggedAt.Before(end)
	})
}

// FilterByProcess keeps the events of one process number. A nil n selects
// the events without a process number.
func FilterByProcess(events []domain.ProcessEvent, n *int) []domain.ProcessEvent {
	key := keyOf(n)
	return lo.Filter(events, func(e domain.ProcessEvent, _ int) bool {
		return keyOf(e.ProcessNumber) == key
	})
}
