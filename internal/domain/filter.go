package domain

import "time"

// ProcessEventFilter narrows a process event listing. The zero value selects
// every event of the work plan.
type ProcessEventFilter struct {
	// ProcessNumber restricts to one process station.
	ProcessNumber *int
	// OnDate restricts to events logged on this calendar day in Location.
	OnDate *time.Time
	// Location is the production site's time zone. nil means UTC.
	Location *time.Location
}
