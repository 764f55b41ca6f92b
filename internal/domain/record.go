package domain

import (
	"fmt"
	"time"
)

// TimeOfDay is an optional wall-clock due time attached to a due date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Record holds the fields every trackable entity shares.
type Record struct {
	ID       string
	Title    string
	Status   Status
	Rank     Rank
	LifeArea LifeArea

	// Temporal
	DueDate *time.Time
	DueTime *TimeOfDay

	Recurring         bool
	RecurrencePattern string

	RescheduleCount int

	CreatedAt   time.Time
	CompletedAt *time.Time
	UpdatedAt   time.Time
}

// IsActive reports whether the record takes part in active aggregations.
func (r Record) IsActive() bool {
	return !r.Status.IsTerminal()
}

// DueAt combines the due date and optional due time in loc. Without a due
// time the result is the start of the due day.
func (r Record) DueAt(loc *time.Location) (time.Time, bool) {
	if r.DueDate == nil {
		return time.Time{}, false
	}
	day := CalendarDay(*r.DueDate, loc)
	if r.DueTime != nil {
		day = day.Add(time.Duration(r.DueTime.Hour)*time.Hour + time.Duration(r.DueTime.Minute)*time.Minute)
	}
	return day, true
}
