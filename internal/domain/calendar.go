package domain

import "time"

// StartOfDay truncates t to midnight of its calendar day in loc.
// A nil loc uses t's own location.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return StartOfDay(a, loc).Equal(StartOfDay(b, loc))
}

// DaysBetween returns the number of calendar days from a to b in loc.
// It counts midnights, so DST shifts do not skew the result.
func DaysBetween(a, b time.Time, loc *time.Location) int {
	from := StartOfDay(a, loc)
	to := StartOfDay(b, loc)
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	fu := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	tu := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(tu.Sub(fu).Hours() / 24)
}

// CalendarDay reads t as a date: its year, month and day in its own location,
// placed at midnight in loc. Due dates and check-in dates are dates, not
// instants, so they must not shift when viewed from another zone.
func CalendarDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = t.Location()
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
