package analyzer

import (
	"time"

	"github.com/alexanderramin/lifedash/internal/domain"
)

// RateWindowDays is how far back habit and routine history counts.
const RateWindowDays = 30

func inWindow(day, today time.Time) bool {
	from := today.AddDate(0, 0, -(RateWindowDays - 1))
	return !day.Before(from) && !day.After(today)
}

// HabitConsistency is the percentage of recorded days in the window on which
// the habit was completed. Several check-ins on one day count as one day.
func HabitConsistency(h domain.Habit, now time.Time) (float64, bool) {
	loc := now.Location()
	today := domain.StartOfDay(now, loc)
	days := make(map[time.Time]bool, len(h.History))
	for _, ci := range h.History {
		day := domain.CalendarDay(ci.Date, loc)
		if !inWindow(day, today) {
			continue
		}
		days[day] = days[day] || ci.Completed
	}
	if len(days) == 0 {
		return 0, false
	}
	done := 0
	for _, completed := range days {
		if completed {
			done++
		}
	}
	return float64(done) / float64(len(days)) * 100, true
}

// RoutineExecution is the mean completion percentage over executions in the
// window. Executions without items are ignored.
func RoutineExecution(r domain.Routine, now time.Time) (float64, bool) {
	loc := now.Location()
	today := domain.StartOfDay(now, loc)
	var rate Rate
	for _, ex := range r.Executions {
		if ex.TotalItems <= 0 || !inWindow(domain.CalendarDay(ex.Date, loc), today) {
			continue
		}
		completed := min(max(ex.CompletedItems, 0), ex.TotalItems)
		rate.add(float64(completed) / float64(ex.TotalItems) * 100)
	}
	return rate.Average()
}
