package importer

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/lifedash/internal/domain"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ValidationError carries every problem found in a snapshot.
type ValidationError struct {
	Errs []error
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "snapshot validation failed (%d errors):", len(e.Errs))
	for _, err := range e.Errs {
		b.WriteString("\n  - ")
		b.WriteString(err.Error())
	}
	return b.String()
}

func (e *ValidationError) Unwrap() []error { return e.Errs }

// ValidateSnapshot checks the schema before conversion and returns every
// error it finds rather than stopping at the first.
func ValidateSnapshot(schema *SnapshotSchema) []error {
	v := &validator{ids: make(map[string]string)}

	for i, c := range schema.Commitments {
		prefix := fmt.Sprintf("commitments[%d]", i)
		v.record(prefix, c.RecordImport)
		enum(v, prefix+".origin", c.Origin, domain.Origins)
	}
	for i, t := range schema.Tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)
		v.record(prefix, t.RecordImport)
		enum(v, prefix+".effort", t.Effort, domain.EffortTiers)
		for j, st := range t.Subtasks {
			if st.Title == "" {
				v.addf("%s.subtasks[%d].title is required", prefix, j)
			}
		}
	}
	for i, h := range schema.Habits {
		prefix := fmt.Sprintf("habits[%d]", i)
		v.record(prefix, h.RecordImport)
		v.habit(prefix, h)
	}
	for i, r := range schema.Routines {
		prefix := fmt.Sprintf("routines[%d]", i)
		v.record(prefix, r.RecordImport)
		v.routine(prefix, r)
	}

	var dominant []string
	for i, p := range schema.Priorities {
		prefix := fmt.Sprintf("priorities[%d]", i)
		v.record(prefix, p.RecordImport)
		enum(v, prefix+".horizon", p.Horizon, domain.Horizons)
		enum(v, prefix+".tier", p.Tier, domain.PriorityTiers)
		for j, id := range p.LinkedItems {
			if strings.TrimSpace(id) == "" {
				v.addf("%s.linked_items[%d] is empty", prefix, j)
			}
		}
		if st, ok := domain.ParseStatus(p.Status); p.Dominant && ok && !st.IsTerminal() {
			dominant = append(dominant, prefix)
		}
	}
	if len(dominant) > 1 {
		v.addf("%d priorities are marked dominant (%s); at most one active priority may be", len(dominant), strings.Join(dominant, ", "))
	}

	for i, h := range schema.Health {
		prefix := fmt.Sprintf("health[%d]", i)
		v.record(prefix, h.RecordImport)
		if h.Metric == "" {
			v.addf("%s.metric is required", prefix)
		}
		switch {
		case h.Score == nil:
			v.addf("%s.score is required", prefix)
		case math.IsNaN(*h.Score) || math.IsInf(*h.Score, 0):
			v.addf("%s.score must be a finite number", prefix)
		case *h.Score < 0 || *h.Score > 100:
			v.addf("%s.score %v must be between 0 and 100", prefix, *h.Score)
		}
		enum(v, prefix+".direction", h.Direction, []domain.Direction{domain.HigherIsBetter, domain.HigherIsWorse})
	}

	return v.errs
}

type validator struct {
	errs []error
	ids  map[string]string // id -> first field path
}

func (v *validator) addf(format string, args ...any) {
	v.errs = append(v.errs, fmt.Errorf(format, args...))
}

func (v *validator) record(prefix string, r RecordImport) {
	if r.ID != "" {
		if first, dup := v.ids[r.ID]; dup {
			v.addf("%s.id: duplicate id %q (first used by %s)", prefix, r.ID, first)
		} else {
			v.ids[r.ID] = prefix
		}
	}
	if strings.TrimSpace(r.Title) == "" {
		v.addf("%s.title is required", prefix)
	}
	if _, ok := domain.ParseStatus(r.Status); !ok {
		v.addf("%s.status: invalid value %q", prefix, r.Status)
	}
	if _, ok := domain.ParseRank(r.Priority); !ok {
		v.addf("%s.priority: invalid value %q", prefix, r.Priority)
	}
	enum(v, prefix+".life_area", r.LifeArea, domain.LifeAreas)

	if r.DueDate != nil {
		if _, err := time.Parse(dateLayout, *r.DueDate); err != nil {
			v.addf("%s.due_date: invalid date format %q (expected YYYY-MM-DD)", prefix, *r.DueDate)
		}
	}
	if r.DueTime != nil {
		if r.DueDate == nil {
			v.addf("%s.due_time requires due_date", prefix)
		}
		if _, err := time.Parse(timeLayout, *r.DueTime); err != nil {
			v.addf("%s.due_time: invalid time format %q (expected HH:MM)", prefix, *r.DueTime)
		}
	}
	if r.RescheduleCount != nil && *r.RescheduleCount < 0 {
		v.addf("%s.reschedule_count must not be negative", prefix)
	}
	v.timestamp(prefix+".created_at", r.CreatedAt)
	v.timestamp(prefix+".completed_at", r.CompletedAt)
	v.timestamp(prefix+".updated_at", r.UpdatedAt)
}

func (v *validator) timestamp(field string, s *string) {
	if s == nil {
		return
	}
	if _, err := time.Parse(time.RFC3339, *s); err != nil {
		v.addf("%s: invalid timestamp %q (expected RFC3339)", field, *s)
	}
}

func (v *validator) date(field, s string) {
	if _, err := time.Parse(dateLayout, s); err != nil {
		v.addf("%s: invalid date format %q (expected YYYY-MM-DD)", field, s)
	}
}

func (v *validator) habit(prefix string, h HabitImport) {
	current := domain.FirstOr(0, h.CurrentStreak)
	longest := domain.FirstOr(current, h.LongestStreak)
	if current < 0 || longest < 0 {
		v.addf("%s: streaks must not be negative", prefix)
	} else if longest < current {
		v.addf("%s: longest_streak (%d) must be >= current_streak (%d)", prefix, longest, current)
	}
	for j, ci := range h.History {
		v.date(fmt.Sprintf("%s.history[%d].date", prefix, j), ci.Date)
	}
}

func (v *validator) routine(prefix string, r RoutineImport) {
	for j, it := range r.Items {
		if it.Title == "" {
			v.addf("%s.items[%d].title is required", prefix, j)
		}
	}
	for j, ex := range r.Executions {
		field := fmt.Sprintf("%s.executions[%d]", prefix, j)
		v.date(field+".date", ex.Date)
		if ex.TotalItems < 0 || ex.CompletedItems < 0 {
			v.addf("%s: item counts must not be negative", field)
		} else if ex.CompletedItems > ex.TotalItems {
			v.addf("%s: completed_items (%d) must be <= total_items (%d)", field, ex.CompletedItems, ex.TotalItems)
		}
	}
}

// enum accepts an empty value; defaults are applied during conversion.
func enum[T ~string](v *validator, field, value string, allowed []T) {
	if value == "" {
		return
	}
	if !domain.Contains(allowed, T(strings.ToLower(value))) {
		v.addf("%s: invalid value %q", field, value)
	}
}
