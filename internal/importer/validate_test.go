package importer

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrStr(s string) *string           { return &s }
func ptrInt(i int) *int                 { return &i }
func ptrFloat(f float64) *float64       { return &f }
func rec(id, title string) RecordImport { return RecordImport{ID: id, Title: title} }

func validMinimalSchema() *SnapshotSchema {
	return &SnapshotSchema{
		Commitments: []CommitmentImport{{RecordImport: rec("c1", "Call the plumber")}},
		Health:      []HealthImport{{RecordImport: rec("h1", "Sleep"), Metric: "sleep", Score: ptrFloat(80)}},
	}
}

func validFullSchema() *SnapshotSchema {
	due := RecordImport{
		ID:                "c1",
		Title:             "Quarterly report",
		Status:            "in_progress",
		Priority:          "critical",
		LifeArea:          "work",
		DueDate:           ptrStr("2025-06-16"),
		DueTime:           ptrStr("17:30"),
		Recurring:         true,
		RecurrencePattern: "quarterly",
		CreatedAt:         ptrStr("2025-06-01T09:00:00Z"),
		UpdatedAt:         ptrStr("2025-06-10T09:00:00Z"),
	}
	done := rec("t2", "Book flights")
	done.Status = "done"
	done.CompletedAt = ptrStr("2025-06-15T08:00:00Z")

	return &SnapshotSchema{
		Commitments: []CommitmentImport{{RecordImport: due, Origin: "client", GoalID: "g1"}},
		Tasks: []TaskImport{
			{RecordImport: rec("t1", "Pack"), Effort: "quick", Subtasks: []SubtaskImport{{Title: "Clothes"}, {Title: "Chargers", Done: true}}},
			{RecordImport: done},
		},
		Habits: []HabitImport{{
			RecordImport:  rec("hb1", "Read"),
			CurrentStreak: ptrInt(2),
			LongestStreak: ptrInt(9),
			History:       []CheckInImport{{Date: "2025-06-14", Completed: true}, {Date: "2025-06-15", Completed: true}},
		}},
		Routines: []RoutineImport{{
			RecordImport: rec("r1", "Morning"),
			Items:        []RoutineItemImport{{Title: "Stretch"}, {Title: "Coffee", Order: ptrInt(5)}},
			Executions:   []ExecutionImport{{Date: "2025-06-15", CompletedItems: 1, TotalItems: 2}},
		}},
		Priorities: []PriorityImport{
			{RecordImport: rec("p1", "Health first"), Tier: "strategic", Horizon: "quarter", LinkedItems: []string{"hb1"}, Dominant: true},
			{RecordImport: rec("p2", "Ship v2"), Tier: "tactical"},
		},
		Health: []HealthImport{
			{RecordImport: rec("h1", "Sleep"), Metric: "sleep", Score: ptrFloat(80)},
			{RecordImport: rec("h2", "Stress"), Metric: "stress", Score: ptrFloat(65), Direction: "higher_is_worse"},
		},
	}
}

func TestValidateSnapshot_ValidMinimal(t *testing.T) {
	assert.Empty(t, ValidateSnapshot(validMinimalSchema()))
}

func TestValidateSnapshot_ValidFull(t *testing.T) {
	assert.Empty(t, ValidateSnapshot(validFullSchema()))
}

func TestValidateSnapshot_Empty(t *testing.T) {
	assert.Empty(t, ValidateSnapshot(&SnapshotSchema{}))
}

func TestValidateSnapshot_CollectsEveryError(t *testing.T) {
	bad := RecordImport{
		ID:       "x",
		Status:   "sleeping",
		Priority: "meh",
		LifeArea: "mars",
		DueDate:  ptrStr("16/06/2025"),
	}
	schema := &SnapshotSchema{
		Commitments: []CommitmentImport{{RecordImport: bad, Origin: "aliens"}},
	}
	errs := ValidateSnapshot(schema)
	msgs := errorStrings(errs)

	assert.Len(t, errs, 6)
	assert.Contains(t, msgs, "commitments[0].title is required")
	assert.Contains(t, msgs, `commitments[0].status: invalid value "sleeping"`)
	assert.Contains(t, msgs, `commitments[0].priority: invalid value "meh"`)
	assert.Contains(t, msgs, `commitments[0].life_area: invalid value "mars"`)
	assert.Contains(t, msgs, `commitments[0].due_date: invalid date format "16/06/2025" (expected YYYY-MM-DD)`)
	assert.Contains(t, msgs, `commitments[0].origin: invalid value "aliens"`)
}

func TestValidateSnapshot_DuplicateIDsAcrossKinds(t *testing.T) {
	schema := validMinimalSchema()
	schema.Tasks = []TaskImport{{RecordImport: rec("c1", "Same id")}}
	errs := ValidateSnapshot(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), `duplicate id "c1" (first used by commitments[0])`)
}

func TestValidateSnapshot_DueTime(t *testing.T) {
	r := rec("c1", "Dentist")
	r.DueTime = ptrStr("25:00")
	errs := ValidateSnapshot(&SnapshotSchema{Commitments: []CommitmentImport{{RecordImport: r}}})
	msgs := errorStrings(errs)
	assert.Contains(t, msgs, "commitments[0].due_time requires due_date")
	assert.Contains(t, msgs, `commitments[0].due_time: invalid time format "25:00" (expected HH:MM)`)
}

func TestValidateSnapshot_Timestamps(t *testing.T) {
	r := rec("t1", "Laundry")
	r.CompletedAt = ptrStr("yesterday")
	errs := ValidateSnapshot(&SnapshotSchema{Tasks: []TaskImport{{RecordImport: r}}})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "tasks[0].completed_at")
}

func TestValidateSnapshot_HealthScore(t *testing.T) {
	cases := []struct {
		name  string
		score *float64
		want  string
	}{
		{"missing", nil, "health[0].score is required"},
		{"above range", ptrFloat(101), "health[0].score 101 must be between 0 and 100"},
		{"negative", ptrFloat(-1), "health[0].score -1 must be between 0 and 100"},
		{"nan", ptrFloat(math.NaN()), "health[0].score must be a finite number"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			schema := &SnapshotSchema{Health: []HealthImport{{RecordImport: rec("h", "HRV"), Metric: "hrv", Score: tc.score}}}
			errs := ValidateSnapshot(schema)
			require.Len(t, errs, 1)
			assert.Equal(t, tc.want, errs[0].Error())
		})
	}
}

func TestValidateSnapshot_MultipleDominant(t *testing.T) {
	schema := &SnapshotSchema{Priorities: []PriorityImport{
		{RecordImport: rec("p1", "A"), Dominant: true},
		{RecordImport: rec("p2", "B"), Dominant: true},
	}}
	errs := ValidateSnapshot(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "2 priorities are marked dominant")
}

func TestValidateSnapshot_CompletedDominantIsIgnored(t *testing.T) {
	done := rec("p2", "B")
	done.Status = "completed"
	schema := &SnapshotSchema{Priorities: []PriorityImport{
		{RecordImport: rec("p1", "A"), Dominant: true},
		{RecordImport: done, Dominant: true},
	}}
	assert.Empty(t, ValidateSnapshot(schema))
}

func TestValidateSnapshot_HabitAndRoutine(t *testing.T) {
	schema := &SnapshotSchema{
		Habits: []HabitImport{{
			RecordImport:  rec("hb", "Run"),
			CurrentStreak: ptrInt(5),
			LongestStreak: ptrInt(3),
			History:       []CheckInImport{{Date: "2025-13-01"}},
		}},
		Routines: []RoutineImport{{
			RecordImport: rec("r", "Evening"),
			Items:        []RoutineItemImport{{}},
			Executions:   []ExecutionImport{{Date: "2025-06-01", CompletedItems: 5, TotalItems: 4}},
		}},
	}
	msgs := errorStrings(ValidateSnapshot(schema))
	assert.Contains(t, msgs, "habits[0]: longest_streak (3) must be >= current_streak (5)")
	assert.Contains(t, msgs, `habits[0].history[0].date: invalid date format "2025-13-01" (expected YYYY-MM-DD)`)
	assert.Contains(t, msgs, "routines[0].items[0].title is required")
	assert.Contains(t, msgs, "routines[0].executions[0]: completed_items (5) must be <= total_items (4)")
}

func TestValidationError_UnwrapsEachError(t *testing.T) {
	sentinel := errors.New("boom")
	err := &ValidationError{Errs: []error{errors.New("first"), sentinel}}
	assert.ErrorIs(t, err, sentinel)
	assert.Contains(t, err.Error(), "snapshot validation failed (2 errors):")
	assert.Contains(t, err.Error(), "\n  - first")
}

func errorStrings(errs []error) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Error()
	}
	return out
}
