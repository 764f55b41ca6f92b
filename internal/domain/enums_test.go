package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus_Aliases(t *testing.T) {
	cases := map[string]Status{
		"":            StatusPending,
		"todo":        StatusPending,
		"Backlog":     StatusPending,
		"in_progress": StatusInProgress,
		"done":        StatusCompleted,
		"cancelled":   StatusCancelled,
	}
	for in, want := range cases {
		got, ok := ParseStatus(in)
		assert.True(t, ok, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
	_, ok := ParseStatus("paused")
	assert.False(t, ok)
}

func TestStatus_OrPending(t *testing.T) {
	assert.Equal(t, StatusPending, Status("").OrPending())
	assert.Equal(t, StatusCancelled, StatusCancelled.OrPending())
	assert.False(t, Status("").IsTerminal())
}

func TestParseRank_Ordered(t *testing.T) {
	urgent, ok := ParseRank("urgent")
	assert.True(t, ok)
	assert.Equal(t, RankCritical, urgent)

	low, _ := ParseRank("low")
	high, _ := ParseRank("HIGH")
	assert.Less(t, low, high)
	assert.Equal(t, "critical", RankCritical.String())
}

func TestParseKind_SingularAndPlural(t *testing.T) {
	for in, want := range map[string]Kind{
		"priority":   KindPriority,
		"priorities": KindPriority,
		"habit":      KindHabit,
		"health":     KindHealth,
	} {
		got, ok := ParseKind(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseKind("goals")
	assert.False(t, ok)
}

func TestSameDay_UsesLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	a := time.Date(2025, 6, 15, 20, 0, 0, 0, time.UTC) // 16th in Tokyo
	b := time.Date(2025, 6, 16, 1, 0, 0, 0, time.UTC)  // 16th in Tokyo

	assert.False(t, SameDay(a, b, time.UTC))
	assert.True(t, SameDay(a, b, tokyo))
}

func TestDaysBetween(t *testing.T) {
	from := time.Date(2025, 3, 28, 23, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 4, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 7, DaysBetween(from, to, time.UTC))
	assert.Equal(t, -7, DaysBetween(to, from, time.UTC))
}

func TestHealthIndicator_Wellness(t *testing.T) {
	assert.Equal(t, 80.0, HealthIndicator{Score: 80, Direction: HigherIsBetter}.Wellness())
	assert.Equal(t, 20.0, HealthIndicator{Score: 80, Direction: HigherIsWorse}.Wellness())
}

func TestDueAt_CombinesDueTime(t *testing.T) {
	due := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	r := Record{DueDate: &due, DueTime: &TimeOfDay{Hour: 14, Minute: 30}}
	at, ok := r.DueAt(time.UTC)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC), at)

	_, ok = Record{}.DueAt(time.UTC)
	assert.False(t, ok)
}
