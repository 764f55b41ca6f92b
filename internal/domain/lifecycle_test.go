package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestIsTerminal(t *testing.T) {
	cases := []struct {
		status   Status
		terminal bool
	}{
		{StatusPending, false},
		{StatusInProgress, false},
		{StatusOverdue, false},
		{StatusRescheduled, false},
		{StatusCompleted, true},
		{StatusCancelled, true},
	}
	for _, tc := range cases {
		r := Record{Status: tc.status}
		assert.Equal(t, tc.terminal, r.Status.IsTerminal(), "status=%s", tc.status)
		assert.Equal(t, !tc.terminal, r.IsActive(), "status=%s", tc.status)
	}
}

func TestComplete_FromPending(t *testing.T) {
	r := &Record{Status: StatusPending}
	require.NoError(t, r.Complete(testNow))
	assert.Equal(t, StatusCompleted, r.Status)
	require.NotNil(t, r.CompletedAt)
	assert.Equal(t, testNow, *r.CompletedAt)
	assert.Equal(t, testNow, r.UpdatedAt)
}

func TestComplete_FromOverdue(t *testing.T) {
	r := &Record{Status: StatusOverdue}
	require.NoError(t, r.Complete(testNow))
	assert.Equal(t, StatusCompleted, r.Status)
}

func TestComplete_Terminal(t *testing.T) {
	for _, s := range []Status{StatusCompleted, StatusCancelled} {
		r := &Record{Status: s}
		err := r.Complete(testNow)
		require.ErrorIs(t, err, ErrInvalidTransition)
		assert.Contains(t, err.Error(), "terminal")
		assert.Equal(t, s, r.Status, "status should not change")
	}
}

func TestStart_ZeroStatusActsAsPending(t *testing.T) {
	r := Record{ID: "r1"}
	require.NoError(t, r.Start(testNow))
	assert.Equal(t, StatusInProgress, r.Status)
}

func TestCancel_FromEveryNonTerminal(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusInProgress, StatusOverdue, StatusRescheduled} {
		r := &Record{Status: s}
		require.NoError(t, r.Cancel(testNow), "from %s", s)
		assert.Equal(t, StatusCancelled, r.Status)
	}
}

func TestStart_FromOverdueRequiresReschedule(t *testing.T) {
	r := &Record{Status: StatusOverdue}
	err := r.Start(testNow)
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusOverdue, r.Status)
}

func TestCanTransition_NeverTargetsOverdue(t *testing.T) {
	for _, from := range Statuses {
		assert.False(t, CanTransition(from, StatusOverdue), "from %s", from)
	}
}

func TestReschedule_IncrementsCounterAndResolves(t *testing.T) {
	oldDue := testNow.AddDate(0, 0, -3)
	newDue := testNow.AddDate(0, 0, 2)
	r := &Record{Status: StatusOverdue, DueDate: &oldDue, RescheduleCount: 1}

	require.NoError(t, r.Reschedule(newDue, testNow))
	assert.Equal(t, StatusRescheduled, r.Status)
	assert.Equal(t, 2, r.RescheduleCount)
	require.NotNil(t, r.DueDate)
	assert.Equal(t, newDue, *r.DueDate)

	require.NoError(t, r.ResolveReschedule(StatusInProgress, testNow))
	assert.Equal(t, StatusInProgress, r.Status)
	assert.Equal(t, 2, r.RescheduleCount, "resolving must not touch the counter")
}

func TestReschedule_Terminal(t *testing.T) {
	r := &Record{Status: StatusCompleted}
	err := r.Reschedule(testNow, testNow)
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 0, r.RescheduleCount)
}

func TestResolveReschedule_RejectsOtherTargets(t *testing.T) {
	r := &Record{Status: StatusRescheduled}
	require.ErrorIs(t, r.ResolveReschedule(StatusCompleted, testNow), ErrInvalidTransition)

	r = &Record{Status: StatusPending}
	require.ErrorIs(t, r.ResolveReschedule(StatusPending, testNow), ErrInvalidTransition)
}

func TestSetDominant_ClearsPrevious(t *testing.T) {
	in := []Priority{
		{Record: Record{ID: "a", Status: StatusPending}, IsDominant: true},
		{Record: Record{ID: "b", Status: StatusInProgress}},
		{Record: Record{ID: "c", Status: StatusPending}},
	}
	out, err := SetDominant(in, "b")
	require.NoError(t, err)

	assert.False(t, out[0].IsDominant)
	assert.True(t, out[1].IsDominant)
	assert.False(t, out[2].IsDominant)
	assert.True(t, in[0].IsDominant, "input must not be mutated")
	assert.NoError(t, ValidateDominance(out))
}

func TestSetDominant_Errors(t *testing.T) {
	in := []Priority{{Record: Record{ID: "done", Status: StatusCompleted}}}

	_, err := SetDominant(in, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = SetDominant(in, "done")
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestValidateDominance(t *testing.T) {
	twoActive := []Priority{
		{Record: Record{ID: "a"}, IsDominant: true},
		{Record: Record{ID: "b"}, IsDominant: true},
	}
	require.ErrorIs(t, ValidateDominance(twoActive), ErrMultipleDominant)

	oneCancelled := []Priority{
		{Record: Record{ID: "a"}, IsDominant: true},
		{Record: Record{ID: "b", Status: StatusCancelled}, IsDominant: true},
	}
	assert.NoError(t, ValidateDominance(oneCancelled))
}
