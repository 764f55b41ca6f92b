package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotFound          = errors.New("entity not found")
	ErrMultipleDominant  = errors.New("more than one dominant priority")
)

// transitions lists the direct moves a caller may request. Overdue never
// appears as a target: it is derived from the due date at read time.
var transitions = map[Status][]Status{
	StatusPending:     {StatusInProgress, StatusCompleted, StatusCancelled},
	StatusInProgress:  {StatusPending, StatusCompleted, StatusCancelled},
	StatusOverdue:     {StatusCompleted, StatusCancelled},
	StatusRescheduled: {StatusPending, StatusInProgress, StatusCompleted, StatusCancelled},
}

// CanTransition reports whether from -> to is a legal direct transition.
func CanTransition(from, to Status) bool {
	return Contains(transitions[from], to)
}

func (r *Record) transition(to Status, now time.Time) error {
	r.Status = r.Status.OrPending()
	if r.Status.IsTerminal() {
		return fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, r.Status)
	}
	if !CanTransition(r.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, to)
	}
	r.Status = to
	r.UpdatedAt = now
	return nil
}

// Start moves a pending or rescheduled record into progress.
func (r *Record) Start(now time.Time) error {
	return r.transition(StatusInProgress, now)
}

// Complete marks the record completed and stamps CompletedAt.
func (r *Record) Complete(now time.Time) error {
	if err := r.transition(StatusCompleted, now); err != nil {
		return err
	}
	r.CompletedAt = &now
	return nil
}

// Cancel is reachable from every non-terminal status.
func (r *Record) Cancel(now time.Time) error {
	return r.transition(StatusCancelled, now)
}

// Reschedule moves the due date and applies the rescheduled marker. It is the
// only way out of overdue back into active work, and always bumps the counter.
func (r *Record) Reschedule(newDue time.Time, now time.Time) error {
	switch r.Status.OrPending() {
	case StatusPending, StatusInProgress, StatusOverdue, StatusRescheduled:
	default:
		return fmt.Errorf("%w: cannot reschedule %s", ErrInvalidTransition, r.Status)
	}
	due := newDue
	r.DueDate = &due
	r.Status = StatusRescheduled
	r.RescheduleCount++
	r.UpdatedAt = now
	return nil
}

// ResolveReschedule clears the rescheduled marker into pending or in_progress.
func (r *Record) ResolveReschedule(to Status, now time.Time) error {
	if r.Status != StatusRescheduled {
		return fmt.Errorf("%w: %s is not rescheduled", ErrInvalidTransition, r.Status)
	}
	if to != StatusPending && to != StatusInProgress {
		return fmt.Errorf("%w: rescheduled -> %s", ErrInvalidTransition, to)
	}
	r.Status = to
	r.UpdatedAt = now
	return nil
}

// SetDominant returns a copy of priorities where only id carries the dominant
// flag. The previous dominant priority is cleared in the same call.
func SetDominant(priorities []Priority, id string) ([]Priority, error) {
	idx := -1
	for i, p := range priorities {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("priority %q: %w", id, ErrNotFound)
	}
	if priorities[idx].Status.IsTerminal() {
		return nil, fmt.Errorf("%w: priority %q is %s", ErrInvalidTransition, id, priorities[idx].Status)
	}
	out := make([]Priority, len(priorities))
	copy(out, priorities)
	for i := range out {
		out[i].IsDominant = i == idx
	}
	return out, nil
}

// ValidateDominance checks that at most one active priority is dominant.
func ValidateDominance(priorities []Priority) error {
	var ids []string
	for _, p := range priorities {
		if p.IsDominant && p.IsActive() {
			ids = append(ids, p.ID)
		}
	}
	if len(ids) > 1 {
		return fmt.Errorf("%w: %v", ErrMultipleDominant, ids)
	}
	return nil
}
