package testutil

import (
	"time"

	"github.com/alexanderramin/lifedash/internal/domain"
	"github.com/google/uuid"
)

// Now is the reference instant fixtures are built around.
var Now = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// Days returns the start of the day offset by n days from Now.
func Days(n int) time.Time {
	return domain.StartOfDay(Now, time.UTC).AddDate(0, 0, n)
}

// Record options
type RecordOption func(*domain.Record)

func WithID(id string) RecordOption {
	return func(r *domain.Record) {
		r.ID = id
	}
}

func WithStatus(s domain.Status) RecordOption {
	return func(r *domain.Record) {
		r.Status = s
	}
}

func WithRank(rank domain.Rank) RecordOption {
	return func(r *domain.Record) {
		r.Rank = rank
	}
}

func WithArea(a domain.LifeArea) RecordOption {
	return func(r *domain.Record) {
		r.LifeArea = a
	}
}

// WithDueInDays sets the due date n calendar days from Now.
func WithDueInDays(n int) RecordOption {
	return func(r *domain.Record) {
		d := Days(n)
		r.DueDate = &d
	}
}

func WithDueDate(d time.Time) RecordOption {
	return func(r *domain.Record) {
		r.DueDate = &d
	}
}

func WithCompletedAt(t time.Time) RecordOption {
	return func(r *domain.Record) {
		r.CompletedAt = &t
	}
}

func newRecord(title string, opts []RecordOption) domain.Record {
	r := domain.Record{
		ID:        uuid.New().String(),
		Title:     title,
		Status:    domain.StatusPending,
		LifeArea:  domain.AreaPersonal,
		CreatedAt: Now.AddDate(0, -1, 0),
		UpdatedAt: Now.AddDate(0, -1, 0),
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func NewCommitment(title string, opts ...RecordOption) domain.Commitment {
	return domain.Commitment{Record: newRecord(title, opts), Origin: domain.OriginSelf}
}

func NewTask(title string, opts ...RecordOption) domain.Task {
	return domain.Task{Record: newRecord(title, opts), Effort: domain.EffortMedium}
}

// NewHabit builds a habit whose last len(checks) days, ending today, carry
// the given completion flags (oldest first).
func NewHabit(title string, checks []bool, opts ...RecordOption) domain.Habit {
	h := domain.Habit{Record: newRecord(title, opts)}
	for i, done := range checks {
		h.History = append(h.History, domain.CheckIn{
			Date:      Days(i - len(checks) + 1),
			Completed: done,
		})
	}
	return h
}

// NewRoutine builds a routine executed today with completed of total items.
func NewRoutine(title string, completed, total int, opts ...RecordOption) domain.Routine {
	r := domain.Routine{Record: newRecord(title, opts)}
	for i := 0; i < total; i++ {
		r.Items = append(r.Items, domain.RoutineItem{ID: uuid.New().String(), Title: "step", Order: i})
	}
	r.Executions = []domain.Execution{{Date: Days(0), CompletedItems: completed, TotalItems: total}}
	return r
}

func NewPriority(title string, tier domain.PriorityTier, linked int, opts ...RecordOption) domain.Priority {
	p := domain.Priority{Record: newRecord(title, opts), Horizon: domain.HorizonWeek, Tier: tier}
	for i := 0; i < linked; i++ {
		p.LinkedItems = append(p.LinkedItems, uuid.New().String())
	}
	return p
}

func NewHealth(metric string, score float64, dir domain.Direction, opts ...RecordOption) domain.HealthIndicator {
	return domain.HealthIndicator{
		Record:    newRecord(metric, append([]RecordOption{WithArea(domain.AreaHealth)}, opts...)),
		Metric:    metric,
		Score:     score,
		Direction: dir,
	}
}
