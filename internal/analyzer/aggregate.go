package analyzer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/lifedash/internal/domain"
)

// Bucket is the mutually exclusive temporal position of an active entity.
type Bucket string

const (
	BucketOverdue  Bucket = "overdue"
	BucketToday    Bucket = "today"
	BucketThisWeek Bucket = "this_week"
	BucketLater    Bucket = "later"
	BucketNoDate   Bucket = "no_date"
)

// Buckets lists temporal buckets in precedence order.
var Buckets = []Bucket{BucketOverdue, BucketToday, BucketThisWeek, BucketLater, BucketNoDate}

const weekDays = 7

// TemporalBucket places an active record relative to now's calendar day.
// Terminal records have no bucket. A due date always wins over a stored
// overdue status; the stored status only decides for undated records.
func TemporalBucket(r domain.Record, now time.Time) (Bucket, bool) {
	if r.Status.IsTerminal() {
		return "", false
	}
	if r.DueDate == nil {
		if r.Status == domain.StatusOverdue {
			return BucketOverdue, true
		}
		return BucketNoDate, true
	}
	loc := now.Location()
	today := domain.StartOfDay(now, loc)
	due := domain.CalendarDay(*r.DueDate, loc)
	switch {
	case due.Before(today):
		return BucketOverdue, true
	case due.Equal(today):
		return BucketToday, true
	case !due.After(today.AddDate(0, 0, weekDays)):
		return BucketThisWeek, true
	default:
		return BucketLater, true
	}
}

// Rate accumulates percentage samples. Zero samples means no data.
type Rate struct {
	Sum     float64
	Samples int
}

func (r *Rate) add(v float64) {
	r.Sum += v
	r.Samples++
}

// Average returns the mean sample, or false when there is nothing to average.
func (r Rate) Average() (float64, bool) {
	if r.Samples == 0 {
		return 0, false
	}
	return r.Sum / float64(r.Samples), true
}

type BandCounts struct {
	Good int
	Fair int
	Poor int
}

// Counts is the raw output of one aggregation pass. The temporal fields
// Overdue, DueToday, DueThisWeek, DueLater and WithoutDate partition Active.
type Counts struct {
	Total  int
	Active int

	Overdue     int
	DueToday    int
	DueThisWeek int
	DueLater    int
	WithoutDate int

	Critical       int
	CompletedToday int

	// HintMismatches counts records whose stored overdue status disagrees
	// with the date-derived one.
	HintMismatches int

	// Tasks
	NoPriority int

	// Priorities
	Strategic int
	Dominant  int
	Unlinked  int

	// Habits and routines
	Rate Rate

	// Health
	Bands    BandCounts
	Wellness Rate
}

// Aggregate makes one pass over entities and counts them against now.
func Aggregate(entities []domain.Entity, now time.Time) (Counts, error) {
	if now.IsZero() {
		return Counts{}, fmt.Errorf("%w: now is not set", ErrInvalidInput)
	}
	v := &countVisitor{now: now}
	for _, e := range entities {
		v.countRecord(e.Common())
		e.Accept(v)
		if v.err != nil {
			return Counts{}, v.err
		}
	}
	return v.counts, nil
}

type countVisitor struct {
	now    time.Time
	counts Counts
	err    error
}

func (v *countVisitor) countRecord(r domain.Record) {
	c := &v.counts
	c.Total++

	if r.CompletedAt != nil && domain.SameDay(*r.CompletedAt, v.now, v.now.Location()) {
		c.CompletedToday++
	}

	bucket, active := TemporalBucket(r, v.now)
	if !active {
		return
	}
	c.Active++
	if r.Rank == domain.RankCritical {
		c.Critical++
	}
	switch bucket {
	case BucketOverdue:
		c.Overdue++
	case BucketToday:
		c.DueToday++
	case BucketThisWeek:
		c.DueThisWeek++
	case BucketLater:
		c.DueLater++
	case BucketNoDate:
		c.WithoutDate++
	}
	// Overdue is derived, so a past-due record without the flag is normal.
	// Only a stored flag the due date contradicts is a mismatch.
	if r.Status == domain.StatusOverdue && bucket != BucketOverdue {
		c.HintMismatches++
	}
}

func (v *countVisitor) VisitCommitment(domain.Commitment) {}

func (v *countVisitor) VisitTask(t domain.Task) {
	if t.IsActive() && t.Rank == domain.RankNone {
		v.counts.NoPriority++
	}
}

func (v *countVisitor) VisitHabit(h domain.Habit) {
	if !h.IsActive() {
		return
	}
	if rate, ok := HabitConsistency(h, v.now); ok {
		v.counts.Rate.add(rate)
	}
}

func (v *countVisitor) VisitRoutine(r domain.Routine) {
	if !r.IsActive() {
		return
	}
	if rate, ok := RoutineExecution(r, v.now); ok {
		v.counts.Rate.add(rate)
	}
}

func (v *countVisitor) VisitPriority(p domain.Priority) {
	if !p.IsActive() {
		return
	}
	if p.Tier == domain.TierStrategic {
		v.counts.Strategic++
	}
	if p.IsDominant {
		v.counts.Dominant++
	}
	if len(p.LinkedItems) == 0 {
		v.counts.Unlinked++
	}
}

func (v *countVisitor) VisitHealth(h domain.HealthIndicator) {
	if !h.IsActive() {
		return
	}
	level, err := IndicatorLevel(h)
	if err != nil {
		v.err = fmt.Errorf("health indicator %q: %w", h.ID, err)
		return
	}
	switch level {
	case domain.LevelGood:
		v.counts.Bands.Good++
	case domain.LevelFair:
		v.counts.Bands.Fair++
	default:
		v.counts.Bands.Poor++
	}
	v.counts.Wellness.add(h.Wellness())
}
