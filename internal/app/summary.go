package app

import (
	"time"

	"github.com/alexanderramin/lifedash/internal/domain"
)

type Insight struct {
	Type    domain.InsightType
	Message string
}

// Summary is the derived state of one domain collection at one instant.
type Summary struct {
	Domain      domain.Kind
	GeneratedAt time.Time

	TotalActive      int
	OverdueCount     int
	DueToday         int
	DueThisWeek      int
	CriticalCount    int
	CompletedToday   int
	WithoutDateCount int

	// HintMismatches counts stored overdue flags on records whose due date
	// is today or later.
	HintMismatches int

	// AverageRate is meaningful only when RateAvailable is true.
	AverageRate   float64
	RateAvailable bool

	Level   domain.Level
	Insight Insight
}

type Group struct {
	Key   string
	Label string
	Items []domain.Entity
	Count int
}

type ConflictType string

const (
	ConflictTooManyStrategic ConflictType = "too_many_strategic"
	ConflictNoActions        ConflictType = "no_actions"
)

type Conflict struct {
	Type       ConflictType
	Message    string
	Severity   domain.Severity
	RelatedIDs []string
}
