package domain

import "strings"

type Kind string

const (
	KindCommitment Kind = "commitments"
	KindTask       Kind = "tasks"
	KindHabit      Kind = "habits"
	KindRoutine    Kind = "routines"
	KindPriority   Kind = "priorities"
	KindHealth     Kind = "health"
)

// Kinds lists every entity kind in dashboard order.
var Kinds = []Kind{KindCommitment, KindTask, KindHabit, KindRoutine, KindPriority, KindHealth}

var kindAliases = map[string]Kind{
	"commitment":        KindCommitment,
	"task":              KindTask,
	"habit":             KindHabit,
	"routine":           KindRoutine,
	"priority":          KindPriority,
	"health_indicator":  KindHealth,
	"health_indicators": KindHealth,
}

// ParseKind accepts the plural kind name or its singular form.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds {
		if s == string(k) {
			return k, true
		}
	}
	k, ok := kindAliases[s]
	return k, ok
}

type Status string

const (
	StatusPending     Status = "pending"
	StatusInProgress  Status = "in_progress"
	StatusOverdue     Status = "overdue"
	StatusRescheduled Status = "rescheduled"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
)

// Statuses lists every lifecycle status in state-machine order.
var Statuses = []Status{
	StatusPending, StatusInProgress, StatusOverdue,
	StatusRescheduled, StatusCompleted, StatusCancelled,
}

// statusAliases maps domain-specific initial states onto pending.
var statusAliases = map[string]Status{
	"todo":    StatusPending,
	"backlog": StatusPending,
	"done":    StatusCompleted,
}

// ParseStatus normalises a stored status string. Empty input means pending.
func ParseStatus(s string) (Status, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return StatusPending, true
	}
	if alias, ok := statusAliases[s]; ok {
		return alias, true
	}
	for _, st := range Statuses {
		if s == string(st) {
			return st, true
		}
	}
	return "", false
}

// OrPending returns s, or pending for the zero value. Records built in code
// without a status start out pending.
func (s Status) OrPending() Status {
	if s == "" {
		return StatusPending
	}
	return s
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Rank orders priority and severity labels from none to critical.
type Rank int

const (
	RankNone Rank = iota
	RankLow
	RankMedium
	RankHigh
	RankCritical
)

var rankLabels = map[Rank]string{
	RankNone:     "none",
	RankLow:      "low",
	RankMedium:   "medium",
	RankHigh:     "high",
	RankCritical: "critical",
}

var rankAliases = map[string]Rank{
	"":         RankNone,
	"none":     RankNone,
	"low":      RankLow,
	"minor":    RankLow,
	"medium":   RankMedium,
	"normal":   RankMedium,
	"moderate": RankMedium,
	"high":     RankHigh,
	"major":    RankHigh,
	"critical": RankCritical,
	"urgent":   RankCritical,
	"severe":   RankCritical,
}

func (r Rank) String() string {
	if label, ok := rankLabels[r]; ok {
		return label
	}
	return "unknown"
}

// ParseRank maps the domain-specific priority and severity labels onto Rank.
func ParseRank(s string) (Rank, bool) {
	r, ok := rankAliases[strings.ToLower(strings.TrimSpace(s))]
	return r, ok
}

type LifeArea string

const (
	AreaWork          LifeArea = "work"
	AreaPersonal      LifeArea = "personal"
	AreaHealth        LifeArea = "health"
	AreaFinance       LifeArea = "finance"
	AreaRelationships LifeArea = "relationships"
	AreaLearning      LifeArea = "learning"
	AreaLeisure       LifeArea = "leisure"
	AreaHome          LifeArea = "home"
	AreaOther         LifeArea = "other"
)

// LifeAreas is the closed set of life areas in display order.
var LifeAreas = []LifeArea{
	AreaWork, AreaPersonal, AreaHealth, AreaFinance, AreaRelationships,
	AreaLearning, AreaLeisure, AreaHome, AreaOther,
}

type Origin string

const (
	OriginSelf      Origin = "self"
	OriginWork      Origin = "work"
	OriginFamily    Origin = "family"
	OriginFriends   Origin = "friends"
	OriginCommunity Origin = "community"
	OriginClient    Origin = "client"
)

var Origins = []Origin{OriginSelf, OriginWork, OriginFamily, OriginFriends, OriginCommunity, OriginClient}

type Horizon string

const (
	HorizonToday   Horizon = "today"
	HorizonWeek    Horizon = "week"
	HorizonMonth   Horizon = "month"
	HorizonQuarter Horizon = "quarter"
)

var Horizons = []Horizon{HorizonToday, HorizonWeek, HorizonMonth, HorizonQuarter}

// PriorityTier is the planning level of a priority. Strategic is the top tier.
type PriorityTier string

const (
	TierStrategic   PriorityTier = "strategic"
	TierTactical    PriorityTier = "tactical"
	TierOperational PriorityTier = "operational"
)

var PriorityTiers = []PriorityTier{TierStrategic, TierTactical, TierOperational}

type EffortTier string

const (
	EffortQuick  EffortTier = "quick"
	EffortMedium EffortTier = "medium"
	EffortDeep   EffortTier = "deep"
)

var EffortTiers = []EffortTier{EffortQuick, EffortMedium, EffortDeep}

// Direction tells whether a higher health score is good or bad.
type Direction string

const (
	HigherIsBetter Direction = "higher_is_better"
	HigherIsWorse  Direction = "higher_is_worse"
)

// Level is a qualitative classification produced from aggregated counts.
type Level string

const (
	// Pressure
	LevelLight    Level = "light"
	LevelModerate Level = "moderate"
	// Dispersion
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	// Shared top band for pressure and dispersion.
	LevelHigh Level = "high"
	// Scalar bands for health, consistency and execution rates.
	LevelGood Level = "good"
	LevelFair Level = "fair"
	LevelPoor Level = "poor"

	LevelNoData Level = "no_data"
)

type InsightType string

const (
	InsightWarning    InsightType = "warning"
	InsightSuccess    InsightType = "success"
	InsightInfo       InsightType = "info"
	InsightSuggestion InsightType = "suggestion"
)

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Contains reports whether v is one of vals.
func Contains[T comparable](vals []T, v T) bool {
	for _, x := range vals {
		if x == v {
			return true
		}
	}
	return false
}
