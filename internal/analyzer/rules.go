package analyzer

import (
	"fmt"

	"github.com/alexanderramin/lifedash/internal/domain"
)

// Default insight messages, returned when no other rule applies.
const (
	DefaultCommitmentInsight = "Your commitment load is balanced."
	DefaultTaskInsight       = "Your task list is under control."
	DefaultHabitInsight      = "Keep checking in to build consistency."
	DefaultRoutineInsight    = "Routine execution is steady."
	DefaultPriorityInsight   = "Your priorities are focused."
	DefaultHealthInsight     = "Health indicators are stable."
)

// DomainRules bundles the classification and insight chain of one domain.
type DomainRules struct {
	Kind     domain.Kind
	Level    Classifier
	Insights InsightRules
}

func averageRate(c Counts) (float64, bool) { return c.Rate.Average() }

func averageWellness(c Counts) (float64, bool) { return c.Wellness.Average() }

// pressureRules classify commitment and task load.
var pressureRules = MustLevelRules(
	LevelRule{
		Name:  "high",
		When:  func(c Counts) bool { return c.Overdue >= 3 || c.Critical >= 3 },
		Level: domain.LevelHigh,
	},
	LevelRule{
		Name:  "moderate",
		When:  func(c Counts) bool { return c.Overdue >= 1 || c.Critical >= 2 || c.DueToday >= 4 },
		Level: domain.LevelModerate,
	},
	LevelRule{Name: "light", Level: domain.LevelLight},
)

var dispersionRules = MustLevelRules(
	LevelRule{Name: "high", When: func(c Counts) bool { return c.Active > 5 }, Level: domain.LevelHigh},
	LevelRule{Name: "medium", When: func(c Counts) bool { return c.Active > 3 }, Level: domain.LevelMedium},
	LevelRule{Name: "low", Level: domain.LevelLow},
)

var commitmentInsights = MustInsightRules(
	InsightRule{
		Name: "overdue",
		When: func(c Counts) bool { return c.Overdue > 0 },
		Type: domain.InsightWarning,
		Message: func(c Counts) string {
			return fmt.Sprintf("You have %s. Renegotiate or reschedule before taking on more.", plural(c.Overdue, "overdue commitment"))
		},
	},
	InsightRule{
		Name: "critical",
		When: func(c Counts) bool { return c.Critical > 0 },
		Type: domain.InsightWarning,
		Message: func(c Counts) string {
			return fmt.Sprintf("Protect time today for %s.", plural(c.Critical, "critical commitment"))
		},
	},
	InsightRule{
		Name: "completed_today",
		When: func(c Counts) bool { return c.CompletedToday > 0 },
		Type: domain.InsightSuccess,
		Message: func(c Counts) string {
			return fmt.Sprintf("You kept %s today. Nice follow-through.", plural(c.CompletedToday, "commitment"))
		},
	},
	InsightRule{Name: "default", Type: domain.InsightInfo, Message: text(DefaultCommitmentInsight)},
)

var taskInsights = MustInsightRules(
	InsightRule{
		Name: "no_priority",
		When: func(c Counts) bool { return c.NoPriority >= 3 },
		Type: domain.InsightSuggestion,
		Message: func(c Counts) string {
			return fmt.Sprintf("%d tasks have no priority. Triage them so the important ones surface.", c.NoPriority)
		},
	},
	InsightRule{
		Name: "overdue",
		When: func(c Counts) bool { return c.Overdue > 0 },
		Type: domain.InsightWarning,
		Message: func(c Counts) string {
			return fmt.Sprintf("You have %s. Reschedule or drop what no longer matters.", plural(c.Overdue, "overdue task"))
		},
	},
	InsightRule{
		Name: "completed_today",
		When: func(c Counts) bool { return c.CompletedToday >= 2 },
		Type: domain.InsightSuccess,
		Message: func(c Counts) string {
			return fmt.Sprintf("%d tasks completed today. Keep the momentum going.", c.CompletedToday)
		},
	},
	InsightRule{Name: "default", Type: domain.InsightInfo, Message: text(DefaultTaskInsight)},
)

// rateInsights builds the shared habit/routine chain; only the wording and the
// low-rate insight type differ between the two domains.
func rateInsights(lowType domain.InsightType, high, low, fallback string) InsightRules {
	return MustInsightRules(
		InsightRule{
			Name: "high_rate",
			When: func(c Counts) bool {
				avg, ok := averageRate(c)
				return ok && avg >= 75
			},
			Type: domain.InsightSuccess,
			Message: func(c Counts) string {
				avg, _ := averageRate(c)
				return fmt.Sprintf(high, avg)
			},
		},
		InsightRule{
			Name: "low_rate",
			When: func(c Counts) bool {
				avg, ok := averageRate(c)
				return ok && avg < 50
			},
			Type: lowType,
			Message: func(c Counts) string {
				avg, _ := averageRate(c)
				return fmt.Sprintf(low, avg)
			},
		},
		InsightRule{Name: "default", Type: domain.InsightInfo, Message: text(fallback)},
	)
}

var habitInsights = rateInsights(domain.InsightWarning,
	"Habit consistency is at %.0f%%. Your habits are sticking.",
	"Habit consistency dropped to %.0f%%. Start again with one small habit today.",
	DefaultHabitInsight,
)

var routineInsights = rateInsights(domain.InsightSuggestion,
	"Routines are %.0f%% complete on average. Solid execution.",
	"Routines average %.0f%% completion. Trim them to the essential steps.",
	DefaultRoutineInsight,
)

var priorityInsights = MustInsightRules(
	InsightRule{
		Name: "dispersed",
		When: func(c Counts) bool { return c.Active > 5 },
		Type: domain.InsightWarning,
		Message: func(c Counts) string {
			return fmt.Sprintf("%d active priorities split your focus. Narrow them down.", c.Active)
		},
	},
	InsightRule{
		Name:    "no_dominant",
		When:    func(c Counts) bool { return c.Active > 0 && c.Dominant == 0 },
		Type:    domain.InsightSuggestion,
		Message: text("No dominant priority is set. Pick the one that matters most right now."),
	},
	InsightRule{Name: "default", Type: domain.InsightInfo, Message: text(DefaultPriorityInsight)},
)

var healthInsights = MustInsightRules(
	InsightRule{
		Name: "poor",
		When: func(c Counts) bool { return c.Bands.Poor > 0 },
		Type: domain.InsightWarning,
		Message: func(c Counts) string {
			return fmt.Sprintf("%s in the poor range. Check in on your health.", plural(c.Bands.Poor, "indicator"))
		},
	},
	InsightRule{
		Name:    "all_good",
		When:    func(c Counts) bool { return c.Active > 0 && c.Bands.Good == c.Active },
		Type:    domain.InsightSuccess,
		Message: text("All health indicators are in a good range."),
	},
	InsightRule{Name: "default", Type: domain.InsightInfo, Message: text(DefaultHealthInsight)},
)

var domainRules = map[domain.Kind]DomainRules{
	domain.KindCommitment: {Kind: domain.KindCommitment, Level: pressureRules, Insights: commitmentInsights},
	domain.KindTask:       {Kind: domain.KindTask, Level: pressureRules, Insights: taskInsights},
	domain.KindHabit: {
		Kind:     domain.KindHabit,
		Level:    ScalarClassifier{Table: rateTable, Value: averageRate},
		Insights: habitInsights,
	},
	domain.KindRoutine: {
		Kind:     domain.KindRoutine,
		Level:    ScalarClassifier{Table: rateTable, Value: averageRate},
		Insights: routineInsights,
	},
	domain.KindPriority: {Kind: domain.KindPriority, Level: dispersionRules, Insights: priorityInsights},
	domain.KindHealth: {
		Kind:     domain.KindHealth,
		Level:    ScalarClassifier{Table: wellnessTable, Value: averageWellness},
		Insights: healthInsights,
	},
}

// RulesFor returns the rule set of kind.
func RulesFor(kind domain.Kind) (DomainRules, bool) {
	r, ok := domainRules[kind]
	return r, ok
}
