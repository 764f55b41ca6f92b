package analyzer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/lifedash/internal/app"
	"github.com/alexanderramin/lifedash/internal/domain"
)

// Summarize aggregates one domain collection, classifies it and picks its
// insight. An empty collection yields zero counts and the default insight.
func Summarize(kind domain.Kind, entities []domain.Entity, now time.Time) (app.Summary, error) {
	rules, ok := RulesFor(kind)
	if !ok {
		return app.Summary{}, fmt.Errorf("%w: unknown domain %q", ErrInvalidInput, kind)
	}
	for _, e := range entities {
		if e.Kind() != kind {
			return app.Summary{}, fmt.Errorf("%w: %s %q in %s collection", ErrInvalidInput, e.Kind(), e.Common().ID, kind)
		}
	}

	counts, err := Aggregate(entities, now)
	if err != nil {
		return app.Summary{}, fmt.Errorf("aggregating %s: %w", kind, err)
	}
	return SummaryFromCounts(rules, counts, now)
}

// SummaryFromCounts classifies precomputed counts with rules.
func SummaryFromCounts(rules DomainRules, counts Counts, now time.Time) (app.Summary, error) {
	level, err := rules.Level.Classify(counts)
	if err != nil {
		return app.Summary{}, fmt.Errorf("classifying %s: %w", rules.Kind, err)
	}

	s := app.Summary{
		Domain:           rules.Kind,
		GeneratedAt:      now,
		TotalActive:      counts.Active,
		OverdueCount:     counts.Overdue,
		DueToday:         counts.DueToday,
		DueThisWeek:      counts.DueThisWeek,
		CriticalCount:    counts.Critical,
		CompletedToday:   counts.CompletedToday,
		WithoutDateCount: counts.WithoutDate,
		HintMismatches:   counts.HintMismatches,
		Level:            level,
		Insight:          SelectInsight(counts, rules.Insights),
	}
	switch rules.Kind {
	case domain.KindHabit, domain.KindRoutine:
		s.AverageRate, s.RateAvailable = counts.Rate.Average()
	case domain.KindHealth:
		s.AverageRate, s.RateAvailable = counts.Wellness.Average()
	}
	return s, nil
}
