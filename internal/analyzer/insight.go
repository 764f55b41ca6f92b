package analyzer

import (
	"fmt"

	"github.com/alexanderramin/lifedash/internal/app"
	"github.com/alexanderramin/lifedash/internal/domain"
)

// InsightRule produces an insight when When returns true. A nil When is the
// default rule and must come last.
type InsightRule struct {
	Name    string
	When    func(Counts) bool
	Type    domain.InsightType
	Message func(Counts) string
}

// InsightRules is an ordered precedence chain. Reordering it changes which
// message callers see.
type InsightRules []InsightRule

func NewInsightRules(rules ...InsightRule) (InsightRules, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("%w: no insight rules", ErrInvalidInput)
	}
	for i, r := range rules {
		last := i == len(rules)-1
		if r.Message == nil {
			return nil, fmt.Errorf("%w: insight rule %q has no message", ErrInvalidInput, r.Name)
		}
		if last && r.When != nil {
			return nil, fmt.Errorf("%w: final insight rule %q is not a default", ErrInvalidInput, r.Name)
		}
		if !last && r.When == nil {
			return nil, fmt.Errorf("%w: default insight rule %q shadows later rules", ErrInvalidInput, r.Name)
		}
	}
	return InsightRules(rules), nil
}

func MustInsightRules(rules ...InsightRule) InsightRules {
	rs, err := NewInsightRules(rules...)
	if err != nil {
		panic(err)
	}
	return rs
}

// SelectInsight returns the insight of the first matching rule.
func SelectInsight(c Counts, rules InsightRules) app.Insight {
	for _, r := range rules {
		if r.When == nil || r.When(c) {
			return app.Insight{Type: r.Type, Message: r.Message(c)}
		}
	}
	return app.Insight{Type: domain.InsightInfo}
}

func text(s string) func(Counts) string {
	return func(Counts) string { return s }
}

// plural renders "1 task" or "3 tasks".
func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
