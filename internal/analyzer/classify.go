package analyzer

import (
	"fmt"

	"github.com/alexanderramin/lifedash/internal/domain"
)

// Classifier turns aggregated counts into a qualitative level.
type Classifier interface {
	Classify(c Counts) (domain.Level, error)
}

// LevelRule matches when When returns true. A nil When always matches.
type LevelRule struct {
	Name  string
	When  func(Counts) bool
	Level domain.Level
}

// LevelRules is evaluated in order; the first match wins.
type LevelRules []LevelRule

// NewLevelRules requires a catch-all final rule and no catch-all before it.
func NewLevelRules(rules ...LevelRule) (LevelRules, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("%w: no level rules", ErrInvalidInput)
	}
	for i, r := range rules {
		last := i == len(rules)-1
		if last && r.When != nil {
			return nil, fmt.Errorf("%w: final level rule %q is not a catch-all", ErrInvalidInput, r.Name)
		}
		if !last && r.When == nil {
			return nil, fmt.Errorf("%w: catch-all level rule %q shadows later rules", ErrInvalidInput, r.Name)
		}
	}
	return LevelRules(rules), nil
}

func MustLevelRules(rules ...LevelRule) LevelRules {
	rs, err := NewLevelRules(rules...)
	if err != nil {
		panic(err)
	}
	return rs
}

func (rs LevelRules) Classify(c Counts) (domain.Level, error) {
	for _, r := range rs {
		if r.When == nil || r.When(c) {
			return r.Level, nil
		}
	}
	return "", fmt.Errorf("%w: no level rule matched", ErrInvalidInput)
}

// ScalarClassifier bands a single value extracted from the counts. When the
// value is unavailable the level is LevelNoData.
type ScalarClassifier struct {
	Table BandTable
	Value func(Counts) (float64, bool)
}

func (s ScalarClassifier) Classify(c Counts) (domain.Level, error) {
	v, ok := s.Value(c)
	if !ok {
		return domain.LevelNoData, nil
	}
	return s.Table.Classify(v)
}
