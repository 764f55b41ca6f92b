package analyzer

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexanderramin/lifedash/internal/domain"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrUnsupportedDimension = errors.New("dimension does not apply to entity kind")
)

type Band struct {
	Threshold float64
	Label     domain.Level
}

// BandTable maps a scalar onto a label. Bands are listed best to worst.
// Higher-is-better tables use descending thresholds and match value >= threshold;
// higher-is-worse tables use ascending thresholds and match value <= threshold.
// A value that matches no band gets the last band's label.
type BandTable struct {
	Bands          []Band
	HigherIsBetter bool
}

// NewBandTable validates threshold ordering for the table's direction.
func NewBandTable(higherIsBetter bool, bands ...Band) (BandTable, error) {
	if len(bands) == 0 {
		return BandTable{}, fmt.Errorf("%w: band table is empty", ErrInvalidInput)
	}
	for i, b := range bands {
		if math.IsNaN(b.Threshold) || math.IsInf(b.Threshold, 0) {
			return BandTable{}, fmt.Errorf("%w: band %q threshold is not finite", ErrInvalidInput, b.Label)
		}
		if i == 0 {
			continue
		}
		prev := bands[i-1].Threshold
		if higherIsBetter && b.Threshold >= prev {
			return BandTable{}, fmt.Errorf("%w: thresholds must descend (%v after %v)", ErrInvalidInput, b.Threshold, prev)
		}
		if !higherIsBetter && b.Threshold <= prev {
			return BandTable{}, fmt.Errorf("%w: thresholds must ascend (%v after %v)", ErrInvalidInput, b.Threshold, prev)
		}
	}
	return BandTable{Bands: bands, HigherIsBetter: higherIsBetter}, nil
}

// MustBandTable is NewBandTable for package-level tables.
func MustBandTable(higherIsBetter bool, bands ...Band) BandTable {
	t, err := NewBandTable(higherIsBetter, bands...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t BandTable) Classify(value float64) (domain.Level, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", fmt.Errorf("%w: band value %v is not finite", ErrInvalidInput, value)
	}
	if len(t.Bands) == 0 {
		return "", fmt.Errorf("%w: band table is empty", ErrInvalidInput)
	}
	for _, b := range t.Bands {
		if t.HigherIsBetter && value >= b.Threshold {
			return b.Label, nil
		}
		if !t.HigherIsBetter && value <= b.Threshold {
			return b.Label, nil
		}
	}
	return t.Bands[len(t.Bands)-1].Label, nil
}

// Shared tables. Every score classification in the module goes through one of these.
var (
	// Average habit consistency and routine execution, in percent.
	rateTable = MustBandTable(true,
		Band{70, domain.LevelGood},
		Band{50, domain.LevelFair},
		Band{0, domain.LevelPoor},
	)

	// Average health wellness, already normalised to higher-is-better.
	wellnessTable = MustBandTable(true,
		Band{70, domain.LevelGood},
		Band{40, domain.LevelFair},
		Band{0, domain.LevelPoor},
	)

	healthBetterTable = MustBandTable(true,
		Band{70, domain.LevelGood},
		Band{40, domain.LevelFair},
		Band{0, domain.LevelPoor},
	)

	healthWorseTable = MustBandTable(false,
		Band{30, domain.LevelGood},
		Band{60, domain.LevelFair},
		Band{100, domain.LevelPoor},
	)
)

// IndicatorLevel bands one health indicator according to its direction.
func IndicatorLevel(h domain.HealthIndicator) (domain.Level, error) {
	if h.Direction == domain.HigherIsWorse {
		return healthWorseTable.Classify(h.Score)
	}
	return healthBetterTable.Classify(h.Score)
}
