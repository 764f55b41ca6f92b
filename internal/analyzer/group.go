package analyzer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lifedash/internal/app"
	"github.com/alexanderramin/lifedash/internal/domain"
)

type Dimension string

const (
	DimTemporal Dimension = "temporal"
	DimLifeArea Dimension = "life_area"
	DimOrigin   Dimension = "origin"
	DimHorizon  Dimension = "horizon"
	DimStatus   Dimension = "status"
)

var Dimensions = []Dimension{DimTemporal, DimLifeArea, DimOrigin, DimHorizon, DimStatus}

func ParseDimension(s string) (Dimension, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, d := range Dimensions {
		if s == string(d) {
			return d, true
		}
	}
	return "", false
}

// keyUnspecified collects entities whose origin or horizon is not set.
const keyUnspecified = "unspecified"

// bucketKeys returns every key of a dimension in display order.
func bucketKeys(dim Dimension) []string {
	var keys []string
	switch dim {
	case DimTemporal:
		for _, b := range Buckets {
			keys = append(keys, string(b))
		}
	case DimLifeArea:
		for _, a := range domain.LifeAreas {
			keys = append(keys, string(a))
		}
	case DimOrigin:
		for _, o := range domain.Origins {
			keys = append(keys, string(o))
		}
		keys = append(keys, keyUnspecified)
	case DimHorizon:
		for _, h := range domain.Horizons {
			keys = append(keys, string(h))
		}
		keys = append(keys, keyUnspecified)
	case DimStatus:
		for _, s := range domain.Statuses {
			keys = append(keys, string(s))
		}
	}
	return keys
}

var bucketLabels = map[string]string{
	string(BucketOverdue):  "Overdue",
	string(BucketToday):    "Today",
	string(BucketThisWeek): "This week",
	string(BucketLater):    "Later",
	string(BucketNoDate):   "No date",
}

func labelFor(key string) string {
	if l, ok := bucketLabels[key]; ok {
		return l
	}
	words := strings.ReplaceAll(key, "_", " ")
	return strings.ToUpper(words[:1]) + words[1:]
}

// Group partitions entities along dim. Every bucket of the dimension is
// returned, empty ones included, and items keep their input order. Status
// grouping sees every entity; the other dimensions see active entities only.
func Group(entities []domain.Entity, dim Dimension, now time.Time) ([]app.Group, error) {
	keys := bucketKeys(dim)
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: unknown dimension %q", ErrInvalidInput, dim)
	}
	if dim == DimTemporal && now.IsZero() {
		return nil, fmt.Errorf("%w: now is not set", ErrInvalidInput)
	}

	index := make(map[string]int, len(keys))
	groups := make([]app.Group, len(keys))
	for i, k := range keys {
		index[k] = i
		groups[i] = app.Group{Key: k, Label: labelFor(k), Items: []domain.Entity{}}
	}

	for _, e := range entities {
		key, ok, err := groupKey(e, dim, now)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		i, known := index[key]
		if !known {
			return nil, fmt.Errorf("%w: %s %q has unknown %s %q", ErrInvalidInput, e.Kind(), e.Common().ID, dim, key)
		}
		groups[i].Items = append(groups[i].Items, e)
	}

	for i := range groups {
		groups[i].Count = len(groups[i].Items)
	}
	return groups, nil
}

// groupKey returns the bucket key of e, or false when e is excluded.
func groupKey(e domain.Entity, dim Dimension, now time.Time) (string, bool, error) {
	r := e.Common()
	if dim == DimStatus {
		return string(r.Status.OrPending()), true, nil
	}
	if !r.IsActive() {
		return "", false, nil
	}
	switch dim {
	case DimTemporal:
		b, _ := TemporalBucket(r, now)
		return string(b), true, nil
	case DimLifeArea:
		if r.LifeArea == "" {
			return string(domain.AreaOther), true, nil
		}
		return string(r.LifeArea), true, nil
	}
	kv := &keyVisitor{dim: dim}
	e.Accept(kv)
	if kv.err != nil {
		return "", false, kv.err
	}
	if kv.key == "" {
		kv.key = keyUnspecified
	}
	return kv.key, true, nil
}

// keyVisitor resolves the kind-specific dimensions.
type keyVisitor struct {
	dim Dimension
	key string
	err error
}

func (v *keyVisitor) unsupported(kind domain.Kind) {
	v.err = fmt.Errorf("%w: %s by %s", ErrUnsupportedDimension, kind, v.dim)
}

func (v *keyVisitor) VisitCommitment(c domain.Commitment) {
	if v.dim != DimOrigin {
		v.unsupported(c.Kind())
		return
	}
	v.key = string(c.Origin)
}

func (v *keyVisitor) VisitTask(t domain.Task)       { v.unsupported(t.Kind()) }
func (v *keyVisitor) VisitHabit(h domain.Habit)     { v.unsupported(h.Kind()) }
func (v *keyVisitor) VisitRoutine(r domain.Routine) { v.unsupported(r.Kind()) }

func (v *keyVisitor) VisitPriority(p domain.Priority) {
	if v.dim != DimHorizon {
		v.unsupported(p.Kind())
		return
	}
	v.key = string(p.Horizon)
}

func (v *keyVisitor) VisitHealth(h domain.HealthIndicator) { v.unsupported(h.Kind()) }
