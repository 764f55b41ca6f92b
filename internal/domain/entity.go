package domain

import "time"

// Entity is the closed set of trackable records. Only the types in this
// package implement it; callers dispatch on the concrete kind with Visitor.
type Entity interface {
	Kind() Kind
	Common() Record
	Accept(v Visitor)
}

// Visitor has one method per entity kind. Adding a kind adds a method here,
// so every visitor in the module stops compiling until it handles it.
type Visitor interface {
	VisitCommitment(c Commitment)
	VisitTask(t Task)
	VisitHabit(h Habit)
	VisitRoutine(r Routine)
	VisitPriority(p Priority)
	VisitHealth(h HealthIndicator)
}

// AsEntities widens a typed collection without copying the records twice.
func AsEntities[E Entity](items []E) []Entity {
	out := make([]Entity, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

type Commitment struct {
	Record
	Origin    Origin
	GoalID    string
	ProjectID string
}

func (c Commitment) Kind() Kind       { return KindCommitment }
func (c Commitment) Common() Record   { return c.Record }
func (c Commitment) Accept(v Visitor) { v.VisitCommitment(c) }

type Subtask struct {
	ID    string
	Title string
	Done  bool
}

type Task struct {
	Record
	Subtasks []Subtask
	Effort   EffortTier
}

func (t Task) Kind() Kind       { return KindTask }
func (t Task) Common() Record   { return t.Record }
func (t Task) Accept(v Visitor) { v.VisitTask(t) }

// SubtaskProgress returns done and total subtask counts.
func (t Task) SubtaskProgress() (done, total int) {
	for _, s := range t.Subtasks {
		if s.Done {
			done++
		}
	}
	return done, len(t.Subtasks)
}

// CheckIn is one day of habit history.
type CheckIn struct {
	Date      time.Time
	Completed bool
}

type Habit struct {
	Record
	CurrentStreak int
	LongestStreak int
	History       []CheckIn
}

func (h Habit) Kind() Kind       { return KindHabit }
func (h Habit) Common() Record   { return h.Record }
func (h Habit) Accept(v Visitor) { v.VisitHabit(h) }

type RoutineItem struct {
	ID    string
	Title string
	Order int
}

// Execution records how much of a routine was carried out on one day.
type Execution struct {
	Date           time.Time
	CompletedItems int
	TotalItems     int
}

type Routine struct {
	Record
	Items      []RoutineItem
	Executions []Execution
}

func (r Routine) Kind() Kind       { return KindRoutine }
func (r Routine) Common() Record   { return r.Record }
func (r Routine) Accept(v Visitor) { v.VisitRoutine(r) }

type Priority struct {
	Record
	Horizon     Horizon
	Tier        PriorityTier
	LinkedItems []string
	IsDominant  bool
}

func (p Priority) Kind() Kind       { return KindPriority }
func (p Priority) Common() Record   { return p.Record }
func (p Priority) Accept(v Visitor) { v.VisitPriority(p) }

type HealthIndicator struct {
	Record
	Metric    string
	Score     float64
	Direction Direction
}

func (h HealthIndicator) Kind() Kind       { return KindHealth }
func (h HealthIndicator) Common() Record   { return h.Record }
func (h HealthIndicator) Accept(v Visitor) { v.VisitHealth(h) }

// Wellness maps the score onto a higher-is-better 0-100 scale.
func (h HealthIndicator) Wellness() float64 {
	if h.Direction == HigherIsWorse {
		return 100 - h.Score
	}
	return h.Score
}

// Snapshot is one immutable read of every domain collection.
type Snapshot struct {
	Commitments []Commitment
	Tasks       []Task
	Habits      []Habit
	Routines    []Routine
	Priorities  []Priority
	Health      []HealthIndicator
}

// Entities returns the collection for kind as a generic entity slice.
func (s Snapshot) Entities(kind Kind) []Entity {
	switch kind {
	case KindCommitment:
		return AsEntities(s.Commitments)
	case KindTask:
		return AsEntities(s.Tasks)
	case KindHabit:
		return AsEntities(s.Habits)
	case KindRoutine:
		return AsEntities(s.Routines)
	case KindPriority:
		return AsEntities(s.Priorities)
	case KindHealth:
		return AsEntities(s.Health)
	}
	return nil
}
