package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/lifedash/internal/domain"
	"github.com/google/uuid"
)

// idNamespace seeds generated ids so the same snapshot always converts to
// the same ids.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("lifedash/snapshot"))

// Convert transforms a validated SnapshotSchema into a domain snapshot. Dates
// are read as calendar dates in loc. Call ValidateSnapshot first; Convert
// assumes the schema is valid and returns the first parse error otherwise.
func Convert(schema *SnapshotSchema, loc *time.Location) (domain.Snapshot, error) {
	if loc == nil {
		loc = time.UTC
	}
	c := &converter{loc: loc}
	var snap domain.Snapshot

	for i, in := range schema.Commitments {
		r, err := c.record(domain.KindCommitment, i, in.RecordImport)
		if err != nil {
			return domain.Snapshot{}, err
		}
		snap.Commitments = append(snap.Commitments, domain.Commitment{
			Record:    r,
			Origin:    domain.Origin(strings.ToLower(in.Origin)),
			GoalID:    in.GoalID,
			ProjectID: in.ProjectID,
		})
	}

	for i, in := range schema.Tasks {
		r, err := c.record(domain.KindTask, i, in.RecordImport)
		if err != nil {
			return domain.Snapshot{}, err
		}
		t := domain.Task{
			Record: r,
			Effort: domain.EffortTier(domain.Coalesce(strings.ToLower(in.Effort), string(domain.EffortMedium))),
		}
		for j, st := range in.Subtasks {
			t.Subtasks = append(t.Subtasks, domain.Subtask{
				ID:    domain.Coalesce(st.ID, childID(r.ID, "subtask", j)),
				Title: st.Title,
				Done:  st.Done,
			})
		}
		snap.Tasks = append(snap.Tasks, t)
	}

	for i, in := range schema.Habits {
		r, err := c.record(domain.KindHabit, i, in.RecordImport)
		if err != nil {
			return domain.Snapshot{}, err
		}
		current := domain.FirstOr(0, in.CurrentStreak)
		h := domain.Habit{
			Record:        r,
			CurrentStreak: current,
			LongestStreak: domain.FirstOr(current, in.LongestStreak),
		}
		for _, ci := range in.History {
			d, err := c.date(ci.Date)
			if err != nil {
				return domain.Snapshot{}, fmt.Errorf("habit %q history: %w", r.ID, err)
			}
			h.History = append(h.History, domain.CheckIn{Date: d, Completed: ci.Completed})
		}
		snap.Habits = append(snap.Habits, h)
	}

	for i, in := range schema.Routines {
		r, err := c.record(domain.KindRoutine, i, in.RecordImport)
		if err != nil {
			return domain.Snapshot{}, err
		}
		rt := domain.Routine{Record: r}
		for j, it := range in.Items {
			rt.Items = append(rt.Items, domain.RoutineItem{
				ID:    domain.Coalesce(it.ID, childID(r.ID, "item", j)),
				Title: it.Title,
				Order: domain.FirstOr(j, it.Order),
			})
		}
		for _, ex := range in.Executions {
			d, err := c.date(ex.Date)
			if err != nil {
				return domain.Snapshot{}, fmt.Errorf("routine %q execution: %w", r.ID, err)
			}
			rt.Executions = append(rt.Executions, domain.Execution{
				Date:           d,
				CompletedItems: ex.CompletedItems,
				TotalItems:     ex.TotalItems,
			})
		}
		snap.Routines = append(snap.Routines, rt)
	}

	for i, in := range schema.Priorities {
		r, err := c.record(domain.KindPriority, i, in.RecordImport)
		if err != nil {
			return domain.Snapshot{}, err
		}
		snap.Priorities = append(snap.Priorities, domain.Priority{
			Record:      r,
			Horizon:     domain.Horizon(strings.ToLower(in.Horizon)),
			Tier:        domain.PriorityTier(domain.Coalesce(strings.ToLower(in.Tier), string(domain.TierOperational))),
			LinkedItems: in.LinkedItems,
			IsDominant:  in.Dominant,
		})
	}

	for i, in := range schema.Health {
		in.RecordImport.Title = domain.Coalesce(in.Title, in.Metric)
		if in.LifeArea == "" {
			in.LifeArea = string(domain.AreaHealth)
		}
		r, err := c.record(domain.KindHealth, i, in.RecordImport)
		if err != nil {
			return domain.Snapshot{}, err
		}
		snap.Health = append(snap.Health, domain.HealthIndicator{
			Record:    r,
			Metric:    in.Metric,
			Score:     domain.FirstOr(0, in.Score),
			Direction: domain.Direction(domain.Coalesce(strings.ToLower(in.Direction), string(domain.HigherIsBetter))),
		})
	}

	return snap, nil
}

type converter struct {
	loc *time.Location
}

func (c *converter) record(kind domain.Kind, index int, in RecordImport) (domain.Record, error) {
	id := domain.Coalesce(in.ID, generatedID(kind, index, in.Title))

	status, ok := domain.ParseStatus(in.Status)
	if !ok {
		return domain.Record{}, fmt.Errorf("%s %q: invalid status %q", kind, id, in.Status)
	}
	rank, ok := domain.ParseRank(in.Priority)
	if !ok {
		return domain.Record{}, fmt.Errorf("%s %q: invalid priority %q", kind, id, in.Priority)
	}

	r := domain.Record{
		ID:                id,
		Title:             in.Title,
		Status:            status,
		Rank:              rank,
		LifeArea:          domain.LifeArea(domain.Coalesce(strings.ToLower(in.LifeArea), string(domain.AreaOther))),
		Recurring:         in.Recurring,
		RecurrencePattern: in.RecurrencePattern,
		RescheduleCount:   domain.FirstOr(0, in.RescheduleCount),
	}

	var err error
	if in.DueDate != nil {
		d, derr := c.date(*in.DueDate)
		if derr != nil {
			return domain.Record{}, fmt.Errorf("%s %q due_date: %w", kind, id, derr)
		}
		r.DueDate = &d
	}
	if in.DueTime != nil {
		if r.DueTime, err = parseTimeOfDay(*in.DueTime); err != nil {
			return domain.Record{}, fmt.Errorf("%s %q due_time: %w", kind, id, err)
		}
	}
	if r.CreatedAt, err = c.timestamp(in.CreatedAt); err != nil {
		return domain.Record{}, fmt.Errorf("%s %q created_at: %w", kind, id, err)
	}
	if r.UpdatedAt, err = c.timestamp(in.UpdatedAt); err != nil {
		return domain.Record{}, fmt.Errorf("%s %q updated_at: %w", kind, id, err)
	}
	if in.CompletedAt != nil {
		t, terr := c.timestamp(in.CompletedAt)
		if terr != nil {
			return domain.Record{}, fmt.Errorf("%s %q completed_at: %w", kind, id, terr)
		}
		r.CompletedAt = &t
	}
	return r, nil
}

func (c *converter) date(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, c.loc)
}

// timestamp returns the zero time for a missing value.
func (c *converter) timestamp(s *string) (time.Time, error) {
	if s == nil {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(c.loc), nil
}

func parseTimeOfDay(s string) (*domain.TimeOfDay, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return nil, err
	}
	return &domain.TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func generatedID(kind domain.Kind, index int, title string) string {
	name := string(kind) + "/" + strconv.Itoa(index) + "/" + title
	return uuid.NewSHA1(idNamespace, []byte(name)).String()
}

func childID(parent, kind string, index int) string {
	return uuid.NewSHA1(idNamespace, []byte(parent+"/"+kind+"/"+strconv.Itoa(index))).String()
}
