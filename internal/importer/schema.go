package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SnapshotSchema is the on-disk shape of a dashboard snapshot. JSON files are
// accepted as well since JSON is a subset of YAML.
type SnapshotSchema struct {
	Commitments []CommitmentImport `yaml:"commitments,omitempty"`
	Tasks       []TaskImport       `yaml:"tasks,omitempty"`
	Habits      []HabitImport      `yaml:"habits,omitempty"`
	Routines    []RoutineImport    `yaml:"routines,omitempty"`
	Priorities  []PriorityImport   `yaml:"priorities,omitempty"`
	Health      []HealthImport     `yaml:"health,omitempty"`
}

// RecordImport holds the fields shared by every entity kind.
type RecordImport struct {
	ID                string  `yaml:"id,omitempty"`
	Title             string  `yaml:"title"`
	Status            string  `yaml:"status,omitempty"`
	Priority          string  `yaml:"priority,omitempty"`
	LifeArea          string  `yaml:"life_area,omitempty"`
	DueDate           *string `yaml:"due_date,omitempty"`
	DueTime           *string `yaml:"due_time,omitempty"`
	Recurring         bool    `yaml:"recurring,omitempty"`
	RecurrencePattern string  `yaml:"recurrence_pattern,omitempty"`
	RescheduleCount   *int    `yaml:"reschedule_count,omitempty"`
	CreatedAt         *string `yaml:"created_at,omitempty"`
	CompletedAt       *string `yaml:"completed_at,omitempty"`
	UpdatedAt         *string `yaml:"updated_at,omitempty"`
}

type CommitmentImport struct {
	RecordImport `yaml:",inline"`
	Origin       string `yaml:"origin,omitempty"`
	GoalID       string `yaml:"goal_id,omitempty"`
	ProjectID    string `yaml:"project_id,omitempty"`
}

type SubtaskImport struct {
	ID    string `yaml:"id,omitempty"`
	Title string `yaml:"title"`
	Done  bool   `yaml:"done,omitempty"`
}

type TaskImport struct {
	RecordImport `yaml:",inline"`
	Subtasks     []SubtaskImport `yaml:"subtasks,omitempty"`
	Effort       string          `yaml:"effort,omitempty"`
}

type CheckInImport struct {
	Date      string `yaml:"date"`
	Completed bool   `yaml:"completed"`
}

type HabitImport struct {
	RecordImport  `yaml:",inline"`
	CurrentStreak *int            `yaml:"current_streak,omitempty"`
	LongestStreak *int            `yaml:"longest_streak,omitempty"`
	History       []CheckInImport `yaml:"history,omitempty"`
}

type RoutineItemImport struct {
	ID    string `yaml:"id,omitempty"`
	Title string `yaml:"title"`
	Order *int   `yaml:"order,omitempty"`
}

type ExecutionImport struct {
	Date           string `yaml:"date"`
	CompletedItems int    `yaml:"completed_items"`
	TotalItems     int    `yaml:"total_items"`
}

type RoutineImport struct {
	RecordImport `yaml:",inline"`
	Items        []RoutineItemImport `yaml:"items,omitempty"`
	Executions   []ExecutionImport   `yaml:"executions,omitempty"`
}

type PriorityImport struct {
	RecordImport `yaml:",inline"`
	Horizon      string   `yaml:"horizon,omitempty"`
	Tier         string   `yaml:"tier,omitempty"`
	LinkedItems  []string `yaml:"linked_items,omitempty"`
	Dominant     bool     `yaml:"dominant,omitempty"`
}

type HealthImport struct {
	RecordImport `yaml:",inline"`
	Metric       string   `yaml:"metric"`
	Score        *float64 `yaml:"score"`
	Direction    string   `yaml:"direction,omitempty"`
}

// ParseSnapshot decodes a YAML or JSON snapshot document.
func ParseSnapshot(data []byte) (*SnapshotSchema, error) {
	var schema SnapshotSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return &schema, nil
}

// LoadSnapshot reads and parses a snapshot file.
func LoadSnapshot(path string) (*SnapshotSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSnapshot(data)
}

