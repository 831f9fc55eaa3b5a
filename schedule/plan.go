package schedule

import (
	"time"

	"github.com/benjamonnguyen/studygo"
	"github.com/google/uuid"
)

// TimeOfDay is an advisory preference tag; it never affects packing.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

// Entry is one contiguous block of scheduled time for a single task on a
// single day. It references the task by id and carries display fields so a
// plan can be rendered without the store.
type Entry struct {
	TaskID     uuid.UUID        `json:"taskId"`
	Title      string           `json:"title"`
	Subject    string           `json:"subject"`
	Type       studygo.TaskType `json:"taskType"`
	Priority   int              `json:"priority"`
	Difficulty int              `json:"difficulty"`
	Hours      float64          `json:"hours"`
	Slot       TimeOfDay        `json:"slot"`
	DaysLeft   float64          `json:"daysLeft"`
}

// Day groups the entries allocated to one day of the horizon.
type Day struct {
	Weekday         time.Weekday `json:"-"`
	Name            string       `json:"weekday"`
	Date            time.Time    `json:"date"`
	Entries         []Entry      `json:"entries"`
	TotalHours      float64      `json:"totalHours"`
	AvailableHours  float64      `json:"availableHours"`
	RecommendBreak  bool         `json:"recommendBreak"`
	Recommendations []string     `json:"recommendations,omitempty"`
}

// Remainder reports hours that did not fit within the planning horizon.
type Remainder struct {
	TaskID uuid.UUID `json:"taskId"`
	Title  string    `json:"title"`
	Hours  float64   `json:"hours"`
}

// WeeklyPlan is a derived, disposable snapshot. It owns no tasks and is
// recomputed on demand.
type WeeklyPlan struct {
	GeneratedAt time.Time   `json:"generatedAt"`
	Days        []Day       `json:"days"`
	Unscheduled []Remainder `json:"unscheduled,omitempty"`
}

// TotalHours is the sum of allocated hours across the horizon.
func (p *WeeklyPlan) TotalHours() float64 {
	var total float64
	for _, d := range p.Days {
		total += d.TotalHours
	}
	return total
}

// SessionCount is the number of entries across the horizon.
func (p *WeeklyPlan) SessionCount() int {
	var n int
	for _, d := range p.Days {
		n += len(d.Entries)
	}
	return n
}
