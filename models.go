package studygo

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Subject        string    `json:"subject"`
	Deadline       time.Time `json:"deadline"`
	Priority       int       `json:"priority"`
	EstimatedHours float64   `json:"estimatedHours"`
	Type           TaskType  `json:"taskType"`
	Difficulty     int       `json:"difficulty"`
	Completion     int       `json:"completion"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Done reports whether the task is fully completed and therefore excluded
// from scheduling and urgency ranking.
func (t Task) Done() bool {
	return t.Completion >= 100
}

// RemainingHours is the estimated work left after accounting for progress.
func (t Task) RemainingHours() float64 {
	return t.EstimatedHours * (1 - float64(t.Completion)/100)
}

// DaysUntilDeadline is the real-valued number of days between now and the
// deadline. Negative for overdue tasks.
func (t Task) DaysUntilDeadline(now time.Time) float64 {
	return t.Deadline.Sub(now).Hours() / 24
}

type TaskType string

const (
	TypeStudy      TaskType = "study"
	TypeAssignment TaskType = "assignment"
	TypeExam       TaskType = "exam"
	TypeReview     TaskType = "review"
)

func (t TaskType) IsValid() bool {
	switch t {
	case TypeStudy, TypeAssignment, TypeExam, TypeReview:
		return true
	}
	return false
}

// DayAvailability maps a weekday to available study hours.
type DayAvailability map[time.Weekday]float64
