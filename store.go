package studygo

import (
	"time"

	"github.com/google/uuid"
)

// TaskStore is the in-memory task collection. Single-writer, no locking;
// every operation validates before mutating so a failed call leaves the
// store untouched. Insertion order is preserved by List.
type TaskStore struct {
	tasks []Task
	index map[uuid.UUID]int
}

func NewTaskStore(tasks ...Task) *TaskStore {
	s := &TaskStore{
		index: make(map[uuid.UUID]int, len(tasks)),
	}
	for _, t := range tasks {
		if t.ID == uuid.Nil {
			t.ID = uuid.New()
		}
		if _, exists := s.index[t.ID]; exists {
			continue
		}
		s.index[t.ID] = len(s.tasks)
		s.tasks = append(s.tasks, t)
	}
	return s
}

// Create assigns a new id and appends the task. The given ID and CreatedAt
// are ignored.
func (s *TaskStore) Create(t Task) (uuid.UUID, error) {
	if err := validateTask(t); err != nil {
		return uuid.Nil, err
	}

	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	s.index[t.ID] = len(s.tasks)
	s.tasks = append(s.tasks, t)
	return t.ID, nil
}

// UpdateFields holds the optional fields of an update. Nil fields are left
// unchanged.
type UpdateFields struct {
	Title          *string
	Subject        *string
	Deadline       *time.Time
	Priority       *int
	EstimatedHours *float64
	Type           *TaskType
	Difficulty     *int
	Completion     *int
}

func (s *TaskStore) Update(id uuid.UUID, fields UpdateFields) error {
	i, ok := s.index[id]
	if !ok {
		return &NotFoundError{ID: id}
	}

	updated := s.tasks[i]
	if fields.Title != nil {
		updated.Title = *fields.Title
	}
	if fields.Subject != nil {
		updated.Subject = *fields.Subject
	}
	if fields.Deadline != nil {
		updated.Deadline = *fields.Deadline
	}
	if fields.Priority != nil {
		updated.Priority = *fields.Priority
	}
	if fields.EstimatedHours != nil {
		updated.EstimatedHours = *fields.EstimatedHours
	}
	if fields.Type != nil {
		updated.Type = *fields.Type
	}
	if fields.Difficulty != nil {
		updated.Difficulty = *fields.Difficulty
	}
	if fields.Completion != nil {
		updated.Completion = *fields.Completion
	}

	if err := validateTask(updated); err != nil {
		return err
	}

	s.tasks[i] = updated
	return nil
}

func (s *TaskStore) Delete(id uuid.UUID) error {
	i, ok := s.index[id]
	if !ok {
		return &NotFoundError{ID: id}
	}

	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.tasks); j++ {
		s.index[s.tasks[j].ID] = j
	}
	return nil
}

func (s *TaskStore) Get(id uuid.UUID) (Task, error) {
	i, ok := s.index[id]
	if !ok {
		return Task{}, &NotFoundError{ID: id}
	}
	return s.tasks[i], nil
}

// Filter narrows a List call. Zero-value fields match everything.
type Filter struct {
	Subject string
	Type    TaskType
	Done    *bool
}

func (f Filter) matches(t Task) bool {
	if f.Subject != "" && t.Subject != f.Subject {
		return false
	}
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.Done != nil && t.Done() != *f.Done {
		return false
	}
	return true
}

// List returns tasks matching the filter, in insertion order.
func (s *TaskStore) List(f Filter) []Task {
	out := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if f.matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Active returns tasks eligible for scheduling, in insertion order.
func (s *TaskStore) Active() []Task {
	done := false
	return s.List(Filter{Done: &done})
}

func (s *TaskStore) Len() int {
	return len(s.tasks)
}

func validateTask(t Task) error {
	if t.Title == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if t.Priority < 1 || t.Priority > 5 {
		return &ValidationError{Field: "priority", Reason: "must be between 1 and 5"}
	}
	if t.Difficulty < 1 || t.Difficulty > 5 {
		return &ValidationError{Field: "difficulty", Reason: "must be between 1 and 5"}
	}
	if t.EstimatedHours <= 0 {
		return &ValidationError{Field: "estimatedHours", Reason: "must be positive"}
	}
	if t.Completion < 0 || t.Completion > 100 {
		return &ValidationError{Field: "completion", Reason: "must be between 0 and 100"}
	}
	if !t.Type.IsValid() {
		return &ValidationError{Field: "taskType", Reason: "must be one of study, assignment, exam, review"}
	}
	return nil
}
