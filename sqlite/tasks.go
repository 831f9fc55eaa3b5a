package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Thiht/transactor"
	txStdLib "github.com/Thiht/transactor/stdlib"
	"github.com/google/uuid"

	"github.com/benjamonnguyen/studygo"
)

const selectAll = "SELECT id, title, subject, deadline, priority, estimated_hours, task_type, difficulty, completion, created_at FROM tasks"

type scannable interface {
	Scan(...any) error
}

func generateParameters(n int) string {
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("(?")
	for range n - 1 {
		sb.WriteString(",?")
	}
	sb.WriteString(")")
	return sb.String()
}

type taskEntity struct {
	ID             string
	Title          string
	Subject        string
	Deadline       int64
	Priority       int
	EstimatedHours float64
	TaskType       string
	Difficulty     int
	Completion     int
	CreatedAt      int64
}

// taskRepo persists task snapshots; SaveTasks rewrites the whole table in
// one transaction so a failed save never leaves a partial set behind.
type taskRepo struct {
	transactor transactor.Transactor
	dbGetter   txStdLib.DBGetter
	l          studygo.Logger
}

var _ studygo.TaskRepo = (*taskRepo)(nil)

func NewTaskRepo(transactor transactor.Transactor, dbGetter txStdLib.DBGetter, logger studygo.Logger) studygo.TaskRepo {
	return &taskRepo{
		transactor: transactor,
		dbGetter:   dbGetter,
		l:          logger,
	}
}

func (r *taskRepo) LoadTasks(ctx context.Context) ([]studygo.Task, error) {
	db := r.dbGetter(ctx)
	rows, err := db.QueryContext(ctx, selectAll+" ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var tasks []studygo.Task
	for rows.Next() {
		task, err := extractTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	r.l.Debug("loaded tasks", "count", len(tasks))
	return tasks, nil
}

func (r *taskRepo) SaveTasks(ctx context.Context, tasks []studygo.Task) error {
	return r.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		db := r.dbGetter(ctx)

		if _, err := db.ExecContext(ctx, "DELETE FROM tasks"); err != nil {
			return err
		}

		query := "INSERT INTO tasks (id, title, subject, deadline, priority, estimated_hours, task_type, difficulty, completion, created_at, position) VALUES " + generateParameters(11)
		for i, task := range tasks {
			e := mapToTaskEntity(task)
			args := []any{
				e.ID,
				e.Title,
				e.Subject,
				e.Deadline,
				e.Priority,
				e.EstimatedHours,
				e.TaskType,
				e.Difficulty,
				e.Completion,
				e.CreatedAt,
				i,
			}
			r.l.Debug("saving task", "query", query, "args", args)
			if _, err := db.ExecContext(ctx, query, args...); err != nil {
				return err
			}
		}
		return nil
	})
}

func extractTask(s scannable) (studygo.Task, error) {
	var e taskEntity
	if err := s.Scan(
		&e.ID,
		&e.Title,
		&e.Subject,
		&e.Deadline,
		&e.Priority,
		&e.EstimatedHours,
		&e.TaskType,
		&e.Difficulty,
		&e.Completion,
		&e.CreatedAt,
	); err != nil {
		return studygo.Task{}, err
	}
	return mapToTask(e)
}

func mapToTaskEntity(task studygo.Task) taskEntity {
	return taskEntity{
		ID:             task.ID.String(),
		Title:          task.Title,
		Subject:        task.Subject,
		Deadline:       task.Deadline.Unix(),
		Priority:       task.Priority,
		EstimatedHours: task.EstimatedHours,
		TaskType:       string(task.Type),
		Difficulty:     task.Difficulty,
		Completion:     task.Completion,
		CreatedAt:      task.CreatedAt.Unix(),
	}
}

func mapToTask(e taskEntity) (studygo.Task, error) {
	id, err := uuid.Parse(e.ID)
	if err != nil {
		return studygo.Task{}, fmt.Errorf("parse task id %q: %w", e.ID, err)
	}
	return studygo.Task{
		ID:             id,
		Title:          e.Title,
		Subject:        e.Subject,
		Deadline:       time.Unix(e.Deadline, 0).Local(),
		Priority:       e.Priority,
		EstimatedHours: e.EstimatedHours,
		Type:           studygo.TaskType(e.TaskType),
		Difficulty:     e.Difficulty,
		Completion:     e.Completion,
		CreatedAt:      time.Unix(e.CreatedAt, 0).Local(),
	}, nil
}
