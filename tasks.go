package studygo

import (
	"context"
)

// TaskRepo persists task snapshots. The store never calls it; the caller
// loads at startup and saves the whole store after mutations.
type TaskRepo interface {
	LoadTasks(context.Context) ([]Task, error)
	SaveTasks(context.Context, []Task) error
}
