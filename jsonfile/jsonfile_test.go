package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/benjamonnguyen/studygo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(interface{}, ...interface{}) {}
func (nopLogger) Info(interface{}, ...interface{})  {}
func (nopLogger) Warn(interface{}, ...interface{})  {}
func (nopLogger) Error(interface{}, ...interface{}) {}
func (nopLogger) Fatal(interface{}, ...interface{}) {}

func TestLoadMissingFile(t *testing.T) {
	repo := NewTaskRepo(filepath.Join(t.TempDir(), "tasks.json"), nopLogger{})
	tasks, err := repo.LoadTasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestSaveThenLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.json")
	repo := NewTaskRepo(path, nopLogger{})

	want := []studygo.Task{
		{
			ID:             uuid.New(),
			Title:          "Calculus Integration Problems",
			Subject:        "Mathematics",
			Deadline:       time.Now().Add(72 * time.Hour).Truncate(time.Second),
			Priority:       4,
			EstimatedHours: 5,
			Type:           studygo.TypeAssignment,
			Difficulty:     4,
			Completion:     25,
			CreatedAt:      time.Now().Truncate(time.Second),
		},
	}
	require.NoError(t, repo.SaveTasks(ctx, want))

	got, err := repo.LoadTasks(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want[0].ID, got[0].ID)
	assert.Equal(t, want[0].Type, got[0].Type)
	assert.True(t, want[0].Deadline.Equal(got[0].Deadline))
	assert.Equal(t, want[0].Completion, got[0].Completion)
}

func TestSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.json")
	repo := NewTaskRepo(path, nopLogger{})

	require.NoError(t, repo.SaveTasks(ctx, []studygo.Task{{ID: uuid.New(), Title: "a"}}))
	require.NoError(t, repo.SaveTasks(ctx, nil))

	got, err := repo.LoadTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo := NewTaskRepo(path, nopLogger{})
	_, err := repo.LoadTasks(context.Background())
	var ioerr *studygo.IOError
	require.ErrorAs(t, err, &ioerr)
	assert.Equal(t, "load", ioerr.Op)
}
