package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	txStdLib "github.com/Thiht/transactor/stdlib"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjamonnguyen/studygo"
)

type nopLogger struct{}

func (nopLogger) Debug(interface{}, ...interface{}) {}
func (nopLogger) Info(interface{}, ...interface{})  {}
func (nopLogger) Warn(interface{}, ...interface{})  {}
func (nopLogger) Error(interface{}, ...interface{}) {}
func (nopLogger) Fatal(interface{}, ...interface{}) {}

func newTestRepo(t *testing.T) (studygo.TaskRepo, *database) {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	trx, dbGetter := txStdLib.NewTransactor(db.DB(), txStdLib.NestedTransactionsSavepoints)
	return NewTaskRepo(trx, dbGetter, nopLogger{}), db
}

func testTask(title string, position int) studygo.Task {
	return studygo.Task{
		ID:             uuid.New(),
		Title:          title,
		Subject:        "Physics",
		Deadline:       time.Now().Add(time.Duration(position) * 24 * time.Hour).Truncate(time.Second),
		Priority:       3,
		EstimatedHours: 2.5,
		Type:           studygo.TypeExam,
		Difficulty:     4,
		Completion:     10,
		CreatedAt:      time.Now().Truncate(time.Second),
	}
}

func TestOpenCreatesMissingDir(t *testing.T) {
	// default DB path lives under ~/.studygo, absent on a fresh machine
	db, err := Open(filepath.Join(t.TempDir(), ".studygo", "studygo.db"))
	require.NoError(t, err)
	defer db.Close() //nolint:errcheck

	require.NoError(t, db.Migrate())
}

func TestLoadEmpty(t *testing.T) {
	repo, _ := newTestRepo(t)
	tasks, err := repo.LoadTasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestSaveThenLoadPreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	want := []studygo.Task{testTask("first", 1), testTask("second", 2), testTask("third", 3)}
	require.NoError(t, repo.SaveTasks(ctx, want))

	got, err := repo.LoadTasks(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Title, got[i].Title)
		assert.Equal(t, want[i].Type, got[i].Type)
		assert.Equal(t, want[i].EstimatedHours, got[i].EstimatedHours)
		assert.Equal(t, want[i].Completion, got[i].Completion)
		assert.True(t, want[i].Deadline.Equal(got[i].Deadline))
	}
}

func TestSaveReplacesPreviousSnapshot(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.SaveTasks(ctx, []studygo.Task{testTask("old", 1)}))
	replacement := testTask("new", 2)
	require.NoError(t, repo.SaveTasks(ctx, []studygo.Task{replacement}))

	got, err := repo.LoadTasks(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, replacement.ID, got[0].ID)
}

func TestLoadRejectsMalformedID(t *testing.T) {
	ctx := context.Background()
	repo, db := newTestRepo(t)

	_, err := db.DB().ExecContext(ctx,
		"INSERT INTO tasks (id, title, subject, deadline, priority, estimated_hours, task_type, difficulty, completion, created_at, position) VALUES "+generateParameters(11),
		"not-a-uuid", "Broken Row", "Physics", time.Now().Unix(), 3, 1.0, string(studygo.TypeStudy), 3, 0, time.Now().Unix(), 0)
	require.NoError(t, err)

	_, err = repo.LoadTasks(ctx)
	require.Error(t, err)
	assert.ErrorContains(t, err, `parse task id "not-a-uuid"`)
}
