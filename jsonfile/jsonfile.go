// Package jsonfile implements studygo.TaskRepo over a single JSON file.
// The whole task list is rewritten on every save; there is no partial-write
// protection beyond a temp-file rename.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/benjamonnguyen/studygo"
)

type fileDoc struct {
	Tasks       []studygo.Task `json:"tasks"`
	LastUpdated time.Time      `json:"lastUpdated"`
}

type taskRepo struct {
	path string
	l    studygo.Logger
}

var _ studygo.TaskRepo = (*taskRepo)(nil)

func NewTaskRepo(path string, logger studygo.Logger) studygo.TaskRepo {
	return &taskRepo{
		path: path,
		l:    logger,
	}
}

// LoadTasks returns an empty set when the file does not exist yet.
func (r *taskRepo) LoadTasks(_ context.Context) ([]studygo.Task, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.l.Debug("no task file yet", "path", r.path)
			return nil, nil
		}
		return nil, &studygo.IOError{Op: "load", Path: r.path, Err: err}
	}

	var doc fileDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &studygo.IOError{Op: "load", Path: r.path, Err: err}
	}

	r.l.Debug("loaded tasks", "path", r.path, "count", len(doc.Tasks))
	return doc.Tasks, nil
}

func (r *taskRepo) SaveTasks(_ context.Context, tasks []studygo.Task) error {
	doc := fileDoc{
		Tasks:       tasks,
		LastUpdated: time.Now(),
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &studygo.IOError{Op: "save", Path: r.path, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o744); err != nil {
		return &studygo.IOError{Op: "save", Path: r.path, Err: err}
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return &studygo.IOError{Op: "save", Path: r.path, Err: err}
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return &studygo.IOError{Op: "save", Path: r.path, Err: err}
	}

	r.l.Debug("saved tasks", "path", r.path, "count", len(tasks))
	return nil
}
