package main

import (
	"time"

	"github.com/benjamonnguyen/studygo"
)

// seedSampleTasks fills an empty store with demonstration tasks so a first
// run has something to schedule.
func seedSampleTasks(store *studygo.TaskStore) {
	now := time.Now()
	samples := []studygo.Task{
		{
			Title:          "Calculus Integration Problems",
			Subject:        "Mathematics",
			Deadline:       now.AddDate(0, 0, 3),
			Priority:       4,
			EstimatedHours: 5,
			Type:           studygo.TypeAssignment,
			Difficulty:     4,
		},
		{
			Title:          "Physics Midterm Study",
			Subject:        "Physics",
			Deadline:       now.AddDate(0, 0, 7),
			Priority:       5,
			EstimatedHours: 8,
			Type:           studygo.TypeExam,
			Difficulty:     5,
		},
		{
			Title:          "History Essay Research",
			Subject:        "History",
			Deadline:       now.AddDate(0, 0, 5),
			Priority:       3,
			EstimatedHours: 4,
			Type:           studygo.TypeAssignment,
			Difficulty:     3,
		},
		{
			Title:          "Chemistry Lab Report",
			Subject:        "Chemistry",
			Deadline:       now.AddDate(0, 0, 2),
			Priority:       4,
			EstimatedHours: 3,
			Type:           studygo.TypeAssignment,
			Difficulty:     3,
		},
	}

	for _, task := range samples {
		if _, err := store.Create(task); err != nil {
			logger.Error("failed seeding task", "title", task.Title, "error", err)
		}
	}
	logger.Info("seeded sample tasks", "count", store.Len())
}
