package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/benjamonnguyen/studygo"
)

// parseAddArgs builds a task from pipe-separated fields:
// title | subject | days until deadline | priority | hours | difficulty | type.
// Everything after the title is optional.
func parseAddArgs(arg string) (studygo.Task, error) {
	task := studygo.Task{
		Subject:        "General",
		Deadline:       time.Now().AddDate(0, 0, 7),
		Priority:       3,
		EstimatedHours: 1,
		Type:           studygo.TypeStudy,
		Difficulty:     3,
	}

	fields := strings.Split(arg, "|")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	task.Title = fields[0]
	for i, field := range fields[1:] {
		if field == "" {
			continue
		}
		var err error
		switch i {
		case 0:
			task.Subject = field
		case 1:
			var days float64
			if days, err = strconv.ParseFloat(field, 64); err == nil {
				task.Deadline = time.Now().Add(time.Duration(days * 24 * float64(time.Hour)))
			}
		case 2:
			task.Priority, err = strconv.Atoi(field)
		case 3:
			task.EstimatedHours, err = strconv.ParseFloat(field, 64)
		case 4:
			task.Difficulty, err = strconv.Atoi(field)
		case 5:
			task.Type = studygo.TaskType(strings.ToLower(field))
		}
		if err != nil {
			return studygo.Task{}, fmt.Errorf("could not parse %q: %w", field, err)
		}
	}

	return task, nil
}

// parseEditArgs turns key=value pairs into an update.
func parseEditArgs(arg string, now time.Time) (studygo.UpdateFields, error) {
	var fields studygo.UpdateFields
	if arg == "" {
		return fields, fmt.Errorf("usage: /e <n> <field>=<value> ...")
	}

	for _, pair := range strings.Fields(arg) {
		key, value, found := strings.Cut(pair, "=")
		if !found || value == "" {
			return studygo.UpdateFields{}, fmt.Errorf("expected <field>=<value>, got %q", pair)
		}

		var err error
		switch key {
		case "title":
			fields.Title = &value
		case "subject":
			fields.Subject = &value
		case "days":
			var days float64
			if days, err = strconv.ParseFloat(value, 64); err == nil {
				deadline := now.Add(time.Duration(days * 24 * float64(time.Hour)))
				fields.Deadline = &deadline
			}
		case "priority":
			var p int
			if p, err = strconv.Atoi(value); err == nil {
				fields.Priority = &p
			}
		case "hours":
			var h float64
			if h, err = strconv.ParseFloat(value, 64); err == nil {
				fields.EstimatedHours = &h
			}
		case "difficulty":
			var d int
			if d, err = strconv.Atoi(value); err == nil {
				fields.Difficulty = &d
			}
		case "type":
			typ := studygo.TaskType(strings.ToLower(value))
			fields.Type = &typ
		default:
			return studygo.UpdateFields{}, fmt.Errorf("unknown field %q", key)
		}
		if err != nil {
			return studygo.UpdateFields{}, fmt.Errorf("could not parse %q: %w", pair, err)
		}
	}

	return fields, nil
}

func parsePercent(arg string) (int, error) {
	percent, err := strconv.Atoi(strings.TrimSuffix(arg, "%"))
	if err != nil || percent < 0 || percent > 100 {
		return 0, fmt.Errorf("provide a progress percentage between 0 and 100")
	}
	return percent, nil
}

// parseFilter understands "subject=<s>", "type=<t>", "done" and "todo".
func parseFilter(arg string) (studygo.Filter, error) {
	var filter studygo.Filter
	for _, field := range strings.Fields(arg) {
		switch {
		case field == "done":
			done := true
			filter.Done = &done
		case field == "todo":
			done := false
			filter.Done = &done
		case strings.HasPrefix(field, "subject="):
			filter.Subject = strings.TrimPrefix(field, "subject=")
		case strings.HasPrefix(field, "type="):
			filter.Type = studygo.TaskType(strings.TrimPrefix(field, "type="))
		default:
			return studygo.Filter{}, fmt.Errorf("unknown filter %q", field)
		}
	}
	return filter, nil
}

// parseBudget reads seven Monday-through-Sunday hour values, or falls back
// to the configured default for every day.
func parseBudget(arg string, defaultHours float64) (studygo.DayAvailability, error) {
	weekdays := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}

	budget := make(studygo.DayAvailability, len(weekdays))
	if arg == "" {
		for _, day := range weekdays {
			budget[day] = defaultHours
		}
		return budget, nil
	}

	fields := strings.Fields(arg)
	if len(fields) != len(weekdays) {
		return nil, fmt.Errorf("provide %d hour values (Monday through Sunday), got %d", len(weekdays), len(fields))
	}
	for i, field := range fields {
		hours, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("could not parse %q: %w", field, err)
		}
		budget[weekdays[i]] = hours
	}
	return budget, nil
}
