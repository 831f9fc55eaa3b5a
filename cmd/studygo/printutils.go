package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/benjamonnguyen/studygo"
	"github.com/benjamonnguyen/studygo/schedule"
)

type color = string

const (
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorReset  = "\033[0m"
)

var faintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(false)

func colorize(color color, s string) string {
	return color + s + colorReset
}

func renderTasks(tasks []studygo.Task, timeFormat string) string {
	if len(tasks) == 0 {
		return "No tasks found."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Tasks (%d total)\n\n", len(tasks))
	for i, t := range tasks {
		status := " "
		if t.Done() {
			status = "x"
		}
		fmt.Fprintf(&sb, "%2d. [%s] %s\n", i+1, status, t.Title)
		detail := fmt.Sprintf(
			"%s | %s | due %s | P%d D%d | %.1fh | %d%%",
			t.Subject, t.Type, t.Deadline.Format(timeFormat),
			t.Priority, t.Difficulty, t.EstimatedHours, t.Completion,
		)
		fmt.Fprintf(&sb, "      %s\n", faintStyle.Render(detail))
	}
	return sb.String()
}

func renderPlan(plan *schedule.WeeklyPlan, timeFormat string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Weekly Plan - %.1fh over %d sessions\n", plan.TotalHours(), plan.SessionCount())

	for _, day := range plan.Days {
		fmt.Fprintf(&sb, "\n%s (%s) - %.1fh / %.1fh available\n",
			day.Name, day.Date.Format(timeFormat), day.TotalHours, day.AvailableHours)

		if len(day.Entries) == 0 {
			sb.WriteString(faintStyle.Render("  no sessions") + "\n")
			continue
		}
		for _, e := range day.Entries {
			fmt.Fprintf(&sb, "  - %s: %s\n", e.Subject, e.Title)
			detail := fmt.Sprintf("%.1fh | P%d D%d | %s | %.0f days left",
				e.Hours, e.Priority, e.Difficulty, e.Slot, e.DaysLeft)
			fmt.Fprintf(&sb, "    %s\n", faintStyle.Render(detail))
		}
		if day.RecommendBreak {
			sb.WriteString("  ! long day - remember to take breaks\n")
		}
		for _, rec := range day.Recommendations {
			fmt.Fprintf(&sb, "  * %s\n", rec)
		}
	}

	if len(plan.Unscheduled) > 0 {
		sb.WriteString("\nUnscheduled remainder:\n")
		for _, r := range plan.Unscheduled {
			fmt.Fprintf(&sb, "  - %s: %.1fh\n", r.Title, r.Hours)
		}
	}

	return sb.String()
}
