package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/benjamonnguyen/studygo/schedule"
)

// exportPlan writes the plan to a timestamped JSON file plus a readable text
// version, and returns the written paths.
func exportPlan(plan *schedule.WeeklyPlan, dir string) ([]string, error) {
	timestamp := time.Now().Format("20060102_150405")

	jsonPath := filepath.Join(dir, fmt.Sprintf("schedule_%s.json", timestamp))
	raw, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(jsonPath, raw, 0o644); err != nil {
		return nil, err
	}

	txtPath := filepath.Join(dir, fmt.Sprintf("schedule_%s.txt", timestamp))
	text := renderPlanText(plan)
	if err := os.WriteFile(txtPath, []byte(text), 0o644); err != nil {
		return nil, err
	}

	return []string{jsonPath, txtPath}, nil
}

// renderPlanText is the terminal rendering without escape codes.
func renderPlanText(plan *schedule.WeeklyPlan) string {
	var sb strings.Builder
	sb.WriteString("studygo - Weekly Plan\n")
	fmt.Fprintf(&sb, "generated %s\n", plan.GeneratedAt.Format(time.RFC1123))

	for _, day := range plan.Days {
		fmt.Fprintf(&sb, "\n%s (%s)\n", day.Name, day.Date.Format("2006-01-02"))
		fmt.Fprintf(&sb, "  Total: %.1fh / %.1fh available\n", day.TotalHours, day.AvailableHours)

		if len(day.Entries) == 0 {
			sb.WriteString("  No sessions scheduled\n")
			continue
		}
		sb.WriteString("  Sessions:\n")
		for _, e := range day.Entries {
			fmt.Fprintf(&sb, "    - %s: %s\n", e.Subject, e.Title)
			fmt.Fprintf(&sb, "      %.1fh | Priority: %d/5 | Time: %s | Deadline: %.0f days\n",
				e.Hours, e.Priority, e.Slot, e.DaysLeft)
		}
		if day.RecommendBreak {
			sb.WriteString("  Recommend a break during the day\n")
		}
		if len(day.Recommendations) > 0 {
			sb.WriteString("  Recommendations:\n")
			for _, rec := range day.Recommendations {
				fmt.Fprintf(&sb, "    %s\n", rec)
			}
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
