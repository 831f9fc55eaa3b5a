// Package schedule turns a task snapshot and a per-weekday hour budget into
// a weekly study plan. The generator is a deterministic greedy heuristic,
// not an optimizer: it ranks tasks by an urgency score and packs them into
// days front to back, leaving whatever does not fit as an unscheduled
// remainder.
package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/benjamonnguyen/studygo"
)

type Options struct {
	// Horizon is the number of days to plan, default 7. Days iterate in
	// calendar order Monday through Sunday, repeating past one week.
	Horizon int
	// MaxSessionHours caps a single entry, default 2.
	MaxSessionHours float64
	// MinSessionHours is the smallest block worth emitting, default 0.5.
	MinSessionHours float64
	// SubjectCap is the soft per-day limit of sessions sharing a subject,
	// default 2. Over-cap tasks are skipped for the day, not dropped.
	SubjectCap int
	// BreakThresholdHours flags a day for a break recommendation when its
	// allocation exceeds it, default 4.
	BreakThresholdHours float64
	// Now pins the reference time for urgency scoring and day dates.
	// Zero means time.Now().
	Now time.Time
}

const (
	DefaultHorizon             = 7
	DefaultMaxSessionHours     = 2.0
	DefaultMinSessionHours     = 0.5
	DefaultSubjectCap          = 2
	DefaultBreakThresholdHours = 4.0
)

func (o Options) normalized() Options {
	if o.Horizon <= 0 {
		o.Horizon = DefaultHorizon
	}
	if o.MaxSessionHours <= 0 {
		o.MaxSessionHours = DefaultMaxSessionHours
	}
	if o.MinSessionHours <= 0 {
		o.MinSessionHours = DefaultMinSessionHours
	}
	if o.SubjectCap <= 0 {
		o.SubjectCap = DefaultSubjectCap
	}
	if o.BreakThresholdHours <= 0 {
		o.BreakThresholdHours = DefaultBreakThresholdHours
	}
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	return o
}

// Urgency scores a task against a reference time. Days until deadline are
// clamped to a minimum of 0.5, so overdue and same-day tasks share the same
// capped maximal score rather than escalating without bound.
func Urgency(t studygo.Task, now time.Time) float64 {
	days := t.DaysUntilDeadline(now)
	if days < 0.5 {
		days = 0.5
	}
	return float64(t.Priority) * (10 / days) * float64(t.Difficulty)
}

// candidate tracks a task's remaining work while packing.
type candidate struct {
	task    studygo.Task
	urgency float64
	left    float64
}

// Generate produces a plan for the given tasks and budget. Completed tasks
// are ignored; an empty active set yields an empty plan. A negative budget
// value is the only error.
func Generate(tasks []studygo.Task, budget studygo.DayAvailability, opts Options) (*WeeklyPlan, error) {
	for day, hours := range budget {
		if hours < 0 {
			return nil, &studygo.ValidationError{
				Field:  "dayBudget",
				Reason: fmt.Sprintf("%s must not be negative, got %v", day, hours),
			}
		}
	}

	opts = opts.normalized()

	candidates := make([]*candidate, 0, len(tasks))
	for _, t := range tasks {
		if t.Done() {
			continue
		}
		if left := t.RemainingHours(); left > 0 {
			candidates = append(candidates, &candidate{
				task:    t,
				urgency: Urgency(t, opts.Now),
				left:    left,
			})
		}
	}
	rank(candidates)

	plan := &WeeklyPlan{GeneratedAt: opts.Now}
	start := startOfWeek(opts.Now)

	for offset := 0; offset < opts.Horizon; offset++ {
		date := start.AddDate(0, 0, offset)
		day := Day{
			Weekday:        date.Weekday(),
			Name:           date.Weekday().String(),
			Date:           date,
			AvailableHours: budget[date.Weekday()],
		}

		remaining := day.AvailableHours
		subjectSessions := make(map[string]int)

		for _, c := range candidates {
			if remaining < opts.MinSessionHours {
				break
			}
			if c.left <= 0 {
				continue
			}
			if subjectSessions[c.task.Subject] >= opts.SubjectCap {
				// over the diversity cap today; retry on a later day
				continue
			}

			hours := min3(remaining, c.left, opts.MaxSessionHours)
			if hours < opts.MinSessionHours {
				continue
			}

			day.Entries = append(day.Entries, Entry{
				TaskID:     c.task.ID,
				Title:      c.task.Title,
				Subject:    c.task.Subject,
				Type:       c.task.Type,
				Priority:   c.task.Priority,
				Difficulty: c.task.Difficulty,
				Hours:      hours,
				Slot:       slotFor(c.task),
				DaysLeft:   c.task.DaysUntilDeadline(opts.Now),
			})
			subjectSessions[c.task.Subject]++
			remaining -= hours
			c.left -= hours
			day.TotalHours += hours
		}

		day.RecommendBreak = day.TotalHours > opts.BreakThresholdHours
		day.Recommendations = recommendations(day)
		plan.Days = append(plan.Days, day)
	}

	for _, c := range candidates {
		if c.left > hourEpsilon {
			plan.Unscheduled = append(plan.Unscheduled, Remainder{
				TaskID: c.task.ID,
				Title:  c.task.Title,
				Hours:  c.left,
			})
		}
	}

	return plan, nil
}

const hourEpsilon = 1e-9

// rank sorts by urgency descending; ties break by priority, then
// difficulty, then original insertion order.
func rank(candidates []*candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.urgency != b.urgency {
			return a.urgency > b.urgency
		}
		if a.task.Priority != b.task.Priority {
			return a.task.Priority > b.task.Priority
		}
		return a.task.Difficulty > b.task.Difficulty
	})
}

// slotFor is the advisory time-of-day table: hard tasks in the morning,
// assignments in the afternoon, everything else in the evening.
func slotFor(t studygo.Task) TimeOfDay {
	if t.Difficulty >= 4 {
		return Morning
	}
	if t.Type == studygo.TypeAssignment {
		return Afternoon
	}
	return Evening
}

// startOfWeek is the upcoming Monday at midnight, or today if already
// Monday, so plan days run Monday through Sunday.
func startOfWeek(now time.Time) time.Time {
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for date.Weekday() != time.Monday {
		date = date.AddDate(0, 0, 1)
	}
	return date
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
