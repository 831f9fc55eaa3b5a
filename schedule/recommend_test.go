package schedule

import (
	"testing"
	"time"

	"github.com/benjamonnguyen/studygo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(subject string, difficulty int, daysLeft float64) Entry {
	return Entry{Subject: subject, Difficulty: difficulty, DaysLeft: daysLeft}
}

func TestRecommendations(t *testing.T) {
	tests := []struct {
		name string
		day  Day
		want []string
	}{
		{
			name: "no budget and no sessions",
			day:  Day{Weekday: time.Monday},
			want: nil,
		},
		{
			name: "empty day with budget is a light day",
			day:  Day{Weekday: time.Monday, AvailableHours: 4},
			want: []string{"Light day - consider adding review sessions"},
		},
		{
			name: "under half the budget is a light day",
			day: Day{
				Weekday:        time.Monday,
				AvailableHours: 5,
				TotalHours:     2,
				Entries:        []Entry{entry("Math", 3, 5)},
			},
			want: []string{"Light day - consider adding review sessions"},
		},
		{
			name: "over ninety percent of the budget is a heavy day",
			day: Day{
				Weekday:        time.Monday,
				AvailableHours: 4,
				TotalHours:     3.8,
				Entries:        []Entry{entry("Math", 3, 5), entry("Physics", 3, 5)},
			},
			want: []string{"Heavy study day - schedule regular breaks"},
		},
		{
			name: "more than three subjects",
			day: Day{
				Weekday:        time.Monday,
				AvailableHours: 8,
				TotalHours:     6,
				Entries: []Entry{
					entry("Math", 3, 5), entry("Physics", 3, 5),
					entry("History", 3, 5), entry("Chemistry", 3, 5),
				},
			},
			want: []string{"Multiple subjects - plan transition time"},
		},
		{
			name: "multiple hard sessions",
			day: Day{
				Weekday:        time.Monday,
				AvailableHours: 6,
				TotalHours:     4,
				Entries:        []Entry{entry("Math", 5, 5), entry("Physics", 4, 5)},
			},
			want: []string{"Multiple challenging topics - space them out"},
		},
		{
			name: "urgent deadline",
			day: Day{
				Weekday:        time.Monday,
				AvailableHours: 3,
				TotalHours:     2,
				Entries:        []Entry{entry("Math", 3, 1.5)},
			},
			want: []string{"Urgent deadlines - prioritize these sessions"},
		},
		{
			name: "weekend with sessions",
			day: Day{
				Weekday:        time.Saturday,
				AvailableHours: 3,
				TotalHours:     2,
				Entries:        []Entry{entry("Math", 3, 5)},
			},
			want: []string{"Weekend - good time for longer study sessions"},
		},
		{
			name: "weekend without sessions gets no weekend note",
			day:  Day{Weekday: time.Sunday},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recommendations(tt.day))
		})
	}
}

func TestGenerateLightDayOnBudgetedEmptyDay(t *testing.T) {
	task := newTask("short", "Math", monday.Add(48*time.Hour), 3, 1, studygo.TypeStudy, 2)

	plan, err := Generate(
		[]studygo.Task{task},
		studygo.DayAvailability{time.Monday: 4, time.Tuesday: 2},
		Options{Now: monday},
	)
	require.NoError(t, err)

	// 1h of 4h on Monday, nothing left for Tuesday; both are light days
	assert.Contains(t, plan.Days[0].Recommendations, "Light day - consider adding review sessions")
	assert.Empty(t, plan.Days[1].Entries)
	assert.Contains(t, plan.Days[1].Recommendations, "Light day - consider adding review sessions")
}

func TestGenerateMinSessionLength(t *testing.T) {
	big := newTask("big", "Math", monday.Add(24*time.Hour), 5, 8, studygo.TypeStudy, 3)
	tiny := newTask("tiny", "Physics", monday.Add(24*time.Hour), 1, 0.3, studygo.TypeStudy, 1)

	plan, err := Generate(
		[]studygo.Task{big, tiny},
		studygo.DayAvailability{time.Monday: 4},
		Options{Now: monday, MaxSessionHours: 3},
	)
	require.NoError(t, err)

	// big takes 3h; tiny's 0.3h is under the half-hour floor and stays out
	require.Len(t, plan.Days[0].Entries, 1)
	assert.Equal(t, big.ID, plan.Days[0].Entries[0].TaskID)

	require.Len(t, plan.Unscheduled, 2)
	titles := []string{plan.Unscheduled[0].Title, plan.Unscheduled[1].Title}
	assert.Contains(t, titles, "tiny")
}
