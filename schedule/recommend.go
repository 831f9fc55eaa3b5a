package schedule

import "time"

// recommendations builds the advisory notes for one planned day. They are
// display-only and never feed back into packing.
func recommendations(day Day) []string {
	var recs []string

	if day.AvailableHours > 0 {
		if day.TotalHours > day.AvailableHours*0.9 {
			recs = append(recs, "Heavy study day - schedule regular breaks")
		} else if day.TotalHours < day.AvailableHours*0.5 {
			recs = append(recs, "Light day - consider adding review sessions")
		}
	}

	subjects := make(map[string]struct{})
	var hard, urgent int
	for _, e := range day.Entries {
		subjects[e.Subject] = struct{}{}
		if e.Difficulty >= 4 {
			hard++
		}
		if e.DaysLeft <= 2 {
			urgent++
		}
	}

	if len(subjects) > 3 {
		recs = append(recs, "Multiple subjects - plan transition time")
	}
	if hard > 1 {
		recs = append(recs, "Multiple challenging topics - space them out")
	}
	if urgent > 0 {
		recs = append(recs, "Urgent deadlines - prioritize these sessions")
	}

	if len(day.Entries) > 0 && (day.Weekday == time.Saturday || day.Weekday == time.Sunday) {
		recs = append(recs, "Weekend - good time for longer study sessions")
	}

	return recs
}
