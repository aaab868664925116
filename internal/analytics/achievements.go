package analytics

import (
	"alcyxob/fittrack/internal/domain"
)

type Achievement struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Earned bool   `json:"earned"`
}

// milestone is one fixed threshold; earned sees the workout count, the
// current streak and the rounded total volume.
type milestone struct {
	id     string
	title  string
	earned func(count, streak int, volume int64) bool
}

var milestones = []milestone{
	{"first-workout", "First Workout", func(c, _ int, _ int64) bool { return c >= 1 }},
	{"five-workouts", "5 Workouts", func(c, _ int, _ int64) bool { return c >= 5 }},
	{"ten-workouts", "10 Workouts", func(c, _ int, _ int64) bool { return c >= 10 }},
	{"three-day-streak", "3-Day Streak", func(_, s int, _ int64) bool { return s >= 3 }},
	{"seven-day-streak", "7-Day Streak", func(_, s int, _ int64) bool { return s >= 7 }},
	{"volume-1000", "1000kg Volume", func(_, _ int, v int64) bool { return v >= 1000 }},
}

// Achievements evaluates every milestone, always in the same order.
func Achievements(records []domain.WorkoutRecord, streak int) []Achievement {
	totals := CalculateTotals(records)
	out := make([]Achievement, 0, len(milestones))
	for _, m := range milestones {
		out = append(out, Achievement{
			ID:     m.id,
			Title:  m.title,
			Earned: m.earned(totals.Count, streak, totals.Volume),
		})
	}
	return out
}
