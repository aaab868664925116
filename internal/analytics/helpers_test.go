package analytics

import (
	"time"

	"alcyxob/fittrack/internal/domain"
)

// day is a fixed reference point; all fixtures are relative to it.
var day = time.Date(2024, time.March, 10, 10, 0, 0, 0, time.UTC)

func rec(id, exercise string, at time.Time, sets, reps int, weight *float64) domain.WorkoutRecord {
	return domain.WorkoutRecord{
		ID:        id,
		AccountID: "acc-1",
		Exercise:  exercise,
		Sets:      sets,
		Reps:      reps,
		Weight:    weight,
		Timestamp: at.UnixMilli(),
	}
}

func kg(v float64) *float64 {
	return &v
}

func daysAgo(n int) time.Time {
	return day.AddDate(0, 0, -n)
}
