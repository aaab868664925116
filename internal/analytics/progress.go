package analytics

import (
	"errors"
	"time"

	"alcyxob/fittrack/internal/domain"
)

var ErrNotEnoughData = errors.New("at least 2 workouts are needed for a progress report")

// ProgressReport compares the first and the latest record by sets·reps.
type ProgressReport struct {
	First         domain.WorkoutRecord `json:"first"`
	Latest        domain.WorkoutRecord `json:"latest"`
	ChangePercent float64              `json:"changePercent"`
}

func Progress(records []domain.WorkoutRecord) (*ProgressReport, error) {
	if len(records) < 2 {
		return nil, ErrNotEnoughData
	}

	sorted := oldestFirst(records)
	first, latest := sorted[0], sorted[len(sorted)-1]

	base := float64(first.Sets) * float64(first.Reps)
	var change float64
	if base > 0 {
		change = (float64(latest.Sets)*float64(latest.Reps) - base) / base * 100
	}

	return &ProgressReport{
		First:         first,
		Latest:        latest,
		ChangePercent: change,
	}, nil
}

type DayCount struct {
	Day   string `json:"day"` // YYYY-MM-DD in the analytics time zone
	Count int    `json:"count"`
}

// MostActiveDay finds the calendar day with the most records. Ties go to
// the day that appears first in records.
func MostActiveDay(records []domain.WorkoutRecord, loc *time.Location) (DayCount, bool) {
	if len(records) == 0 {
		return DayCount{}, false
	}
	if loc == nil {
		loc = time.UTC
	}

	var days []DayCount
	pos := make(map[string]int)
	for _, r := range records {
		key := calendarDay(r.Time(), loc).Format(time.DateOnly)
		i, ok := pos[key]
		if !ok {
			i = len(days)
			pos[key] = i
			days = append(days, DayCount{Day: key})
		}
		days[i].Count++
	}

	best := days[0]
	for _, d := range days[1:] {
		if d.Count > best.Count {
			best = d
		}
	}
	return best, true
}

// Recent returns up to n records, newest first.
func Recent(records []domain.WorkoutRecord, n int) []domain.WorkoutRecord {
	if n <= 0 {
		return []domain.WorkoutRecord{}
	}
	sorted := newestFirst(records)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
