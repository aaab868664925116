package analytics

import (
	"cmp"
	"slices"
	"time"

	"alcyxob/fittrack/internal/domain"
)

// CurrentStreak counts consecutive calendar days (in loc) with a workout,
// anchored at the most recent one.
//
// Walking newest to oldest: a record one day before the anchor extends the
// streak and becomes the new anchor; a record on the anchor's day is skipped;
// anything older ends the walk. So D, D, D-2 is a streak of 1.
func CurrentStreak(records []domain.WorkoutRecord, loc *time.Location) int {
	if len(records) == 0 {
		return 0
	}
	if loc == nil {
		loc = time.UTC
	}

	sorted := newestFirst(records)

	streak := 1
	anchor := calendarDay(sorted[0].Time(), loc)
	for _, r := range sorted[1:] {
		day := calendarDay(r.Time(), loc)
		gap := daysBetween(anchor, day)
		if gap == 1 {
			streak++
			anchor = day
		} else if gap > 1 {
			break
		}
	}
	return streak
}

// WeeklyCount counts records created in the trailing seven days up to now.
func WeeklyCount(records []domain.WorkoutRecord, now time.Time) int {
	weekAgo := now.AddDate(0, 0, -7)
	var n int
	for _, r := range records {
		t := r.Time()
		if !t.Before(weekAgo) && !t.After(now) {
			n++
		}
	}
	return n
}

// calendarDay maps t to midnight UTC of its date in loc, so that two days
// are always a whole multiple of 24h apart regardless of DST.
func calendarDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(later, earlier time.Time) int {
	return int(later.Sub(earlier) / (24 * time.Hour))
}

func newestFirst(records []domain.WorkoutRecord) []domain.WorkoutRecord {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b domain.WorkoutRecord) int {
		return cmp.Compare(b.Timestamp, a.Timestamp)
	})
	return sorted
}

func oldestFirst(records []domain.WorkoutRecord) []domain.WorkoutRecord {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b domain.WorkoutRecord) int {
		return cmp.Compare(a.Timestamp, b.Timestamp)
	})
	return sorted
}
