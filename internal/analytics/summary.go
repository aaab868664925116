package analytics

import (
	"time"

	"alcyxob/fittrack/internal/domain"
)

// Summary bundles every derived stat for the dashboard. It is rebuilt from
// the records on each request and never stored.
type Summary struct {
	Totals                 Totals                 `json:"totals"`
	UniqueExercises        int                    `json:"uniqueExercises"`
	AverageSets            float64                `json:"averageSets"`
	AverageWorkoutsPerWeek int                    `json:"averageWorkoutsPerWeek"`
	WeeklyCount            int                    `json:"weeklyCount"`
	Streak                 int                    `json:"streak"`
	TopExercises           []ExerciseCount        `json:"topExercises"`
	Achievements           []Achievement          `json:"achievements"`
	MostActiveDay          *DayCount              `json:"mostActiveDay,omitempty"`
	Recent                 []domain.WorkoutRecord `json:"recent"`
}

type SummaryOptions struct {
	Location     *time.Location
	TopExercises int
	Recent       int
}

func Summarize(records []domain.WorkoutRecord, now time.Time, opts SummaryOptions) Summary {
	streak := CurrentStreak(records, opts.Location)

	s := Summary{
		Totals:                 CalculateTotals(records),
		UniqueExercises:        UniqueExercises(records),
		AverageSets:            AverageSets(records),
		AverageWorkoutsPerWeek: AverageWorkoutsPerWeek(records),
		WeeklyCount:            WeeklyCount(records, now),
		Streak:                 streak,
		TopExercises:           TopExercises(records, opts.TopExercises),
		Achievements:           Achievements(records, streak),
		Recent:                 Recent(records, opts.Recent),
	}
	if day, ok := MostActiveDay(records, opts.Location); ok {
		s.MostActiveDay = &day
	}
	return s
}
