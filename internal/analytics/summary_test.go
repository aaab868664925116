package analytics

import (
	"testing"
	"time"

	"alcyxob/fittrack/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	records := []domain.WorkoutRecord{
		rec("1", "Squat", daysAgo(2), 3, 10, kg(20)),
		rec("2", "Push-up", daysAgo(1), 4, 8, nil),
		rec("3", "Squat", day, 5, 5, kg(100)),
	}

	s := Summarize(records, day.Add(time.Hour), SummaryOptions{
		Location:     time.UTC,
		TopExercises: 1,
		Recent:       2,
	})

	assert.Equal(t, Totals{Count: 3, Sets: 12, Reps: 23, Volume: 3132}, s.Totals)
	assert.Equal(t, 2, s.UniqueExercises)
	assert.Equal(t, 4.0, s.AverageSets)
	assert.Equal(t, 1, s.AverageWorkoutsPerWeek)
	assert.Equal(t, 3, s.WeeklyCount)
	assert.Equal(t, 3, s.Streak)
	assert.Equal(t, []ExerciseCount{{Exercise: "Squat", Count: 2}}, s.TopExercises)
	assert.Equal(t, []string{"first-workout", "three-day-streak", "volume-1000"}, earnedIDs(s.Achievements))
	require.NotNil(t, s.MostActiveDay)
	assert.Equal(t, "2024-03-08", s.MostActiveDay.Day)
	require.Len(t, s.Recent, 2)
	assert.Equal(t, "3", s.Recent[0].ID)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, day, SummaryOptions{TopExercises: 5, Recent: 3})
	assert.Equal(t, Totals{}, s.Totals)
	assert.Zero(t, s.Streak)
	assert.Nil(t, s.MostActiveDay)
	assert.NotNil(t, s.TopExercises)
	assert.NotNil(t, s.Recent)
	assert.Len(t, s.Achievements, 6)
}
