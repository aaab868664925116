// Package analytics derives stats from a list of workout records.
// Every function is pure: no persistence, no clock reads, inputs untouched.
package analytics

import (
	"math"
	"slices"

	"alcyxob/fittrack/internal/domain"
)

// Totals are the headline counters shown on the home and progress views.
type Totals struct {
	Count  int   `json:"count"`
	Sets   int   `json:"sets"`
	Reps   int   `json:"reps"`
	Volume int64 `json:"volume"` // Σ sets·reps·max(weight,1), rounded
}

func CalculateTotals(records []domain.WorkoutRecord) Totals {
	var (
		t      Totals
		volume float64
	)
	for _, r := range records {
		t.Sets += r.Sets
		t.Reps += r.Reps
		volume += r.Volume()
	}
	t.Count = len(records)
	t.Volume = int64(math.Round(volume))
	return t
}

// UniqueExercises counts distinct exercise names.
func UniqueExercises(records []domain.WorkoutRecord) int {
	seen := make(map[string]struct{})
	for _, r := range records {
		seen[r.Exercise] = struct{}{}
	}
	return len(seen)
}

type ExerciseCount struct {
	Exercise string `json:"exercise"`
	Count    int    `json:"count"`
}

// TopExercises ranks exercises by how often they were logged. Equal counts
// keep the order in which the exercises first appear in records.
func TopExercises(records []domain.WorkoutRecord, n int) []ExerciseCount {
	if n <= 0 {
		return []ExerciseCount{}
	}

	pos := make(map[string]int)
	ranking := make([]ExerciseCount, 0)
	for _, r := range records {
		i, ok := pos[r.Exercise]
		if !ok {
			i = len(ranking)
			pos[r.Exercise] = i
			ranking = append(ranking, ExerciseCount{Exercise: r.Exercise})
		}
		ranking[i].Count++
	}

	slices.SortStableFunc(ranking, func(a, b ExerciseCount) int {
		return b.Count - a.Count
	})

	if len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking
}

// AverageSets is the mean sets per record, rounded to one decimal.
func AverageSets(records []domain.WorkoutRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var sets int
	for _, r := range records {
		sets += r.Sets
	}
	return math.Round(float64(sets)/float64(len(records))*10) / 10
}

// AverageWorkoutsPerWeek assumes the log spans about four weeks.
func AverageWorkoutsPerWeek(records []domain.WorkoutRecord) int {
	return int(math.Round(float64(len(records)) / 4))
}
