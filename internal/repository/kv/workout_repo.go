package kv

import (
	"context"

	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/kvstore"
	"alcyxob/fittrack/internal/repository"
)

type workoutIndexRepository struct {
	store kvstore.Store
}

func NewWorkoutIndexRepository(store kvstore.Store) repository.WorkoutIndexRepository {
	return &workoutIndexRepository{store: store}
}

func (r *workoutIndexRepository) Load(ctx context.Context) (domain.WorkoutIndex, error) {
	var index domain.WorkoutIndex
	if _, err := load(ctx, r.store, WorkoutsKey, &index); err != nil {
		return nil, err
	}
	if index == nil {
		index = domain.WorkoutIndex{}
	}
	return index, nil
}

func (r *workoutIndexRepository) Save(ctx context.Context, index domain.WorkoutIndex) error {
	if index == nil {
		index = domain.WorkoutIndex{}
	}
	return save(ctx, r.store, WorkoutsKey, index)
}
