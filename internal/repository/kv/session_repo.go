package kv

import (
	"context"
	"fmt"

	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/kvstore"
	"alcyxob/fittrack/internal/repository"
)

type sessionRepository struct {
	store kvstore.Store
}

func NewSessionRepository(store kvstore.Store) repository.SessionRepository {
	return &sessionRepository{store: store}
}

func (r *sessionRepository) Get(ctx context.Context) (*domain.Profile, error) {
	var profile domain.Profile
	found, err := load(ctx, r.store, SessionKey, &profile)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, repository.ErrNotFound
	}
	// "null" or a document without an id is not a usable session.
	if profile.ID == "" {
		return nil, fmt.Errorf("session without account id: %w", repository.ErrCorrupt)
	}
	return &profile, nil
}

func (r *sessionRepository) Put(ctx context.Context, profile domain.Profile) error {
	return save(ctx, r.store, SessionKey, profile)
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	if err := r.store.Remove(ctx, SessionKey); err != nil {
		return fmt.Errorf("remove %s: %w: %w", SessionKey, repository.ErrUnavailable, err)
	}
	return nil
}
