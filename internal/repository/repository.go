package repository

import (
	"alcyxob/fittrack/internal/domain"
	"context"
)

// Error constants for repository layer
var (
	ErrNotFound    = RepositoryError("not found")
	ErrCorrupt     = RepositoryError("stored data is corrupt")
	ErrUnavailable = RepositoryError("store unavailable")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// AccountRepository reads and writes the whole account directory.
type AccountRepository interface {
	// List returns every registered account, or an empty slice if none were saved yet.
	List(ctx context.Context) ([]domain.Account, error)
	// ReplaceAll overwrites the persisted directory.
	ReplaceAll(ctx context.Context, accounts []domain.Account) error
}

// SessionRepository holds at most one active session.
type SessionRepository interface {
	// Get returns ErrNotFound when no session is stored.
	Get(ctx context.Context) (*domain.Profile, error)
	Put(ctx context.Context, profile domain.Profile) error
	Clear(ctx context.Context) error
}

// WorkoutIndexRepository reads and writes the complete account -> workouts index.
// There is no partial update: callers load, change one thing, and save it all back.
type WorkoutIndexRepository interface {
	// Load returns an empty index if nothing was saved yet.
	Load(ctx context.Context) (domain.WorkoutIndex, error)
	Save(ctx context.Context, index domain.WorkoutIndex) error
}
