package service

import (
	"context"
	"math"
	"strings"
	"time"

	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/observability"
	"alcyxob/fittrack/internal/repository"

	log "github.com/sirupsen/logrus"
)

// WorkoutStore owns every account's workout records.
//
// Add and Delete do a full read-modify-write of the persisted index. That is
// only safe with a single writer: callers must not start a mutation while
// another one is still in flight.
type WorkoutStore interface {
	// LoadFor returns the account's records in creation order. A missing
	// account, or an unreadable index, yields an empty slice.
	LoadFor(ctx context.Context, accountID string) []domain.WorkoutRecord
	Add(ctx context.Context, accountID string, draft domain.WorkoutDraft) (*domain.WorkoutRecord, error)
	// Delete is idempotent: an unknown id is not an error.
	Delete(ctx context.Context, accountID, workoutID string) error
}

type workoutStore struct {
	repo     repository.WorkoutIndexRepository
	accounts repository.AccountRepository
	location *time.Location
	clock    func() time.Time
	newID    func() string
}

// NewWorkoutStore creates a store that renders display dates in loc. New
// records are only accepted for accounts present in accounts.
func NewWorkoutStore(repo repository.WorkoutIndexRepository, accounts repository.AccountRepository, loc *time.Location) WorkoutStore {
	if loc == nil {
		loc = time.Local
	}
	return &workoutStore{
		repo:     repo,
		accounts: accounts,
		location: loc,
		clock:    time.Now,
		newID:    newTimeOrderedID,
	}
}

func (s *workoutStore) LoadFor(ctx context.Context, accountID string) []domain.WorkoutRecord {
	index, err := s.repo.Load(ctx)
	if err != nil {
		log.WithField("account_id", accountID).Warnf("load workouts, showing none: %s", err)
		return []domain.WorkoutRecord{}
	}
	return index.For(accountID)
}

func (s *workoutStore) Add(ctx context.Context, accountID string, draft domain.WorkoutDraft) (*domain.WorkoutRecord, error) {
	if err := ValidateDraft(accountID, draft); err != nil {
		return nil, err
	}
	if err := s.requireAccount(ctx, accountID); err != nil {
		return nil, err
	}

	index, err := s.repo.Load(ctx)
	if err != nil {
		return nil, unavailable("load workouts", err)
	}

	now := s.clock()
	record := domain.WorkoutRecord{
		ID:          s.uniqueID(index, accountID),
		AccountID:   accountID,
		Exercise:    strings.TrimSpace(draft.Exercise),
		Sets:        draft.Sets,
		Reps:        draft.Reps,
		Weight:      copyWeight(draft.Weight),
		Timestamp:   now.UnixMilli(),
		DisplayDate: now.In(s.location).Format(domain.DisplayDateLayout),
	}
	index.Append(record)

	// The write is not abandoned with the caller; a half-finished cycle would
	// poison the next read-modify-write.
	if err := s.repo.Save(context.WithoutCancel(ctx), index); err != nil {
		return nil, unavailable("save workouts", err)
	}

	observability.RecordWorkoutMutation("add")
	log.WithFields(log.Fields{
		"account_id": accountID,
		"workout_id": record.ID,
	}).Debug("workout added")

	return &record, nil
}

func (s *workoutStore) Delete(ctx context.Context, accountID, workoutID string) error {
	index, err := s.repo.Load(ctx)
	if err != nil {
		return unavailable("load workouts", err)
	}

	removed := index.Remove(accountID, workoutID)

	if err := s.repo.Save(context.WithoutCancel(ctx), index); err != nil {
		return unavailable("save workouts", err)
	}

	if removed {
		observability.RecordWorkoutMutation("delete")
	}
	log.WithFields(log.Fields{
		"account_id": accountID,
		"workout_id": workoutID,
		"removed":    removed,
	}).Debug("workout delete")

	return nil
}

// requireAccount rejects ids that are not in the account directory, so a
// record can never be orphaned.
func (s *workoutStore) requireAccount(ctx context.Context, accountID string) error {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return unavailable("load accounts", err)
	}
	for _, a := range accounts {
		if a.ID == accountID {
			return nil
		}
	}
	return &InvalidWorkoutInputError{Field: "accountId", Reason: "does not match a registered account"}
}

func (s *workoutStore) uniqueID(index domain.WorkoutIndex, accountID string) string {
	for {
		id := s.newID()
		if !index.Has(accountID, id) {
			return id
		}
	}
}

// ValidateDraft checks a draft before anything is persisted.
func ValidateDraft(accountID string, draft domain.WorkoutDraft) error {
	if accountID == "" {
		return &InvalidWorkoutInputError{Field: "accountId", Reason: "is required"}
	}
	if strings.TrimSpace(draft.Exercise) == "" {
		return &InvalidWorkoutInputError{Field: "exercise", Reason: "is required"}
	}
	if draft.Sets <= 0 {
		return &InvalidWorkoutInputError{Field: "sets", Reason: "must be a positive integer"}
	}
	if draft.Reps <= 0 {
		return &InvalidWorkoutInputError{Field: "reps", Reason: "must be a positive integer"}
	}
	if w := draft.Weight; w != nil && (*w < 0 || math.IsNaN(*w) || math.IsInf(*w, 0)) {
		return &InvalidWorkoutInputError{Field: "weight", Reason: "must be a non-negative number"}
	}
	return nil
}

func copyWeight(w *float64) *float64 {
	if w == nil {
		return nil
	}
	v := *w
	return &v
}
