package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"alcyxob/fittrack/internal/domain"
	kvrepo "alcyxob/fittrack/internal/repository/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testAccountIDs are registered in every store built by newTestWorkoutStore.
var testAccountIDs = []string{"acc-1", "A", "B"}

func newTestWorkoutStore(t *testing.T) (*workoutStore, *flakyStore) {
	t.Helper()
	store := newFlakyStore()

	accountRepo := kvrepo.NewAccountRepository(store)
	accounts := make([]domain.Account, 0, len(testAccountIDs))
	for _, id := range testAccountIDs {
		accounts = append(accounts, domain.Account{ID: id, Name: id, Email: id + "@example.com", Credential: "secret1"})
	}
	require.NoError(t, accountRepo.ReplaceAll(context.Background(), accounts))

	ws := NewWorkoutStore(kvrepo.NewWorkoutIndexRepository(store), accountRepo, time.UTC).(*workoutStore)
	ws.clock = func() time.Time {
		return time.Date(2024, time.January, 5, 18, 30, 0, 0, time.UTC)
	}
	return ws, store
}

func kg(v float64) *float64 {
	return &v
}

func TestWorkoutStore_AddThenLoad(t *testing.T) {
	ws, _ := newTestWorkoutStore(t)
	ctx := context.Background()

	assert.Empty(t, ws.LoadFor(ctx, "acc-1"))

	added, err := ws.Add(ctx, "acc-1", domain.WorkoutDraft{Exercise: "  Squat ", Sets: 3, Reps: 10, Weight: kg(20)})
	require.NoError(t, err)
	require.NotNil(t, added)

	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "acc-1", added.AccountID)
	assert.Equal(t, "Squat", added.Exercise)
	assert.Equal(t, 3, added.Sets)
	assert.Equal(t, 10, added.Reps)
	require.NotNil(t, added.Weight)
	assert.Equal(t, 20.0, *added.Weight)
	assert.Equal(t, time.Date(2024, time.January, 5, 18, 30, 0, 0, time.UTC).UnixMilli(), added.Timestamp)
	assert.Equal(t, "Fri, Jan 5", added.DisplayDate)

	loaded := ws.LoadFor(ctx, "acc-1")
	require.Len(t, loaded, 1)
	assert.Equal(t, *added, loaded[0])

	second, err := ws.Add(ctx, "acc-1", domain.WorkoutDraft{Exercise: "Push-up", Sets: 4, Reps: 8})
	require.NoError(t, err)
	assert.Nil(t, second.Weight)

	loaded = ws.LoadFor(ctx, "acc-1")
	require.Len(t, loaded, 2)
	assert.Equal(t, added.ID, loaded[0].ID)
	assert.Equal(t, second.ID, loaded[1].ID)
}

func TestWorkoutStore_DraftWeightIsCopied(t *testing.T) {
	ws, _ := newTestWorkoutStore(t)
	ctx := context.Background()

	w := 50.0
	added, err := ws.Add(ctx, "acc-1", domain.WorkoutDraft{Exercise: "Row", Sets: 3, Reps: 8, Weight: &w})
	require.NoError(t, err)
	w = 999

	assert.Equal(t, 50.0, *added.Weight)
	assert.Equal(t, 50.0, *ws.LoadFor(ctx, "acc-1")[0].Weight)
}

func TestWorkoutStore_RapidAddsGetDistinctIDs(t *testing.T) {
	ws, _ := newTestWorkoutStore(t)
	ctx := context.Background()

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		r, err := ws.Add(ctx, "acc-1", domain.WorkoutDraft{Exercise: "Curl", Sets: 1, Reps: 1})
		require.NoError(t, err)
		_, dup := seen[r.ID]
		require.False(t, dup, "duplicate id %s", r.ID)
		seen[r.ID] = struct{}{}
	}
	assert.Len(t, ws.LoadFor(ctx, "acc-1"), 50)
}

func TestWorkoutStore_RegeneratesCollidingIDs(t *testing.T) {
	ws, _ := newTestWorkoutStore(t)
	ctx := context.Background()

	ids := []string{"fixed", "fixed", "fixed", "other"}
	ws.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	first, err := ws.Add(ctx, "acc-1", domain.WorkoutDraft{Exercise: "Curl", Sets: 1, Reps: 1})
	require.NoError(t, err)
	second, err := ws.Add(ctx, "acc-1", domain.WorkoutDraft{Exercise: "Curl", Sets: 1, Reps: 1})
	require.NoError(t, err)

	assert.Equal(t, "fixed", first.ID)
	assert.Equal(t, "other", second.ID)
}

func TestWorkoutStore_DeleteIsIdempotent(t *testing.T) {
	ws, _ := newTestWorkoutStore(t)
	ctx := context.Background()

	a, err := ws.Add(ctx, "acc-1", domain.WorkoutDraft{Exercise: "Squat", Sets: 3, Reps: 5})
	require.NoError(t, err)
	b, err := ws.Add(ctx, "acc-1", domain.WorkoutDraft{Exercise: "Bench", Sets: 3, Reps: 5})
	require.NoError(t, err)

	require.NoError(t, ws.Delete(ctx, "acc-1", a.ID))
	once := ws.LoadFor(ctx, "acc-1")
	require.NoError(t, ws.Delete(ctx, "acc-1", a.ID))
	twice := ws.LoadFor(ctx, "acc-1")

	assert.Equal(t, once, twice)
	require.Len(t, twice, 1)
	assert.Equal(t, b.ID, twice[0].ID)

	require.NoError(t, ws.Delete(ctx, "nobody", "missing"))
}

func TestWorkoutStore_AccountsAreIsolated(t *testing.T) {
	ws, _ := newTestWorkoutStore(t)
	ctx := context.Background()

	ids := []string{"shared", "shared", "a2", "b2"}
	ws.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	a1, err := ws.Add(ctx, "A", domain.WorkoutDraft{Exercise: "Squat", Sets: 3, Reps: 5})
	require.NoError(t, err)
	b1, err := ws.Add(ctx, "B", domain.WorkoutDraft{Exercise: "Bench", Sets: 3, Reps: 5})
	require.NoError(t, err)
	require.Equal(t, a1.ID, b1.ID)

	_, err = ws.Add(ctx, "A", domain.WorkoutDraft{Exercise: "Row", Sets: 3, Reps: 5})
	require.NoError(t, err)
	_, err = ws.Add(ctx, "B", domain.WorkoutDraft{Exercise: "Dip", Sets: 3, Reps: 5})
	require.NoError(t, err)

	// Deleting A's record must leave B's record with the same id alone.
	require.NoError(t, ws.Delete(ctx, "A", "shared"))

	for _, r := range ws.LoadFor(ctx, "A") {
		assert.Equal(t, "A", r.AccountID)
		assert.NotEqual(t, "shared", r.ID)
	}
	bRecords := ws.LoadFor(ctx, "B")
	require.Len(t, bRecords, 2)
	for _, r := range bRecords {
		assert.Equal(t, "B", r.AccountID)
	}
	assert.Equal(t, "shared", bRecords[0].ID)
	assert.Empty(t, ws.LoadFor(ctx, "C"))
}

func TestWorkoutStore_LoadForReturnsCopy(t *testing.T) {
	ws, _ := newTestWorkoutStore(t)
	ctx := context.Background()

	_, err := ws.Add(ctx, "acc-1", domain.WorkoutDraft{Exercise: "Squat", Sets: 3, Reps: 5})
	require.NoError(t, err)

	loaded := ws.LoadFor(ctx, "acc-1")
	loaded[0].Exercise = "changed"

	assert.Equal(t, "Squat", ws.LoadFor(ctx, "acc-1")[0].Exercise)
}

func TestWorkoutStore_InvalidDraft(t *testing.T) {
	testCases := []struct {
		name      string
		accountID string
		draft     domain.WorkoutDraft
		field     string
	}{
		{"MissingAccount", "", domain.WorkoutDraft{Exercise: "Squat", Sets: 1, Reps: 1}, "accountId"},
		{"EmptyExercise", "acc-1", domain.WorkoutDraft{Exercise: "", Sets: 1, Reps: 1}, "exercise"},
		{"BlankExercise", "acc-1", domain.WorkoutDraft{Exercise: "   ", Sets: 1, Reps: 1}, "exercise"},
		{"ZeroSets", "acc-1", domain.WorkoutDraft{Exercise: "Squat", Sets: 0, Reps: 1}, "sets"},
		{"NegativeReps", "acc-1", domain.WorkoutDraft{Exercise: "Squat", Sets: 1, Reps: -2}, "reps"},
		{"NegativeWeight", "acc-1", domain.WorkoutDraft{Exercise: "Squat", Sets: 1, Reps: 1, Weight: kg(-1)}, "weight"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ws, store := newTestWorkoutStore(t)
			ctx := context.Background()
			writes := store.writes()

			_, err := ws.Add(ctx, tc.accountID, tc.draft)
			require.ErrorIs(t, err, ErrInvalidWorkoutInput)

			var fieldErr *InvalidWorkoutInputError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, tc.field, fieldErr.Field)

			assert.Equal(t, writes, store.writes())
			assert.Empty(t, ws.LoadFor(ctx, "acc-1"))
		})
	}
}

func TestWorkoutStore_UnknownAccountIsRejected(t *testing.T) {
	ws, store := newTestWorkoutStore(t)
	ctx := context.Background()
	writes := store.writes()

	r, err := ws.Add(ctx, "ghost-account", domain.WorkoutDraft{Exercise: "Squat", Sets: 3, Reps: 5})
	assert.Nil(t, r)
	require.ErrorIs(t, err, ErrInvalidWorkoutInput)

	var fieldErr *InvalidWorkoutInputError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "accountId", fieldErr.Field)

	assert.Equal(t, writes, store.writes())
	assert.Empty(t, ws.LoadFor(ctx, "ghost-account"))
}

func TestWorkoutStore_UnreadableDirectoryBlocksAdd(t *testing.T) {
	ws, store := newTestWorkoutStore(t)
	ctx := context.Background()

	// The index itself is readable; only the account directory fails.
	ws.accounts = kvrepo.NewAccountRepository(failingGetStore{store})

	_, err := ws.Add(ctx, "acc-1", domain.WorkoutDraft{Exercise: "Squat", Sets: 3, Reps: 5})
	assert.ErrorIs(t, err, ErrPersistenceUnavailable)
	assert.Empty(t, ws.LoadFor(ctx, "acc-1"))
}

func TestWorkoutStore_TrimsExerciseName(t *testing.T) {
	ws, _ := newTestWorkoutStore(t)
	ctx := context.Background()

	added, err := ws.Add(ctx, "acc-1", domain.WorkoutDraft{Exercise: "\t Squat  \n", Sets: 3, Reps: 5})
	require.NoError(t, err)
	assert.Equal(t, "Squat", added.Exercise)
	assert.Equal(t, "Squat", ws.LoadFor(ctx, "acc-1")[0].Exercise)
}

func TestWorkoutStore_ZeroWeightIsValid(t *testing.T) {
	ws, _ := newTestWorkoutStore(t)
	r, err := ws.Add(context.Background(), "acc-1", domain.WorkoutDraft{Exercise: "Plank", Sets: 1, Reps: 1, Weight: kg(0)})
	require.NoError(t, err)
	assert.Equal(t, 0.0, *r.Weight)
}

func TestWorkoutStore_PersistenceFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("ReadFailureShowsNothing", func(t *testing.T) {
		ws, store := newTestWorkoutStore(t)
		_, err := ws.Add(ctx, "acc-1", domain.WorkoutDraft{Exercise: "Squat", Sets: 3, Reps: 5})
		require.NoError(t, err)

		store.breakReads(true)
		assert.Empty(t, ws.LoadFor(ctx, "acc-1"))
	})

	t.Run("ReadFailureDoesNotOverwrite", func(t *testing.T) {
		ws, store := newTestWorkoutStore(t)
		_, err := ws.Add(ctx, "acc-1", domain.WorkoutDraft{Exercise: "Squat", Sets: 3, Reps: 5})
		require.NoError(t, err)
		writes := store.writes()

		store.breakReads(true)
		_, err = ws.Add(ctx, "acc-1", domain.WorkoutDraft{Exercise: "Bench", Sets: 3, Reps: 5})
		assert.ErrorIs(t, err, ErrPersistenceUnavailable)
		assert.ErrorIs(t, ws.Delete(ctx, "acc-1", "x"), ErrPersistenceUnavailable)
		assert.Equal(t, writes, store.writes())

		store.breakReads(false)
		assert.Len(t, ws.LoadFor(ctx, "acc-1"), 1)
	})

	t.Run("WriteFailureIsNotCommitted", func(t *testing.T) {
		ws, store := newTestWorkoutStore(t)
		store.breakWrites(true)

		r, err := ws.Add(ctx, "acc-1", domain.WorkoutDraft{Exercise: "Squat", Sets: 3, Reps: 5})
		assert.Nil(t, r)
		assert.ErrorIs(t, err, ErrPersistenceUnavailable)
		assert.ErrorIs(t, err, errStoreDown)

		store.breakWrites(false)
		assert.Empty(t, ws.LoadFor(ctx, "acc-1"))
	})
}

func TestWorkoutStore_CancelledCallerStillCommits(t *testing.T) {
	ws, _ := newTestWorkoutStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	// The memory store ignores ctx on reads; only the write path matters here.
	cancel()

	_, err := ws.Add(ctx, "acc-1", domain.WorkoutDraft{Exercise: "Squat", Sets: 3, Reps: 5})
	require.NoError(t, err)
	assert.Len(t, ws.LoadFor(context.Background(), "acc-1"), 1)
}

func TestValidateDraft(t *testing.T) {
	assert.NoError(t, ValidateDraft("acc-1", domain.WorkoutDraft{Exercise: "Squat", Sets: 1, Reps: 1}))

	err := ValidateDraft("acc-1", domain.WorkoutDraft{Exercise: "Squat", Sets: 1, Reps: 0})
	assert.EqualError(t, err, fmt.Sprintf("invalid workout input: %s %s", "reps", "must be a positive integer"))
}
