package service

import (
	"errors"
	"fmt"
)

// --- Error Definitions ---
var (
	ErrDuplicateEmail         = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrInvalidWorkoutInput    = errors.New("invalid workout input")
	ErrInvalidAccountInput    = errors.New("invalid account input")
	ErrPersistenceUnavailable = errors.New("persistence unavailable")
)

// InvalidWorkoutInputError names the draft field that failed validation.
// It matches ErrInvalidWorkoutInput with errors.Is.
type InvalidWorkoutInputError struct {
	Field  string
	Reason string
}

func (e *InvalidWorkoutInputError) Error() string {
	return fmt.Sprintf("invalid workout input: %s %s", e.Field, e.Reason)
}

func (e *InvalidWorkoutInputError) Is(target error) bool {
	return target == ErrInvalidWorkoutInput
}

// InvalidAccountInputError names the sign-up field that failed validation.
type InvalidAccountInputError struct {
	Field  string
	Reason string
}

func (e *InvalidAccountInputError) Error() string {
	return fmt.Sprintf("invalid account input: %s %s", e.Field, e.Reason)
}

func (e *InvalidAccountInputError) Is(target error) bool {
	return target == ErrInvalidAccountInput
}

// unavailable marks err as a failed persistence call.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrPersistenceUnavailable, err)
}
