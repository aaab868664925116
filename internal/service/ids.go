package service

import (
	"github.com/google/uuid"
)

// newTimeOrderedID returns a UUIDv7. Within one process the generator is
// monotonic, so ids minted in the same millisecond still differ and sort by
// creation.
func newTimeOrderedID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
