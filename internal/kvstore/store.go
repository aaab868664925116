package kvstore

import (
	"context"
)

// Error constants for the key-value layer
var (
	ErrNotFound = StoreError("key not found")
)

// StoreError helps distinguish key-value store errors
type StoreError string

func (e StoreError) Error() string {
	return string(e)
}

// Store is the string-keyed persistence primitive the repositories sit on.
// Implementations may block on I/O and must honour ctx for that I/O.
type Store interface {
	// Get returns the stored value, or ErrNotFound when the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// Namespaced prefixes every key with ns before handing it to next.
func Namespaced(next Store, ns string) Store {
	if ns == "" {
		return next
	}
	return &namespacedStore{next: next, prefix: ns + ":"}
}

type namespacedStore struct {
	next   Store
	prefix string
}

func (s *namespacedStore) Get(ctx context.Context, key string) (string, error) {
	return s.next.Get(ctx, s.prefix+key)
}

func (s *namespacedStore) Set(ctx context.Context, key, value string) error {
	return s.next.Set(ctx, s.prefix+key, value)
}

func (s *namespacedStore) Remove(ctx context.Context, key string) error {
	return s.next.Remove(ctx, s.prefix+key)
}
