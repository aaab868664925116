package kvstore

import (
	"context"
	"errors"
	"time"

	"alcyxob/fittrack/internal/observability"
)

// Instrumented reports every call on next to the kv metrics, labelled with driver.
func Instrumented(next Store, driver string) Store {
	return &instrumentedStore{next: next, driver: driver}
}

type instrumentedStore struct {
	next   Store
	driver string
}

func (s *instrumentedStore) Get(ctx context.Context, key string) (string, error) {
	start := time.Now()
	val, err := s.next.Get(ctx, key)
	observability.ObserveKVOperation(s.driver, "get", result(err), time.Since(start))
	return val, err
}

func (s *instrumentedStore) Set(ctx context.Context, key, value string) error {
	start := time.Now()
	err := s.next.Set(ctx, key, value)
	observability.ObserveKVOperation(s.driver, "set", result(err), time.Since(start))
	return err
}

func (s *instrumentedStore) Remove(ctx context.Context, key string) error {
	start := time.Now()
	err := s.next.Remove(ctx, key)
	observability.ObserveKVOperation(s.driver, "remove", result(err), time.Since(start))
	return err
}

func result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "miss"
	default:
		return "error"
	}
}
