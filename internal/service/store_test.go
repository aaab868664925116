package service

import (
	"context"
	"errors"
	"sync"

	"alcyxob/fittrack/internal/kvstore"
)

var errStoreDown = errors.New("store down")

// flakyStore wraps a MemoryStore and fails reads or writes on demand.
type flakyStore struct {
	*kvstore.MemoryStore

	mu       sync.Mutex
	failGet  bool
	failSet  bool
	setCalls int
}

func newFlakyStore() *flakyStore {
	return &flakyStore{MemoryStore: kvstore.NewMemoryStore()}
}

func (s *flakyStore) breakReads(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failGet = v
}

func (s *flakyStore) breakWrites(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failSet = v
}

func (s *flakyStore) writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setCalls
}

func (s *flakyStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	fail := s.failGet
	s.mu.Unlock()
	if fail {
		return "", errStoreDown
	}
	return s.MemoryStore.Get(ctx, key)
}

func (s *flakyStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	s.setCalls++
	fail := s.failSet
	s.mu.Unlock()
	if fail {
		return errStoreDown
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func (s *flakyStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	fail := s.failSet
	s.mu.Unlock()
	if fail {
		return errStoreDown
	}
	return s.MemoryStore.Remove(ctx, key)
}

// failingGetStore fails every read but passes writes through.
type failingGetStore struct {
	*flakyStore
}

func (failingGetStore) Get(context.Context, string) (string, error) {
	return "", errStoreDown
}
