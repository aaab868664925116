package kvstore

import (
	"context"
	"errors"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

// CachedStore puts an in-process read cache in front of a slower store.
// Writes go to the backing store first; the cache is only updated once the
// backing write succeeded, so a failed write never becomes visible.
type CachedStore struct {
	next  Store
	cache *freecache.Cache
}

// NewCachedStore wraps next with a freecache of sizeBytes (freecache enforces
// a 512KB minimum).
func NewCachedStore(next Store, sizeBytes int) *CachedStore {
	return &CachedStore{
		next:  next,
		cache: freecache.NewCache(sizeBytes),
	}
}

func (s *CachedStore) Get(ctx context.Context, key string) (string, error) {
	if v, err := s.cache.Get([]byte(key)); err == nil {
		return string(v), nil
	}

	val, err := s.next.Get(ctx, key)
	if err != nil {
		return "", err
	}
	s.remember(key, val)
	return val, nil
}

func (s *CachedStore) Set(ctx context.Context, key, value string) error {
	if err := s.next.Set(ctx, key, value); err != nil {
		s.cache.Del([]byte(key))
		return err
	}
	s.remember(key, value)
	return nil
}

func (s *CachedStore) Remove(ctx context.Context, key string) error {
	s.cache.Del([]byte(key))
	return s.next.Remove(ctx, key)
}

func (s *CachedStore) remember(key, value string) {
	err := s.cache.Set([]byte(key), []byte(value), 0)
	if err == nil {
		return
	}
	// Too large for the cache: make sure no stale copy lingers.
	s.cache.Del([]byte(key))
	if errors.Is(err, freecache.ErrLargeEntry) {
		log.WithField("key", key).Debug("kv cache: value too large, not cached")
		return
	}
	log.WithField("key", key).Warnf("kv cache set: %s", err)
}
