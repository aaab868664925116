// Package kv implements the repositories on top of a kvstore.Store,
// one JSON document per logical record.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"alcyxob/fittrack/internal/kvstore"
	"alcyxob/fittrack/internal/repository"
)

// Keys of the three logical records in the backing store.
const (
	AccountsKey = "accounts"
	SessionKey  = "session"
	WorkoutsKey = "workoutsByAccount"
)

// load decodes key into dst. It reports found=false for an absent key.
func load(ctx context.Context, store kvstore.Store, key string, dst any) (found bool, err error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get %s: %w: %w", key, repository.ErrUnavailable, err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("decode %s: %w: %w", key, repository.ErrCorrupt, err)
	}
	return true, nil
}

func save(ctx context.Context, store kvstore.Store, key string, src any) error {
	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("set %s: %w: %w", key, repository.ErrUnavailable, err)
	}
	return nil
}
