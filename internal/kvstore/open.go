package kvstore

import (
	"context"
	"fmt"

	"alcyxob/fittrack/internal/config"

	log "github.com/sirupsen/logrus"
)

// Open builds the store selected by cfg.Storage.Driver, wrapped with the
// optional read cache, namespace and metrics. The returned close func
// releases driver connections and is never nil.
func Open(ctx context.Context, cfg config.Config) (Store, func() error, error) {
	noop := func() error { return nil }

	var (
		store   Store
		closeFn = noop
		remote  bool
	)

	switch cfg.Storage.Driver {
	case config.DriverFile:
		fs, err := NewFileStore(cfg.Storage.Dir)
		if err != nil {
			return nil, noop, err
		}
		store = fs
	case config.DriverMemory:
		store = NewMemoryStore()
	case config.DriverRedis:
		client, err := ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, noop, err
		}
		store = NewRedisStore(client)
		closeFn = client.Close
		remote = true
	case config.DriverMongo:
		client, err := ConnectDB(cfg.Database.URI)
		if err != nil {
			return nil, noop, fmt.Errorf("connect mongo: %w", err)
		}
		store = NewMongoStore(client.Database(cfg.Database.Name).Collection(cfg.Database.Collection))
		closeFn = func() error { return DisconnectDB(client) }
		remote = true
	case config.DriverS3:
		s3Store, err := NewS3Store(cfg.S3)
		if err != nil {
			return nil, noop, fmt.Errorf("init s3: %w", err)
		}
		store = s3Store
		remote = true
	default:
		return nil, noop, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	if remote && cfg.Storage.CacheSize > 0 {
		store = NewCachedStore(store, cfg.Storage.CacheSize)
		log.Infof("kv read cache enabled (%d bytes)", cfg.Storage.CacheSize)
	}

	store = Namespaced(store, cfg.Storage.Namespace)
	store = Instrumented(store, cfg.Storage.Driver)

	log.WithField("driver", cfg.Storage.Driver).Info("key-value store ready")
	return store, closeFn, nil
}
