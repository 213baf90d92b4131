// Package store provides the capacity bounded key/value store backing every persisted record.
package store

//go:generate mockgen -source=store.go -destination=storemock/store_mock.go -package=storemock

import (
	"context"
	"fmt"
	"sync"

	"github.com/dassigner/studio/src/dassigner/internal/errors"
	"github.com/dassigner/studio/src/dassigner/internal/fs"
	"github.com/dgraph-io/badger/v4"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _configKey = "store"

var _valueBuckets = tally.MustMakeExponentialValueBuckets(256, 4, 8)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Store is a synchronous string keyed store.
type Store interface {
	// Get returns the value for key, or a KeyNotFoundError.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set writes the value, failing with QuotaExceededError when the total stored size would pass capacity.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Config is the store block of the service configuration.
type Config struct {
	Path          string `yaml:"path"`
	InMemory      bool   `yaml:"inMemory"`
	CapacityBytes int64  `yaml:"capacityBytes"`
}

// Params are inbound parameters to initialize the store.
type Params struct {
	fx.In

	Config    config.Provider
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
	FS        fs.FS
}

type badgerStore struct {
	mu       sync.Mutex
	db       *badger.DB
	capacity int64
	logger   *zap.SugaredLogger
	stats    tally.Scope
}

// New opens the store described by the store config block and closes it on stop.
func New(p Params) (Store, error) {
	var cfg Config
	if err := p.Config.Get(_configKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting store config: %w", err)
	}

	s, err := open(cfg, p.FS, p.Logger, p.Stats)
	if err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.StopHook(s.close))
	return s, nil
}

func open(cfg Config, fileSystem fs.FS, logger *zap.SugaredLogger, stats tally.Scope) (*badgerStore, error) {
	opts := badger.DefaultOptions(cfg.Path).
		WithLoggingLevel(badger.ERROR).
		WithLogger(&badgerLogger{logger: logger.Named("badger")})
	if cfg.InMemory {
		opts = opts.WithInMemory(true).WithDir("").WithValueDir("")
	} else {
		if cfg.Path == "" {
			return nil, fmt.Errorf("store path is required unless inMemory is set")
		}
		if err := fileSystem.MkdirAll(cfg.Path); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	logger.Infow("store opened", "path", cfg.Path, "inMemory", cfg.InMemory, "capacityBytes", cfg.CapacityBytes)
	return &badgerStore{
		db:       db,
		capacity: cfg.CapacityBytes,
		logger:   logger,
		stats:    stats.SubScope("store"),
	}, nil
}

// Get returns the value stored under key.
func (s *badgerStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, &errors.KeyNotFoundError{Key: key}
	}
	if err != nil {
		s.stats.Counter("get_errors").Inc(1)
		return nil, &errors.StorageError{Key: key, Err: err}
	}
	return value, nil
}

// Set stores value under key.
func (s *badgerStore) Set(ctx context.Context, key string, value []byte) error {
	// Size check and write must not interleave with another writer.
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.Update(func(txn *badger.Txn) error {
		if s.capacity > 0 {
			used := usedBytes(txn, key)
			size := entrySize(key, int64(len(value)))
			if used+size > s.capacity {
				return &errors.QuotaExceededError{Key: key, Size: size, Capacity: s.capacity}
			}
		}
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		var quota *errors.QuotaExceededError
		if errors.As(err, &quota) {
			s.stats.Counter("quota_exceeded").Inc(1)
			return quota
		}
		s.stats.Counter("set_errors").Inc(1)
		return &errors.StorageError{Key: key, Err: err}
	}
	s.stats.Counter("writes").Inc(1)
	s.stats.Histogram("value_bytes", _valueBuckets).RecordValue(float64(len(value)))
	return nil
}

// Delete removes key.
func (s *badgerStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	}); err != nil {
		s.stats.Counter("delete_errors").Inc(1)
		return &errors.StorageError{Key: key, Err: err}
	}
	s.stats.Counter("deletes").Inc(1)
	return nil
}

func (s *badgerStore) close() error {
	err := s.db.Close()
	if err != nil {
		s.logger.Errorw("closing store", zap.Error(err))
	}
	return err
}

// usedBytes sums the stored size of every key except the one about to be replaced.
func usedBytes(txn *badger.Txn, except string) int64 {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	it := txn.NewIterator(opts)
	defer it.Close()

	var used int64
	for it.Rewind(); it.Valid(); it.Next() {
		item := it.Item()
		k := string(item.Key())
		if k == except {
			continue
		}
		used += entrySize(k, item.ValueSize())
	}
	return used
}

func entrySize(key string, valueSize int64) int64 {
	return int64(len(key)) + valueSize
}
