package prefs

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dummyhub/backend/internal/infrastructure/config"
)

// StoreFactory creates theme stores based on configuration
type StoreFactory struct {
	prefsConfig           config.PrefsConfig
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// StoreFactoryOption is a functional option for configuring the factory
type StoreFactoryOption func(*StoreFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) StoreFactoryOption {
	return func(f *StoreFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to the in-memory store
// when Redis is unavailable. Default is true (allow fallback).
func WithInMemoryFallback(allow bool) StoreFactoryOption {
	return func(f *StoreFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewStoreFactory creates a new factory
func NewStoreFactory(prefsCfg config.PrefsConfig, redisCfg config.RedisConfig, opts ...StoreFactoryOption) *StoreFactory {
	f := &StoreFactory{
		prefsConfig:           prefsCfg,
		redisConfig:           redisCfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateStore creates a theme store for the configured backend.
// When the backend is redis and Redis is unreachable, it falls back to the
// in-memory store if fallback is allowed.
func (f *StoreFactory) CreateStore() (Store, error) {
	switch f.prefsConfig.Backend {
	case "memory":
		f.logger.Info("using in-memory theme store")
		return NewMemoryStore(), nil
	case "redis":
		store, err := NewRedisStore(f.redisConfig)
		if err == nil {
			f.logger.Info("using Redis theme store")
			return store, nil
		}
		if !f.allowInMemoryFallback {
			return nil, fmt.Errorf("Redis required for theme preferences but unavailable: %w", err)
		}
		f.logger.Warn("Redis unavailable, falling back to in-memory theme store. "+
			"Preferences will not survive restarts or be shared across instances.",
			zap.Error(err),
		)
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown prefs backend %q", f.prefsConfig.Backend)
	}
}
