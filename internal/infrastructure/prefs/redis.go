package prefs

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dummyhub/backend/internal/infrastructure/config"
)

// RedisStore persists theme preferences in Redis.
// Suitable for multi-instance deployments where clients can land on any
// instance between requests.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisStore creates a Redis-backed theme store and verifies connectivity
func NewRedisStore(cfg config.RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisStoreWithClient(client, ""), nil
}

// NewRedisStoreWithClient creates a store with an existing Redis client.
// An empty keyPrefix selects the default.
func NewRedisStoreWithClient(client *redis.Client, keyPrefix string) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = "prefs:theme:"
	}
	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Get returns the stored theme for the client, or ThemeLight if none is set
func (s *RedisStore) Get(ctx context.Context, clientID string) (Theme, error) {
	val, err := s.client.Get(ctx, s.keyPrefix+clientID).Result()
	if err == redis.Nil {
		return ThemeLight, nil
	}
	if err != nil {
		return ThemeLight, fmt.Errorf("failed to read theme preference: %w", err)
	}

	theme := Theme(val)
	if !theme.Valid() {
		// A corrupt value falls back to the default rather than erroring.
		return ThemeLight, nil
	}
	return theme, nil
}

// Set stores the theme for the client without expiry
func (s *RedisStore) Set(ctx context.Context, clientID string, theme Theme) error {
	if err := s.client.Set(ctx, s.keyPrefix+clientID, string(theme), 0).Err(); err != nil {
		return fmt.Errorf("failed to store theme preference: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
