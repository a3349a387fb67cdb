package prefs

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dummyhub/backend/internal/infrastructure/config"
)

func TestThemeValid(t *testing.T) {
	assert.True(t, ThemeLight.Valid())
	assert.True(t, ThemeDark.Valid())
	assert.False(t, Theme("sepia").Valid())
	assert.False(t, Theme("").Valid())
}

func TestMemoryStoreDefaultsToLight(t *testing.T) {
	store := NewMemoryStore()

	theme, err := store.Get(context.Background(), "client-1")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)
}

func TestMemoryStoreSetGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "client-1", ThemeDark))

	theme, err := store.Get(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)

	// Other clients are unaffected.
	theme, err = store.Get(ctx, "client-2")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			clientID := fmt.Sprintf("client-%d", n%5)
			_ = store.Set(ctx, clientID, ThemeDark)
			_, _ = store.Get(ctx, clientID)
		}(i)
	}
	wg.Wait()
}

func TestRedisStoreDefaultKeyPrefix(t *testing.T) {
	store := NewRedisStoreWithClient(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), "")
	defer store.Close()
	assert.Equal(t, "prefs:theme:", store.keyPrefix)

	custom := NewRedisStoreWithClient(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), "other:")
	defer custom.Close()
	assert.Equal(t, "other:", custom.keyPrefix)
}

func TestFactoryMemoryBackend(t *testing.T) {
	factory := NewStoreFactory(
		config.PrefsConfig{Backend: "memory"},
		config.RedisConfig{},
	)

	store, err := factory.CreateStore()
	require.NoError(t, err)
	_, ok := store.(*MemoryStore)
	assert.True(t, ok)
}

func TestFactoryRedisBackendFallsBack(t *testing.T) {
	// Nothing listens on port 1, so the Redis dial fails and the factory
	// falls back to memory.
	factory := NewStoreFactory(
		config.PrefsConfig{Backend: "redis"},
		config.RedisConfig{Host: "127.0.0.1", Port: 1},
	)

	store, err := factory.CreateStore()
	require.NoError(t, err)
	_, ok := store.(*MemoryStore)
	assert.True(t, ok)
}

func TestFactoryRedisBackendNoFallback(t *testing.T) {
	factory := NewStoreFactory(
		config.PrefsConfig{Backend: "redis"},
		config.RedisConfig{Host: "127.0.0.1", Port: 1},
		WithInMemoryFallback(false),
	)

	_, err := factory.CreateStore()
	assert.Error(t, err)
}

func TestFactoryUnknownBackend(t *testing.T) {
	factory := NewStoreFactory(
		config.PrefsConfig{Backend: "postgres"},
		config.RedisConfig{},
	)

	_, err := factory.CreateStore()
	assert.Error(t, err)
}
