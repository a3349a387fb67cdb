package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "dummyhub-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "https://dummyjson.com", cfg.Upstream.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 100, cfg.Upstream.ListLimit)
	assert.Equal(t, 20, cfg.Upstream.CartLimit)
	assert.Equal(t, "memory", cfg.Prefs.Backend)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.HTTP.CORSAllowOrigins, "CORS origins must not default to a wildcard")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		return cfg
	}

	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, valid().validate())
	})

	t.Run("relative upstream URL rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Upstream.BaseURL = "dummyjson.com"
		assert.Error(t, cfg.validate())
	})

	t.Run("unknown prefs backend rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Prefs.Backend = "postgres"
		assert.Error(t, cfg.validate())
	})

	t.Run("wildcard CORS rejected in production", func(t *testing.T) {
		cfg := valid()
		cfg.App.Env = "production"
		cfg.HTTP.CORSAllowOrigins = []string{"*"}
		assert.Error(t, cfg.validate())
	})

	t.Run("sampling ratio bounds", func(t *testing.T) {
		cfg := valid()
		cfg.Telemetry.SamplingRatio = 1.5
		assert.Error(t, cfg.validate())
	})
}

func TestLoadUsesDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://dummyjson.com", cfg.Upstream.BaseURL)
}

func TestRedisAddr(t *testing.T) {
	r := RedisConfig{Host: "cache.internal", Port: 6380}
	assert.Equal(t, "cache.internal:6380", r.Addr())
}
