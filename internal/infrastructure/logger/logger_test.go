package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"INFO", zapcore.InfoLevel},
		{"garbage", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseLevel(tt.input), "level %q", tt.input)
	}
}

func TestNew(t *testing.T) {
	logger, err := New(DefaultConfig())
	assert.NoError(t, err)
	assert.NotNil(t, logger)

	logger, err = New(ProductionConfig())
	assert.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewForEnvironment(t *testing.T) {
	for _, env := range []string{"development", "production", ""} {
		logger, err := NewForEnvironment(env)
		assert.NoError(t, err)
		assert.NotNil(t, logger)
	}
}

func TestContextRoundTrip(t *testing.T) {
	logger := zap.NewNop()
	ctx := WithContext(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))
}

func TestFromContextMissing(t *testing.T) {
	// Must never return nil, callers log unconditionally.
	assert.NotNil(t, FromContext(context.Background()))
}

func TestWithRequestID(t *testing.T) {
	ctx, enriched := WithRequestID(context.Background(), zap.NewNop(), "req-123")
	assert.NotNil(t, enriched)
	assert.Equal(t, "req-123", GetRequestID(ctx))
}

func TestGetRequestIDMissing(t *testing.T) {
	assert.Equal(t, "", GetRequestID(context.Background()))
}

func TestGinMiddlewareLogsClientID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		c.Set("request_id", "req-1")
		c.Set("client_id", "client-1")
	})
	engine.Use(GinMiddleware(logger))
	engine.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest("GET", "/ok", nil)
	engine.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "client-1", fields["client_id"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
}
