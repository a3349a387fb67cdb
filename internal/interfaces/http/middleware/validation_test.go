package middleware

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type themeQuery struct {
	Theme string `form:"theme" binding:"required,oneof=light dark"`
}

func TestHandleValidationError(t *testing.T) {
	SetupValidator()

	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		var q themeQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	t.Run("valid request passes", func(t *testing.T) {
		w := performRequest(r, "GET", "/?theme=dark", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid enum rejected with details", func(t *testing.T) {
		w := performRequest(r, "GET", "/?theme=sepia", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_VALIDATION")
		assert.Contains(t, w.Body.String(), "theme")
		assert.Contains(t, w.Body.String(), "Must be one of")
	})

	t.Run("missing required field", func(t *testing.T) {
		w := performRequest(r, "GET", "/", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "required")
	})
}

func TestFormatValidationErrorsNonValidatorError(t *testing.T) {
	resp := FormatValidationErrors(http.ErrBodyNotAllowed, "req-1")
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Empty(t, resp.Error.Details)
	assert.Equal(t, "req-1", resp.Error.RequestID)
}
