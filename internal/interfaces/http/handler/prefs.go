package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dummyhub/backend/internal/infrastructure/prefs"
	"github.com/dummyhub/backend/internal/interfaces/http/middleware"
)

// PrefsHandler serves the theme preference endpoints, keyed by the client ID
// the ClientID middleware resolves.
type PrefsHandler struct {
	BaseHandler
	store prefs.Store
}

// NewPrefsHandler creates a new PrefsHandler
func NewPrefsHandler(store prefs.Store) *PrefsHandler {
	return &PrefsHandler{store: store}
}

// themeResponse is the theme preference payload
type themeResponse struct {
	Theme string `json:"theme"`
}

// themeRequest is the theme update payload
type themeRequest struct {
	Theme string `json:"theme" binding:"required,oneof=light dark"`
}

// GetTheme serves GET /preferences/theme. Clients with no stored preference
// get the light default.
func (h *PrefsHandler) GetTheme(c *gin.Context) {
	theme, err := h.store.Get(c.Request.Context(), getClientID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, themeResponse{Theme: string(theme)})
}

// PutTheme serves PUT /preferences/theme
func (h *PrefsHandler) PutTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	if err := h.store.Set(c.Request.Context(), getClientID(c), prefs.Theme(req.Theme)); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, themeResponse{Theme: req.Theme})
}

// RegisterRoutes registers all preference routes
func (h *PrefsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/preferences")
	{
		group.GET("/theme", h.GetTheme)
		group.PUT("/theme", h.PutTheme)
	}
}
