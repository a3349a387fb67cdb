package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dummyhub/backend/internal/application/pages"
)

// QuotesHandler serves the quote actions: the random-slot refresh and the
// per-session favorite toggle.
type QuotesHandler struct {
	BaseHandler
	quotes *pages.QuotesService
}

// NewQuotesHandler creates a new QuotesHandler
func NewQuotesHandler(quotes *pages.QuotesService) *QuotesHandler {
	return &QuotesHandler{quotes: quotes}
}

// RefreshRandom serves POST /quotes/random/refresh. It re-fetches only the
// random quote slot; the rest of the page is untouched.
func (h *QuotesHandler) RefreshRandom(c *gin.Context) {
	card, err := h.quotes.RefreshRandom(c.Request.Context(), getClientID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, card)
}

// toggleFavoriteResponse reports the post-toggle state of one quote
type toggleFavoriteResponse struct {
	ID       int  `json:"id"`
	Favorite bool `json:"favorite"`
}

// ToggleFavorite serves POST /quotes/favorites/:id
func (h *QuotesHandler) ToggleFavorite(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		h.BadRequest(c, "quote id must be a positive integer")
		return
	}

	favorite := h.quotes.ToggleFavorite(getClientID(c), id)
	h.Success(c, toggleFavoriteResponse{ID: id, Favorite: favorite})
}

// RegisterRoutes registers all quote action routes
func (h *QuotesHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/quotes")
	{
		group.POST("/random/refresh", h.RefreshRandom)
		group.POST("/favorites/:id", h.ToggleFavorite)
	}
}
