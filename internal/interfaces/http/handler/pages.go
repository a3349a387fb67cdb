package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dummyhub/backend/internal/application/pages"
	"github.com/dummyhub/backend/internal/domain/task"
	"github.com/dummyhub/backend/internal/interfaces/http/middleware"
)

// PagesHandler serves the read-only page endpoints
type PagesHandler struct {
	BaseHandler
	home     *pages.HomeService
	about    *pages.AboutService
	products *pages.ProductsService
	users    *pages.UsersService
	posts    *pages.PostsService
	todos    *pages.TodosService
	quotes   *pages.QuotesService
	carts    *pages.CartsService
}

// NewPagesHandler creates a new PagesHandler
func NewPagesHandler(
	home *pages.HomeService,
	about *pages.AboutService,
	products *pages.ProductsService,
	users *pages.UsersService,
	posts *pages.PostsService,
	todos *pages.TodosService,
	quotes *pages.QuotesService,
	carts *pages.CartsService,
) *PagesHandler {
	return &PagesHandler{
		home:     home,
		about:    about,
		products: products,
		users:    users,
		posts:    posts,
		todos:    todos,
		quotes:   quotes,
		carts:    carts,
	}
}

// searchQuery is the free-text search parameter shared by the list pages
type searchQuery struct {
	Q string `form:"q" binding:"omitempty,max=200"`
}

// productsQuery is the products page query
type productsQuery struct {
	Q        string `form:"q" binding:"omitempty,max=200"`
	Category string `form:"category" binding:"omitempty,max=100"`
}

// todosQuery is the todos page query
type todosQuery struct {
	Q      string `form:"q" binding:"omitempty,max=200"`
	Status string `form:"status" binding:"omitempty,oneof=all completed pending"`
}

// GetHome serves GET /pages/home
func (h *PagesHandler) GetHome(c *gin.Context) {
	h.Success(c, h.home.View(c.Request.Context()))
}

// GetAbout serves GET /pages/about
func (h *PagesHandler) GetAbout(c *gin.Context) {
	h.Success(c, h.about.View(c.Request.Context()))
}

// GetProducts serves GET /pages/products?q=&category=
func (h *PagesHandler) GetProducts(c *gin.Context) {
	var q productsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	view := h.products.View(c.Request.Context(), q.Q, q.Category)
	h.SuccessWithMeta(c, view, view.Total, view.Shown)
}

// GetUsers serves GET /pages/users?q=
func (h *PagesHandler) GetUsers(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	view := h.users.View(c.Request.Context(), q.Q)
	h.SuccessWithMeta(c, view, view.Total, view.Shown)
}

// GetPosts serves GET /pages/posts?q=
func (h *PagesHandler) GetPosts(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	view := h.posts.View(c.Request.Context(), q.Q)
	h.SuccessWithMeta(c, view, view.Total, view.Shown)
}

// GetTodos serves GET /pages/todos?q=&status=
func (h *PagesHandler) GetTodos(c *gin.Context) {
	var q todosQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	h.Success(c, h.todos.View(c.Request.Context(), q.Q, task.StatusFilter(q.Status)))
}

// GetQuotes serves GET /pages/quotes?q=
func (h *PagesHandler) GetQuotes(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	view := h.quotes.View(c.Request.Context(), q.Q, getClientID(c))
	h.SuccessWithMeta(c, view, view.Total, view.Shown)
}

// GetCarts serves GET /pages/carts
func (h *PagesHandler) GetCarts(c *gin.Context) {
	h.Success(c, h.carts.View(c.Request.Context()))
}

// RegisterRoutes registers all page routes
func (h *PagesHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/pages")
	{
		group.GET("/home", h.GetHome)
		group.GET("/about", h.GetAbout)
		group.GET("/products", h.GetProducts)
		group.GET("/users", h.GetUsers)
		group.GET("/posts", h.GetPosts)
		group.GET("/todos", h.GetTodos)
		group.GET("/quotes", h.GetQuotes)
		group.GET("/carts", h.GetCarts)
	}
}
