// Package pages holds the page controllers: one service per page, each
// fetching its collections from the upstream API, joining and filtering them,
// and returning a render-ready view model.
package pages

import (
	"context"

	"github.com/dummyhub/backend/internal/domain/catalog"
	"github.com/dummyhub/backend/internal/domain/commerce"
	"github.com/dummyhub/backend/internal/domain/content"
	"github.com/dummyhub/backend/internal/domain/identity"
	"github.com/dummyhub/backend/internal/domain/task"
)

// DataSource is the upstream read-only API as the page services see it.
// The production implementation is dummyjson.Client.
type DataSource interface {
	Products(ctx context.Context) ([]catalog.Product, error)
	ProductCategories(ctx context.Context) ([]string, error)
	Users(ctx context.Context) ([]identity.User, error)
	Posts(ctx context.Context) ([]content.Post, error)
	Todos(ctx context.Context) ([]task.Todo, error)
	Quotes(ctx context.Context) ([]content.Quote, error)
	RandomQuote(ctx context.Context) (content.Quote, error)
	Carts(ctx context.Context) ([]commerce.Cart, error)
}
