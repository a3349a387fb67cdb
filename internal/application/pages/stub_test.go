package pages

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/dummyhub/backend/internal/domain/catalog"
	"github.com/dummyhub/backend/internal/domain/commerce"
	"github.com/dummyhub/backend/internal/domain/content"
	"github.com/dummyhub/backend/internal/domain/identity"
	"github.com/dummyhub/backend/internal/domain/task"
)

var errUpstreamDown = errors.New("upstream down")

// stubSource is a DataSource backed by function fields. Unset fields fail,
// matching an upstream outage for that resource.
type stubSource struct {
	products    func() ([]catalog.Product, error)
	categories  func() ([]string, error)
	users       func() ([]identity.User, error)
	posts       func() ([]content.Post, error)
	todos       func() ([]task.Todo, error)
	quotes      func() ([]content.Quote, error)
	randomQuote func() (content.Quote, error)
	carts       func() ([]commerce.Cart, error)
}

func (s *stubSource) Products(context.Context) ([]catalog.Product, error) {
	if s.products == nil {
		return nil, errUpstreamDown
	}
	return s.products()
}

func (s *stubSource) ProductCategories(context.Context) ([]string, error) {
	if s.categories == nil {
		return nil, errUpstreamDown
	}
	return s.categories()
}

func (s *stubSource) Users(context.Context) ([]identity.User, error) {
	if s.users == nil {
		return nil, errUpstreamDown
	}
	return s.users()
}

func (s *stubSource) Posts(context.Context) ([]content.Post, error) {
	if s.posts == nil {
		return nil, errUpstreamDown
	}
	return s.posts()
}

func (s *stubSource) Todos(context.Context) ([]task.Todo, error) {
	if s.todos == nil {
		return nil, errUpstreamDown
	}
	return s.todos()
}

func (s *stubSource) Quotes(context.Context) ([]content.Quote, error) {
	if s.quotes == nil {
		return nil, errUpstreamDown
	}
	return s.quotes()
}

func (s *stubSource) RandomQuote(context.Context) (content.Quote, error) {
	if s.randomQuote == nil {
		return content.Quote{}, errUpstreamDown
	}
	return s.randomQuote()
}

func (s *stubSource) Carts(context.Context) ([]commerce.Cart, error) {
	if s.carts == nil {
		return nil, errUpstreamDown
	}
	return s.carts()
}

var _ DataSource = (*stubSource)(nil)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
