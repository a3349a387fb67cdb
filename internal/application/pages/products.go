package pages

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/dummyhub/backend/internal/domain/catalog"
	"github.com/dummyhub/backend/internal/domain/shared"
)

// ProductsService serves the products page: the catalog with its category
// selector and free-text search.
type ProductsService struct {
	source DataSource
	logger *zap.Logger
}

// NewProductsService creates a new ProductsService
func NewProductsService(source DataSource, logger *zap.Logger) *ProductsService {
	return &ProductsService{source: source, logger: logger}
}

// View fetches products and categories concurrently and builds the filtered
// page view. A failed fetch leaves its collection empty and degrades the page
// state to partial.
func (s *ProductsService) View(ctx context.Context, query, category string) ProductsView {
	var (
		wg         sync.WaitGroup
		products   []catalog.Product
		categories []string
		pState     shared.PageState
		cState     shared.PageState
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		products, pState = fetchSlice(ctx, s.logger, "products", s.source.Products)
	}()
	go func() {
		defer wg.Done()
		categories, cState = fetchSlice(ctx, s.logger, "product_categories", s.source.ProductCategories)
	}()
	wg.Wait()

	if category == "" {
		category = catalog.CategoryAll
	}

	filtered := catalog.Filter(products, query, category)
	cards := make([]ProductCard, 0, len(filtered))
	for _, p := range filtered {
		cards = append(cards, ProductCard{
			ID:                 p.ID,
			Title:              p.Title,
			Description:        p.Description,
			Price:              p.Price,
			OriginalPrice:      p.OriginalPrice(),
			DiscountPercentage: p.DiscountPercentage,
			Rating:             p.Rating,
			Stock:              p.Stock,
			Category:           p.Category,
			Thumbnail:          p.Thumbnail,
		})
	}

	view := ProductsView{
		Products:   cards,
		Categories: categories,
		Query:      query,
		Category:   category,
		Total:      len(products),
		Shown:      len(cards),
		State:      shared.Combine(pState, cState),
	}
	if len(cards) == 0 {
		view.EmptyMessage = "No products match your search."
	}
	return view
}
