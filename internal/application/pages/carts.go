package pages

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/dummyhub/backend/internal/domain/commerce"
	"github.com/dummyhub/backend/internal/domain/identity"
	"github.com/dummyhub/backend/internal/domain/shared"
)

// CartsService serves the carts page: carts joined to their owners, with the
// stats-card row and per-cart savings badges.
type CartsService struct {
	source DataSource
	logger *zap.Logger
}

// NewCartsService creates a new CartsService
func NewCartsService(source DataSource, logger *zap.Logger) *CartsService {
	return &CartsService{source: source, logger: logger}
}

// View fetches carts and users concurrently and builds the page view. The
// summary covers the full loaded set.
func (s *CartsService) View(ctx context.Context) CartsView {
	var (
		wg     sync.WaitGroup
		carts  []commerce.Cart
		users  []identity.User
		cState shared.PageState
		uState shared.PageState
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		carts, cState = fetchSlice(ctx, s.logger, "carts", s.source.Carts)
	}()
	go func() {
		defer wg.Done()
		users, uState = fetchSlice(ctx, s.logger, "users", s.source.Users)
	}()
	wg.Wait()

	directory := identity.NewDirectory(users)

	cards := make([]CartCard, 0, len(carts))
	for _, c := range carts {
		owner := directory.Lookup(c.UserID)

		items := make([]CartItem, 0, len(c.Products))
		for _, p := range c.Products {
			items = append(items, CartItem{
				ID:       p.ID,
				Title:    p.Title,
				Price:    p.Price,
				Quantity: p.Quantity,
				Total:    p.Total,
			})
		}

		cards = append(cards, CartCard{
			ID:              c.ID,
			Owner:           owner.DisplayName(),
			OwnerInitials:   owner.Initials(),
			Items:           items,
			TotalQuantity:   c.TotalQuantity,
			Total:           c.Total,
			DiscountedTotal: c.DiscountedTotal,
			Savings:         c.Savings(),
			SavingsPercent:  c.SavingsPercent(),
		})
	}

	summary := commerce.Summarize(carts)

	view := CartsView{
		Carts: cards,
		Summary: CartSummaryView{
			TotalCarts:   summary.TotalCarts,
			TotalRevenue: summary.TotalRevenue,
			TotalItems:   summary.TotalItems,
			UniqueUsers:  summary.UniqueUsers,
		},
		State: shared.Combine(cState, uState),
	}
	if len(cards) == 0 {
		view.EmptyMessage = "No carts to show."
	}
	return view
}
