package pages

import (
	"context"

	"github.com/dummyhub/backend/internal/domain/shared"
)

// HomeService serves the landing page. Its content is data-driven but static:
// the feature grid and headline stats are defined here, not fetched.
type HomeService struct{}

// NewHomeService creates a new HomeService
func NewHomeService() *HomeService {
	return &HomeService{}
}

// View builds the landing page view model
func (s *HomeService) View(_ context.Context) HomeView {
	return HomeView{
		Headline: "Explore the DummyHub catalog",
		Tagline:  "Products, people and posts from a live demo API, in one dashboard.",
		Features: []Feature{
			{Icon: "box", Title: "Products", Description: "Browse the catalog with search and category filters.", Href: "/products"},
			{Icon: "users", Title: "Users", Description: "Look up people, their companies and contact details.", Href: "/users"},
			{Icon: "file-text", Title: "Posts", Description: "Read posts with reactions, joined to their authors.", Href: "/posts"},
			{Icon: "check-square", Title: "Todos", Description: "Track tasks with completion stats at a glance.", Href: "/todos"},
			{Icon: "quote", Title: "Quotes", Description: "Collect favorites and discover a random quote.", Href: "/quotes"},
			{Icon: "shopping-cart", Title: "Carts", Description: "Inspect carts with revenue and savings breakdowns.", Href: "/carts"},
		},
		Stats: []StatCard{
			{Label: "Products", Value: "100+"},
			{Label: "Users", Value: "100+"},
			{Label: "Posts", Value: "250+"},
			{Label: "Quotes", Value: "1400+"},
		},
		State: shared.StateReady,
	}
}
