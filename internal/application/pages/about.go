package pages

import (
	"context"

	"github.com/dummyhub/backend/internal/domain/shared"
)

// AboutService serves the static about page.
type AboutService struct{}

// NewAboutService creates a new AboutService
func NewAboutService() *AboutService {
	return &AboutService{}
}

// View builds the about page view model
func (s *AboutService) View(_ context.Context) AboutView {
	return AboutView{
		Title: "About DummyHub",
		Paragraphs: []string{
			"DummyHub is a catalog dashboard built on top of a public demo API. " +
				"It brings products, users, posts, todos, quotes and shopping carts " +
				"together in a single browsable interface.",
			"All data is read-only and fetched live. Nothing you see here is " +
				"stored on our side except your display preferences.",
		},
		Services: []Feature{
			{Icon: "search", Title: "Unified search", Description: "Case-insensitive search across every collection."},
			{Icon: "link", Title: "Cross-references", Description: "Posts, todos and carts are joined to their owners."},
			{Icon: "bar-chart", Title: "Live aggregates", Description: "Completion stats, revenue and savings computed on the fly."},
			{Icon: "moon", Title: "Themes", Description: "A light or dark theme that follows you across sessions."},
		},
		State: shared.StateReady,
	}
}
