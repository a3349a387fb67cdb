package pages

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/dummyhub/backend/internal/domain/content"
	"github.com/dummyhub/backend/internal/domain/identity"
	"github.com/dummyhub/backend/internal/domain/shared"
)

// PostsService serves the posts page: posts joined to their authors, with
// free-text search over title, body and tags.
type PostsService struct {
	source DataSource
	logger *zap.Logger
}

// NewPostsService creates a new PostsService
func NewPostsService(source DataSource, logger *zap.Logger) *PostsService {
	return &PostsService{source: source, logger: logger}
}

// View fetches posts and users concurrently and builds the filtered page
// view. Every post renders even when the user fetch failed; unresolved
// authors fall back to a placeholder name.
func (s *PostsService) View(ctx context.Context, query string) PostsView {
	var (
		wg     sync.WaitGroup
		posts  []content.Post
		users  []identity.User
		pState shared.PageState
		uState shared.PageState
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		posts, pState = fetchSlice(ctx, s.logger, "posts", s.source.Posts)
	}()
	go func() {
		defer wg.Done()
		users, uState = fetchSlice(ctx, s.logger, "users", s.source.Users)
	}()
	wg.Wait()

	directory := identity.NewDirectory(users)

	filtered := content.FilterPosts(posts, query)
	cards := make([]PostCard, 0, len(filtered))
	for _, p := range filtered {
		author := directory.Lookup(p.UserID)
		cards = append(cards, PostCard{
			ID:       p.ID,
			Title:    p.Title,
			Body:     p.Body,
			Tags:     p.Tags,
			Likes:    p.Reactions.Likes,
			Dislikes: p.Reactions.Dislikes,
			Views:    p.Views,
			Author: AuthorRef{
				ID:       p.UserID,
				Name:     author.DisplayName(),
				Initials: author.Initials(),
				Image:    author.Image(),
			},
		})
	}

	view := PostsView{
		Posts: cards,
		Query: query,
		Total: len(posts),
		Shown: len(cards),
		State: shared.Combine(pState, uState),
	}
	if len(cards) == 0 {
		view.EmptyMessage = "No posts match your search."
	}
	return view
}
