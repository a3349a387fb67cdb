package pages

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/dummyhub/backend/internal/domain/content"
	"github.com/dummyhub/backend/internal/domain/shared"
)

// QuotesService serves the quotes page: a random quote slot, quotes grouped
// by author, and per-session favorite markers. Favorites are transient view
// state held in process memory and reset on restart.
type QuotesService struct {
	source DataSource
	logger *zap.Logger

	mu        sync.Mutex
	favorites map[string]*content.FavoriteSet
}

// NewQuotesService creates a new QuotesService
func NewQuotesService(source DataSource, logger *zap.Logger) *QuotesService {
	return &QuotesService{
		source:    source,
		logger:    logger,
		favorites: make(map[string]*content.FavoriteSet),
	}
}

// favoritesFor returns the favorite set for a session, creating it on first use.
// Only the toggle path may call this; read paths must use lookupFavorites so
// that anonymous page views do not grow the session map.
func (s *QuotesService) favoritesFor(sessionID string) *content.FavoriteSet {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.favorites[sessionID]
	if !ok {
		set = content.NewFavoriteSet()
		s.favorites[sessionID] = set
	}
	return set
}

// lookupFavorites returns the session's favorite set, or nil when the session
// has never toggled a favorite. A nil set renders as no markers.
func (s *QuotesService) lookupFavorites(sessionID string) *content.FavoriteSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites[sessionID]
}

// View fetches the quote list and the random slot concurrently and builds
// the filtered, author-grouped page view with favorite markers.
func (s *QuotesService) View(ctx context.Context, query, sessionID string) QuotesView {
	var (
		wg     sync.WaitGroup
		quotes []content.Quote
		random content.Quote
		qState shared.PageState
		rState shared.PageState
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		quotes, qState = fetchSlice(ctx, s.logger, "quotes", s.source.Quotes)
	}()
	go func() {
		defer wg.Done()
		random, rState = fetchOne(ctx, s.logger, "random_quote", s.source.RandomQuote)
	}()
	wg.Wait()

	favs := s.lookupFavorites(sessionID)

	filtered := content.FilterQuotes(quotes, query)
	groups := make([]AuthorGroupView, 0)
	shown := 0
	for _, g := range content.GroupByAuthor(filtered) {
		cards := make([]QuoteCard, 0, len(g.Quotes))
		for _, q := range g.Quotes {
			cards = append(cards, QuoteCard{
				ID:       q.ID,
				Quote:    q.Quote,
				Author:   q.Author,
				Favorite: favs.Contains(q.ID),
			})
		}
		shown += len(cards)
		groups = append(groups, AuthorGroupView{Author: g.Author, Quotes: cards})
	}

	view := QuotesView{
		Groups:    groups,
		Favorites: favs.IDs(),
		Query:     query,
		Total:     len(quotes),
		Shown:     shown,
		State:     shared.Combine(qState, rState),
	}
	if rState == shared.StateReady && random.ID != 0 {
		view.Random = &QuoteCard{
			ID:       random.ID,
			Quote:    random.Quote,
			Author:   random.Author,
			Favorite: favs.Contains(random.ID),
		}
	}
	if shown == 0 {
		view.EmptyMessage = "No quotes match your search."
	}
	return view
}

// RefreshRandom re-fetches only the random quote slot. Unlike page fetches
// this is a direct action, so the upstream error propagates to the caller.
func (s *QuotesService) RefreshRandom(ctx context.Context, sessionID string) (QuoteCard, error) {
	quote, err := s.source.RandomQuote(ctx)
	if err != nil {
		return QuoteCard{}, err
	}

	favs := s.lookupFavorites(sessionID)
	return QuoteCard{
		ID:       quote.ID,
		Quote:    quote.Quote,
		Author:   quote.Author,
		Favorite: favs.Contains(quote.ID),
	}, nil
}

// ToggleFavorite flips a quote in the session's favorite set and returns the
// resulting state. Toggling twice restores the original state.
func (s *QuotesService) ToggleFavorite(sessionID string, quoteID int) bool {
	return s.favoritesFor(sessionID).Toggle(quoteID)
}
