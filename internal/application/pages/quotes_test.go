package pages

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dummyhub/backend/internal/domain/content"
	"github.com/dummyhub/backend/internal/domain/shared"
)

func stubQuotes() []content.Quote {
	return []content.Quote{
		{ID: 1, Quote: "Stay hungry.", Author: "Steve Jobs"},
		{ID: 2, Quote: "Time is money.", Author: "Benjamin Franklin"},
		{ID: 3, Quote: "Stay foolish.", Author: "Steve Jobs"},
	}
}

func TestQuotesViewGroupsByAuthor(t *testing.T) {
	source := &stubSource{
		quotes:      func() ([]content.Quote, error) { return stubQuotes(), nil },
		randomQuote: func() (content.Quote, error) { return content.Quote{ID: 9, Quote: "Less is more.", Author: "Mies"}, nil },
	}
	svc := NewQuotesService(source, zap.NewNop())

	view := svc.View(context.Background(), "", "session-1")

	require.Len(t, view.Groups, 2)
	assert.Equal(t, "Steve Jobs", view.Groups[0].Author)
	assert.Len(t, view.Groups[0].Quotes, 2)
	assert.Equal(t, "Benjamin Franklin", view.Groups[1].Author)
	require.NotNil(t, view.Random)
	assert.Equal(t, 9, view.Random.ID)
	assert.Equal(t, shared.StateReady, view.State)
	assert.Equal(t, 3, view.Total)
	assert.Equal(t, 3, view.Shown)
}

func TestQuotesViewPartialWhenRandomFails(t *testing.T) {
	source := &stubSource{
		quotes: func() ([]content.Quote, error) { return stubQuotes(), nil },
		// randomQuote unset: that fetch fails
	}
	svc := NewQuotesService(source, zap.NewNop())

	view := svc.View(context.Background(), "", "session-1")

	assert.Equal(t, shared.StatePartial, view.State)
	assert.Nil(t, view.Random)
	assert.Len(t, view.Groups, 2, "the grouped list still renders")
}

func TestQuotesViewFavoriteMarkers(t *testing.T) {
	source := &stubSource{
		quotes:      func() ([]content.Quote, error) { return stubQuotes(), nil },
		randomQuote: func() (content.Quote, error) { return content.Quote{ID: 1, Quote: "Stay hungry.", Author: "Steve Jobs"}, nil },
	}
	svc := NewQuotesService(source, zap.NewNop())

	assert.True(t, svc.ToggleFavorite("session-1", 1))

	view := svc.View(context.Background(), "", "session-1")
	assert.True(t, view.Groups[0].Quotes[0].Favorite)
	assert.False(t, view.Groups[0].Quotes[1].Favorite)
	require.NotNil(t, view.Random)
	assert.True(t, view.Random.Favorite, "the random slot carries the marker too")
	assert.Equal(t, []int{1}, view.Favorites)

	// Sessions do not share favorites.
	other := svc.View(context.Background(), "", "session-2")
	assert.False(t, other.Groups[0].Quotes[0].Favorite)
	assert.Empty(t, other.Favorites)
}

func TestToggleFavoriteTwiceRestores(t *testing.T) {
	svc := NewQuotesService(&stubSource{}, zap.NewNop())

	assert.True(t, svc.ToggleFavorite("s", 42))
	assert.False(t, svc.ToggleFavorite("s", 42))

	view := svc.View(context.Background(), "", "s")
	assert.Empty(t, view.Favorites)
}

func TestQuotesViewDoesNotRetainSessions(t *testing.T) {
	source := &stubSource{
		quotes:      func() ([]content.Quote, error) { return stubQuotes(), nil },
		randomQuote: func() (content.Quote, error) { return content.Quote{ID: 9, Quote: "Q", Author: "A"}, nil },
	}
	svc := NewQuotesService(source, zap.NewNop())

	// Anonymous traffic gets a fresh session id per request; page views must
	// not grow the session map.
	for i := 0; i < 1000; i++ {
		svc.View(context.Background(), "", fmt.Sprintf("anon-%d", i))
	}
	svc.mu.Lock()
	retained := len(svc.favorites)
	svc.mu.Unlock()
	assert.Zero(t, retained)

	// Only a toggle creates a session entry.
	svc.ToggleFavorite("sticky", 1)
	svc.mu.Lock()
	retained = len(svc.favorites)
	svc.mu.Unlock()
	assert.Equal(t, 1, retained)
}

func TestRefreshRandom(t *testing.T) {
	source := &stubSource{
		randomQuote: func() (content.Quote, error) { return content.Quote{ID: 5, Quote: "Q", Author: "A"}, nil },
	}
	svc := NewQuotesService(source, zap.NewNop())
	svc.ToggleFavorite("s", 5)

	card, err := svc.RefreshRandom(context.Background(), "s")
	require.NoError(t, err)
	assert.Equal(t, 5, card.ID)
	assert.True(t, card.Favorite)
}

func TestRefreshRandomPropagatesError(t *testing.T) {
	svc := NewQuotesService(&stubSource{}, zap.NewNop())

	_, err := svc.RefreshRandom(context.Background(), "s")
	assert.Error(t, err)
}

func TestQuotesViewSearch(t *testing.T) {
	source := &stubSource{
		quotes:      func() ([]content.Quote, error) { return stubQuotes(), nil },
		randomQuote: func() (content.Quote, error) { return content.Quote{}, nil },
	}
	svc := NewQuotesService(source, zap.NewNop())

	view := svc.View(context.Background(), "franklin", "s")

	require.Len(t, view.Groups, 1)
	assert.Equal(t, "Benjamin Franklin", view.Groups[0].Author)
	assert.Equal(t, 1, view.Shown)
}
