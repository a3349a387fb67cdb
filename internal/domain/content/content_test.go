package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func samplePosts() []Post {
	return []Post{
		{ID: 1, Title: "His mother had always taught him", Body: "not to ever think of himself", Tags: []string{"history", "american"}, UserID: 121},
		{ID: 2, Title: "He was an expert", Body: "but not in a discipline", Tags: []string{"french", "fiction"}, UserID: 36},
		{ID: 3, Title: "Dave watched", Body: "the fire raged on", Tags: []string{"magical", "history"}, UserID: 17},
	}
}

func TestFilterPosts(t *testing.T) {
	posts := samplePosts()

	t.Run("empty query matches everything", func(t *testing.T) {
		assert.Equal(t, posts, FilterPosts(posts, ""))
	})

	t.Run("matches title", func(t *testing.T) {
		got := FilterPosts(posts, "MOTHER")
		assert.Len(t, got, 1)
		assert.Equal(t, 1, got[0].ID)
	})

	t.Run("matches body", func(t *testing.T) {
		got := FilterPosts(posts, "discipline")
		assert.Len(t, got, 1)
		assert.Equal(t, 2, got[0].ID)
	})

	t.Run("matches any tag preserving order", func(t *testing.T) {
		got := FilterPosts(posts, "history")
		assert.Len(t, got, 2)
		assert.Equal(t, 1, got[0].ID)
		assert.Equal(t, 3, got[1].ID)
	})
}

func TestFilterQuotes(t *testing.T) {
	quotes := []Quote{
		{ID: 1, Quote: "Life isn't about getting and having", Author: "Kevin Kruse"},
		{ID: 2, Quote: "Getting over a painful experience", Author: "C.S. Lewis"},
		{ID: 3, Quote: "We must balance conspicuous consumption", Author: "Kevin Kruse"},
	}

	t.Run("matches quote text", func(t *testing.T) {
		got := FilterQuotes(quotes, "painful")
		assert.Len(t, got, 1)
		assert.Equal(t, 2, got[0].ID)
	})

	t.Run("matches author", func(t *testing.T) {
		got := FilterQuotes(quotes, "kruse")
		assert.Len(t, got, 2)
	})

	t.Run("empty query is identity", func(t *testing.T) {
		assert.Equal(t, quotes, FilterQuotes(quotes, ""))
	})
}

func TestGroupByAuthor(t *testing.T) {
	quotes := []Quote{
		{ID: 1, Author: "Kevin Kruse", Quote: "a"},
		{ID: 2, Author: "C.S. Lewis", Quote: "b"},
		{ID: 3, Author: "Kevin Kruse", Quote: "c"},
		{ID: 4, Author: "Mae West", Quote: "d"},
	}

	groups := GroupByAuthor(quotes)

	assert.Len(t, groups, 3)
	// Groups follow first-appearance order.
	assert.Equal(t, "Kevin Kruse", groups[0].Author)
	assert.Equal(t, "C.S. Lewis", groups[1].Author)
	assert.Equal(t, "Mae West", groups[2].Author)
	// Quotes keep relative order within a group.
	assert.Equal(t, []int{1, 3}, []int{groups[0].Quotes[0].ID, groups[0].Quotes[1].ID})
}

func TestFavoriteSetToggle(t *testing.T) {
	s := NewFavoriteSet()

	assert.True(t, s.Toggle(5))
	assert.True(t, s.Contains(5))

	// Toggling twice returns to the original set.
	assert.False(t, s.Toggle(5))
	assert.False(t, s.Contains(5))
	assert.Zero(t, s.Len())

	s.Toggle(3)
	s.Toggle(1)
	s.Toggle(2)
	assert.Equal(t, []int{1, 2, 3}, s.IDs())
}

func TestFavoriteSetNilReadsAsEmpty(t *testing.T) {
	var s *FavoriteSet

	assert.False(t, s.Contains(1))
	assert.Equal(t, []int{}, s.IDs())
	assert.Zero(t, s.Len())
}
