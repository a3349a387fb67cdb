// Package content holds the post and quote entities and their derived views.
package content

import "strings"

// Post is a read-only snapshot of an upstream blog entry. UserID references an
// identity.User but carries no referential guarantee.
type Post struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Tags      []string  `json:"tags"`
	Reactions Reactions `json:"reactions"`
	Views     int       `json:"views"`
	UserID    int       `json:"userId"`
}

// Reactions holds the reaction counters attached to a post.
type Reactions struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}

// FilterPosts returns the subsequence of posts whose title, body, or any tag
// contains the query, case-insensitively. An empty query matches all. Source
// order is preserved.
func FilterPosts(posts []Post, query string) []Post {
	q := strings.ToLower(query)

	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if q != "" && !postMatches(p, q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func postMatches(p Post, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Body), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
