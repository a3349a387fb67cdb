package content

import "strings"

// Quote is a read-only snapshot of an upstream aphorism. Author is a display
// string, not a foreign key.
type Quote struct {
	ID     int    `json:"id"`
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

// FilterQuotes returns the subsequence of quotes whose text or author contains
// the query, case-insensitively. An empty query matches all. Source order is
// preserved.
func FilterQuotes(quotes []Quote, query string) []Quote {
	q := strings.ToLower(query)

	out := make([]Quote, 0, len(quotes))
	for _, qt := range quotes {
		if q != "" &&
			!strings.Contains(strings.ToLower(qt.Quote), q) &&
			!strings.Contains(strings.ToLower(qt.Author), q) {
			continue
		}
		out = append(out, qt)
	}
	return out
}

// AuthorGroup is one author's quotes in their original relative order.
type AuthorGroup struct {
	Author string  `json:"author"`
	Quotes []Quote `json:"quotes"`
}

// GroupByAuthor partitions quotes by author. Groups are ordered by the first
// appearance of each author and quotes keep their relative order within a
// group.
func GroupByAuthor(quotes []Quote) []AuthorGroup {
	index := make(map[string]int, len(quotes))
	groups := make([]AuthorGroup, 0)

	for _, q := range quotes {
		i, ok := index[q.Author]
		if !ok {
			i = len(groups)
			index[q.Author] = i
			groups = append(groups, AuthorGroup{Author: q.Author})
		}
		groups[i].Quotes = append(groups[i].Quotes, q)
	}
	return groups
}
