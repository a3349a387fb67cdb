// Package task holds the todo entity and the status views the todos page
// renders.
package task

import "strings"

// Todo is a read-only snapshot of an upstream task. UserID references an
// identity.User with no referential guarantee.
type Todo struct {
	ID        int    `json:"id"`
	Todo      string `json:"todo"`
	Completed bool   `json:"completed"`
	UserID    int    `json:"userId"`
}

// StatusFilter selects todos by completion state.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusCompleted StatusFilter = "completed"
	StatusPending   StatusFilter = "pending"
)

// Valid reports whether the filter is one of the known selector values.
func (f StatusFilter) Valid() bool {
	switch f {
	case StatusAll, StatusCompleted, StatusPending:
		return true
	}
	return false
}

// Filter returns the subsequence of todos matching the free-text query
// (case-insensitive substring on the task text) and the status selector.
// An empty query matches all; an empty selector behaves like StatusAll.
// Source order is preserved.
func Filter(todos []Todo, query string, status StatusFilter) []Todo {
	q := strings.ToLower(query)

	out := make([]Todo, 0, len(todos))
	for _, td := range todos {
		switch status {
		case StatusCompleted:
			if !td.Completed {
				continue
			}
		case StatusPending:
			if td.Completed {
				continue
			}
		}
		if q != "" && !strings.Contains(strings.ToLower(td.Todo), q) {
			continue
		}
		out = append(out, td)
	}
	return out
}

// Counts are the summary statistics shown above the todo list. They are always
// computed over the full loaded collection, not the filtered view.
type Counts struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

// CountByStatus reduces the collection to completed/pending tallies.
func CountByStatus(todos []Todo) Counts {
	c := Counts{Total: len(todos)}
	for _, td := range todos {
		if td.Completed {
			c.Completed++
		}
	}
	c.Pending = c.Total - c.Completed
	return c
}
