package content

import (
	"sort"
	"sync"
)

// FavoriteSet is the client-only favorite-quote marker set. It lives purely in
// memory for the lifetime of a session and is never persisted; repeated
// toggles of the same id cancel out. A nil *FavoriteSet reads as empty.
type FavoriteSet struct {
	mu  sync.Mutex
	ids map[int]struct{}
}

// NewFavoriteSet returns an empty set.
func NewFavoriteSet() *FavoriteSet {
	return &FavoriteSet{ids: make(map[int]struct{})}
}

// Toggle adds the id if absent and removes it if present. It reports whether
// the id is a favorite after the call.
func (s *FavoriteSet) Toggle(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// Contains reports whether the id is currently marked.
func (s *FavoriteSet) Contains(id int) bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}

// IDs returns the marked ids in ascending order.
func (s *FavoriteSet) IDs() []int {
	if s == nil {
		return []int{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]int, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// Len returns the number of marked ids.
func (s *FavoriteSet) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}
