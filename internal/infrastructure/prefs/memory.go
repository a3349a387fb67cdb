package prefs

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory theme store.
// Suitable for single-instance deployments and testing; state does not
// survive a restart or get shared across instances.
type MemoryStore struct {
	mu     sync.RWMutex
	themes map[string]Theme
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		themes: make(map[string]Theme),
	}
}

// Get returns the stored theme for the client, or ThemeLight if none is set
func (s *MemoryStore) Get(_ context.Context, clientID string) (Theme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if theme, ok := s.themes[clientID]; ok {
		return theme, nil
	}
	return ThemeLight, nil
}

// Set stores the theme for the client
func (s *MemoryStore) Set(_ context.Context, clientID string, theme Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.themes[clientID] = theme
	return nil
}

// Close is a no-op for the in-memory store
func (s *MemoryStore) Close() error {
	return nil
}

var _ Store = (*MemoryStore)(nil)
