// Package prefs stores per-client display preferences. The only preference
// today is the color theme, persisted across sessions in either an in-memory
// map or Redis depending on deployment configuration.
package prefs

import "context"

// Theme is a client display theme
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether the theme is one of the known values
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Store persists theme preferences per client.
// Get returns ThemeLight for clients with no stored preference.
type Store interface {
	Get(ctx context.Context, clientID string) (Theme, error)
	Set(ctx context.Context, clientID string, theme Theme) error
	Close() error
}
