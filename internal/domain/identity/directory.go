package identity

import (
	"fmt"
	"strings"
)

// Directory is a loaded user collection other pages resolve foreign keys
// against. The zero value is an empty directory: every lookup misses, which is
// the expected state while the users fetch is still in flight or has failed.
type Directory struct {
	users []User
}

// NewDirectory wraps a loaded user list.
func NewDirectory(users []User) Directory {
	return Directory{users: users}
}

// Len reports how many users are loaded.
func (d Directory) Len() int {
	return len(d.users)
}

// Users returns the loaded collection in arrival order.
func (d Directory) Users() []User {
	return d.users
}

// Ref is the result of a foreign-key lookup. Found distinguishes a resolved
// user from the absent case, so callers are forced to pick a fallback instead
// of dereferencing a missing profile.
type Ref struct {
	User  User
	ID    int
	Found bool
}

// Lookup resolves a userId by linear scan. A miss is not an error: it returns
// a Ref with Found unset, carrying the id for fallback rendering.
func (d Directory) Lookup(id int) Ref {
	for _, u := range d.users {
		if u.ID == id {
			return Ref{User: u, ID: id, Found: true}
		}
	}
	return Ref{ID: id}
}

// DisplayName returns the resolved full name, or the "User #<id>" placeholder
// when the referent is absent.
func (r Ref) DisplayName() string {
	if r.Found {
		return r.User.FullName()
	}
	if r.ID > 0 {
		return fmt.Sprintf("User #%d", r.ID)
	}
	return "Unknown User"
}

// Initials returns the avatar-fallback initials, or "U" when unresolved.
func (r Ref) Initials() string {
	if !r.Found {
		return "U"
	}
	var b strings.Builder
	if r.User.FirstName != "" {
		b.WriteString(strings.ToUpper(r.User.FirstName[:1]))
	}
	if r.User.LastName != "" {
		b.WriteString(strings.ToUpper(r.User.LastName[:1]))
	}
	if b.Len() == 0 {
		return "U"
	}
	return b.String()
}

// Image returns the avatar URL, or empty when the referent is absent so the
// client can fall back to its placeholder image.
func (r Ref) Image() string {
	if !r.Found {
		return ""
	}
	return r.User.Image
}
