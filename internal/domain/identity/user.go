// Package identity holds the user profiles loaded from the upstream API and
// the lookup logic other pages use to resolve userId foreign keys.
package identity

import "strings"

// User is a read-only snapshot of an upstream profile. Field names follow the
// upstream JSON schema.
type User struct {
	ID         int     `json:"id"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Age        int     `json:"age"`
	Gender     string  `json:"gender"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Username   string  `json:"username"`
	BirthDate  string  `json:"birthDate"`
	Image      string  `json:"image"`
	BloodGroup string  `json:"bloodGroup"`
	EyeColor   string  `json:"eyeColor"`
	Hair       Hair    `json:"hair"`
	Address    Address `json:"address"`
	Company    Company `json:"company"`
}

// Hair holds the hair attributes rendered as profile badges.
type Hair struct {
	Color string `json:"color"`
}

// Address is the subset of the upstream address used by the user card.
type Address struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// Company is the employment block of a profile.
type Company struct {
	Department string `json:"department"`
	Name       string `json:"name"`
	Title      string `json:"title"`
}

// FullName returns "FirstName LastName".
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Filter returns the subsequence of users whose full name, email, or company
// name contains the query, case-insensitively. An empty query matches all.
// Source order is preserved.
func Filter(users []User, query string) []User {
	q := strings.ToLower(query)

	out := make([]User, 0, len(users))
	for _, u := range users {
		if q != "" &&
			!strings.Contains(strings.ToLower(u.FullName()), q) &&
			!strings.Contains(strings.ToLower(u.Email), q) &&
			!strings.Contains(strings.ToLower(u.Company.Name), q) {
			continue
		}
		out = append(out, u)
	}
	return out
}
