package pages

import (
	"context"

	"go.uber.org/zap"

	"github.com/dummyhub/backend/internal/domain/identity"
)

// UsersService serves the users page: the people directory with free-text
// search over names, emails and companies.
type UsersService struct {
	source DataSource
	logger *zap.Logger
}

// NewUsersService creates a new UsersService
func NewUsersService(source DataSource, logger *zap.Logger) *UsersService {
	return &UsersService{source: source, logger: logger}
}

// View fetches the user directory and builds the filtered page view
func (s *UsersService) View(ctx context.Context, query string) UsersView {
	users, state := fetchSlice(ctx, s.logger, "users", s.source.Users)

	filtered := identity.Filter(users, query)

	cards := make([]UserCard, 0, len(filtered))
	for _, u := range filtered {
		ref := identity.Ref{User: u, ID: u.ID, Found: true}
		cards = append(cards, UserCard{
			ID:       u.ID,
			Name:     u.FullName(),
			Initials: ref.Initials(),
			Email:    u.Email,
			Phone:    u.Phone,
			Age:      u.Age,
			Company:  u.Company.Name,
			JobTitle: u.Company.Title,
			City:     u.Address.City,
			State:    u.Address.State,
			Image:    u.Image,
		})
	}

	view := UsersView{
		Users: cards,
		Query: query,
		Total: len(users),
		Shown: len(cards),
		State: state,
	}
	if len(cards) == 0 {
		view.EmptyMessage = "No users match your search."
	}
	return view
}
