package pages

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/dummyhub/backend/internal/domain/identity"
	"github.com/dummyhub/backend/internal/domain/shared"
	"github.com/dummyhub/backend/internal/domain/task"
)

// TodosService serves the todos page: tasks joined to their owners, with
// completion stats over the full set and a filtered listing.
type TodosService struct {
	source DataSource
	logger *zap.Logger
}

// NewTodosService creates a new TodosService
func NewTodosService(source DataSource, logger *zap.Logger) *TodosService {
	return &TodosService{source: source, logger: logger}
}

// View fetches todos and users concurrently and builds the page view.
// Stats cover the full loaded set; the listing covers the filtered
// subsequence. An empty status selector behaves like "all".
func (s *TodosService) View(ctx context.Context, query string, status task.StatusFilter) TodosView {
	var (
		wg     sync.WaitGroup
		todos  []task.Todo
		users  []identity.User
		tState shared.PageState
		uState shared.PageState
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		todos, tState = fetchSlice(ctx, s.logger, "todos", s.source.Todos)
	}()
	go func() {
		defer wg.Done()
		users, uState = fetchSlice(ctx, s.logger, "users", s.source.Users)
	}()
	wg.Wait()

	if status == "" {
		status = task.StatusAll
	}

	directory := identity.NewDirectory(users)

	filtered := task.Filter(todos, query, status)
	items := make([]TodoItem, 0, len(filtered))
	for _, td := range filtered {
		items = append(items, TodoItem{
			ID:        td.ID,
			Text:      td.Todo,
			Completed: td.Completed,
			Owner:     directory.Lookup(td.UserID).DisplayName(),
		})
	}

	view := TodosView{
		Todos:  items,
		Stats:  task.CountByStatus(todos),
		Query:  query,
		Status: string(status),
		State:  shared.Combine(tState, uState),
	}
	if len(items) == 0 {
		view.EmptyMessage = "No todos match your filters."
	}
	return view
}
