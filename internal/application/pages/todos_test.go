package pages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dummyhub/backend/internal/domain/identity"
	"github.com/dummyhub/backend/internal/domain/shared"
	"github.com/dummyhub/backend/internal/domain/task"
)

func stubTodos() []task.Todo {
	return []task.Todo{
		{ID: 1, Todo: "Water the plants", Completed: true, UserID: 1},
		{ID: 2, Todo: "Walk the dog", Completed: true, UserID: 2},
		{ID: 3, Todo: "File taxes", Completed: false, UserID: 1},
	}
}

func TestTodosViewStatsOverFullSet(t *testing.T) {
	source := &stubSource{
		todos: func() ([]task.Todo, error) { return stubTodos(), nil },
		users: func() ([]identity.User, error) {
			return []identity.User{{ID: 1, FirstName: "Ada", LastName: "Lovelace"}}, nil
		},
	}
	svc := NewTodosService(source, zap.NewNop())

	view := svc.View(context.Background(), "", task.StatusPending)

	// Listing is filtered, stats are not.
	require.Len(t, view.Todos, 1)
	assert.Equal(t, "File taxes", view.Todos[0].Text)
	assert.Equal(t, 3, view.Stats.Total)
	assert.Equal(t, 2, view.Stats.Completed)
	assert.Equal(t, 1, view.Stats.Pending)
	assert.Equal(t, view.Stats.Total, view.Stats.Completed+view.Stats.Pending)
}

func TestTodosViewOwnerJoin(t *testing.T) {
	source := &stubSource{
		todos: func() ([]task.Todo, error) { return stubTodos(), nil },
		users: func() ([]identity.User, error) {
			return []identity.User{{ID: 1, FirstName: "Ada", LastName: "Lovelace"}}, nil
		},
	}
	svc := NewTodosService(source, zap.NewNop())

	view := svc.View(context.Background(), "", "")

	require.Len(t, view.Todos, 3)
	assert.Equal(t, "Ada Lovelace", view.Todos[0].Owner)
	assert.Equal(t, "User #2", view.Todos[1].Owner)
	assert.Equal(t, "all", view.Status)
}

func TestTodosViewPartialOnTodoFailure(t *testing.T) {
	source := &stubSource{
		users: func() ([]identity.User, error) { return nil, nil },
	}
	svc := NewTodosService(source, zap.NewNop())

	view := svc.View(context.Background(), "", task.StatusAll)

	assert.Equal(t, shared.StatePartial, view.State)
	assert.Empty(t, view.Todos)
	assert.Zero(t, view.Stats.Total)
	assert.NotEmpty(t, view.EmptyMessage)
}

func TestTodosViewTextFilter(t *testing.T) {
	source := &stubSource{
		todos: func() ([]task.Todo, error) { return stubTodos(), nil },
		users: func() ([]identity.User, error) { return nil, nil },
	}
	svc := NewTodosService(source, zap.NewNop())

	view := svc.View(context.Background(), "the", task.StatusCompleted)

	require.Len(t, view.Todos, 2)
	assert.Equal(t, "Water the plants", view.Todos[0].Text)
	assert.Equal(t, "Walk the dog", view.Todos[1].Text)
}
