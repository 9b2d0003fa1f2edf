package inmemory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"todoTracker/internal/models/todo"
	repo "todoTracker/internal/repository"
	"todoTracker/internal/repository/todo/inmemory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTodo(userID uuid.UUID, title string) *todo.Todo {
	return &todo.Todo{
		UUID:           uuid.New(),
		UserUUID:       userID,
		Title:          title,
		CompletedDates: []time.Time{},
	}
}

func TestTodoStorage_CreateAndGet(t *testing.T) {
	storage := inmemory.NewTodoStorage()
	ctx := context.Background()
	userID := uuid.New()

	created := newTodo(userID, "Buy milk")
	require.NoError(t, storage.Create(ctx, created))
	assert.False(t, created.CreatedAt.IsZero())

	got, err := storage.GetByID(ctx, created.UUID)
	require.NoError(t, err)
	assert.Equal(t, created.UUID, got.UUID)
	assert.Equal(t, "Buy milk", got.Title)

	_, err = storage.GetByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, repo.ErrNotFound))
}

// TestTodoStorage_GetByUser проверяет изоляцию по пользователю и порядок создания
func TestTodoStorage_GetByUser(t *testing.T) {
	storage := inmemory.NewTodoStorage()
	ctx := context.Background()

	owner := uuid.New()
	other := uuid.New()

	first := newTodo(owner, "first")
	second := newTodo(other, "foreign")
	third := newTodo(owner, "second")

	require.NoError(t, storage.Create(ctx, first))
	require.NoError(t, storage.Create(ctx, second))
	require.NoError(t, storage.Create(ctx, third))

	todos, err := storage.GetByUser(ctx, owner)
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "first", todos[0].Title)
	assert.Equal(t, "second", todos[1].Title)

	empty, err := storage.GetByUser(ctx, uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestTodoStorage_Update(t *testing.T) {
	storage := inmemory.NewTodoStorage()
	ctx := context.Background()

	created := newTodo(uuid.New(), "Water plants")
	require.NoError(t, storage.Create(ctx, created))

	created.Completed = true
	created.CompletedDates = append(created.CompletedDates,
		time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local))
	require.NoError(t, storage.Update(ctx, created))
	require.NotNil(t, created.UpdatedAt)

	got, err := storage.GetByID(ctx, created.UUID)
	require.NoError(t, err)
	assert.True(t, got.Completed)
	assert.Len(t, got.CompletedDates, 1)

	missing := newTodo(uuid.New(), "ghost")
	err = storage.Update(ctx, missing)
	assert.True(t, errors.Is(err, repo.ErrNotFound))
}

// TestTodoStorage_CopySemantics проверяет, что мутация результата чтения
// не меняет хранилище
func TestTodoStorage_CopySemantics(t *testing.T) {
	storage := inmemory.NewTodoStorage()
	ctx := context.Background()

	created := newTodo(uuid.New(), "Stretch")
	created.RecurringDays = []int{1, 3, 5}
	require.NoError(t, storage.Create(ctx, created))

	got, err := storage.GetByID(ctx, created.UUID)
	require.NoError(t, err)

	got.Title = "mutated"
	got.RecurringDays[0] = 6
	got.CompletedDates = append(got.CompletedDates, time.Now())

	fresh, err := storage.GetByID(ctx, created.UUID)
	require.NoError(t, err)
	assert.Equal(t, "Stretch", fresh.Title)
	assert.Equal(t, []int{1, 3, 5}, fresh.RecurringDays)
	assert.Empty(t, fresh.CompletedDates)
}

func TestTodoStorage_Delete(t *testing.T) {
	storage := inmemory.NewTodoStorage()
	ctx := context.Background()
	userID := uuid.New()

	created := newTodo(userID, "Buy milk")
	require.NoError(t, storage.Create(ctx, created))

	require.NoError(t, storage.Delete(ctx, created.UUID))

	_, err := storage.GetByID(ctx, created.UUID)
	assert.True(t, errors.Is(err, repo.ErrNotFound))

	todos, err := storage.GetByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, todos)

	err = storage.Delete(ctx, created.UUID)
	assert.True(t, errors.Is(err, repo.ErrNotFound))
}

func TestTodoStorage_HealthCheck(t *testing.T) {
	storage := inmemory.NewTodoStorage()
	assert.NoError(t, storage.HealthCheck(context.Background()))
}
