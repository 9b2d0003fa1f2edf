package inmemory

import (
	"context"
	"sync"
	"time"

	"todoTracker/internal/models/todo"
	repo "todoTracker/internal/repository"

	"github.com/google/uuid"
)

type TodoStorage struct {
	storage map[uuid.UUID]*todo.Todo
	mtx     *sync.RWMutex
	ids     []uuid.UUID
}

func NewTodoStorage() *TodoStorage {
	return &TodoStorage{
		storage: make(map[uuid.UUID]*todo.Todo),
		mtx:     &sync.RWMutex{},
		ids:     []uuid.UUID{},
	}
}

func (s *TodoStorage) HealthCheck(ctx context.Context) error {
	return nil
}

func (s *TodoStorage) Create(ctx context.Context, todoToCreate *todo.Todo) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	todoToCreate.CreatedAt = time.Now()

	s.storage[todoToCreate.UUID] = copyTodo(todoToCreate)
	s.ids = append(s.ids, todoToCreate.UUID)
	return nil
}

func (s *TodoStorage) Update(ctx context.Context, todoToUpdate *todo.Todo) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.storage[todoToUpdate.UUID]; !ok {
		return repo.ErrNotFound
	}

	now := time.Now()
	todoToUpdate.UpdatedAt = &now
	s.storage[todoToUpdate.UUID] = copyTodo(todoToUpdate)

	return nil
}

func (s *TodoStorage) GetByID(ctx context.Context, id uuid.UUID) (*todo.Todo, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	todoToGet, ok := s.storage[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return copyTodo(todoToGet), nil
}

// GetByUser возвращает задачи пользователя в порядке создания.
func (s *TodoStorage) GetByUser(ctx context.Context, userID uuid.UUID) ([]*todo.Todo, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []*todo.Todo{}
	for _, id := range s.ids {
		todoToGet, ok := s.storage[id]
		if !ok || todoToGet.UserUUID != userID {
			continue
		}
		res = append(res, copyTodo(todoToGet))
	}

	return res, nil
}

func (s *TodoStorage) Delete(ctx context.Context, id uuid.UUID) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.storage[id]; !ok {
		return repo.ErrNotFound
	}

	delete(s.storage, id)
	for ind, val := range s.ids {
		if val == id {
			s.ids = append(s.ids[:ind], s.ids[ind+1:]...)
			break
		}
	}
	return nil
}

// copyTodo отдаёт независимую копию: изменения попадают в хранилище
// только через Update.
func copyTodo(src *todo.Todo) *todo.Todo {
	dst := *src
	dst.RecurringDays = append([]int(nil), src.RecurringDays...)
	dst.CompletedDates = append([]time.Time(nil), src.CompletedDates...)
	return &dst
}
