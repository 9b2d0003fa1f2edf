package inmemory

import (
	"context"
	"sync"
	"time"

	"todoTracker/internal/models/user"
	repo "todoTracker/internal/repository"

	"github.com/google/uuid"
)

type UserStorage struct {
	storage map[uuid.UUID]*user.User
	byEmail map[string]uuid.UUID
	mtx     *sync.RWMutex
}

func NewUserStorage() *UserStorage {
	return &UserStorage{
		storage: make(map[uuid.UUID]*user.User),
		byEmail: make(map[string]uuid.UUID),
		mtx:     &sync.RWMutex{},
	}
}

func (s *UserStorage) HealthCheck(ctx context.Context) error {
	return nil
}

func (s *UserStorage) Create(ctx context.Context, userToCreate *user.User) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if userToCreate.Email != nil {
		if _, exists := s.byEmail[*userToCreate.Email]; exists {
			return repo.ErrConflict
		}
	}

	userToCreate.CreatedAt = time.Now()
	s.storage[userToCreate.UUID] = copyUser(userToCreate)
	if userToCreate.Email != nil {
		s.byEmail[*userToCreate.Email] = userToCreate.UUID
	}
	return nil
}

func (s *UserStorage) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	userToGet, ok := s.storage[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return copyUser(userToGet), nil
}

func (s *UserStorage) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return copyUser(s.storage[id]), nil
}

func copyUser(src *user.User) *user.User {
	dst := *src
	return &dst
}
