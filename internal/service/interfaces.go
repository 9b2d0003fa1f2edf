package service

import (
	"context"

	"todoTracker/internal/models/todo"
	"todoTracker/internal/models/user"

	"github.com/google/uuid"
)

type TodoRepository interface {
	Create(context.Context, *todo.Todo) error
	Update(context.Context, *todo.Todo) error
	GetByID(context.Context, uuid.UUID) (*todo.Todo, error)
	GetByUser(context.Context, uuid.UUID) ([]*todo.Todo, error)
	Delete(context.Context, uuid.UUID) error
	HealthCheck(context.Context) error
}

type UserRepository interface {
	Create(context.Context, *user.User) error
	GetByID(context.Context, uuid.UUID) (*user.User, error)
	GetByEmail(context.Context, string) (*user.User, error)
	HealthCheck(context.Context) error
}
