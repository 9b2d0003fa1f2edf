package handlers

import (
	"context"
	"time"

	"todoTracker/internal/models/todo"
	"todoTracker/internal/models/user"
	"todoTracker/internal/service"

	"github.com/google/uuid"
)

type TodoService interface {
	Create(context.Context, uuid.UUID, service.CreateTodoInput) (*todo.Todo, error)
	GetAll(context.Context, uuid.UUID) ([]*todo.Todo, error)
	GetForDate(context.Context, uuid.UUID, time.Time) ([]*todo.Todo, error)
	Toggle(context.Context, uuid.UUID, uuid.UUID, *time.Time) (*todo.Todo, error)
	Delete(context.Context, uuid.UUID, uuid.UUID) error
	HealthCheck(context.Context) error
}

type AuthService interface {
	SignIn(context.Context, service.SignInInput) (*service.AuthResult, error)
	CurrentUser(context.Context, uuid.UUID) (*user.User, error)
}
