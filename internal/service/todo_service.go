package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"todoTracker/internal/logger"
	"todoTracker/internal/models/todo"
	rep "todoTracker/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// здесь бизнес-логика задач: валидация, фильтрация по дате и проверка владельца

type TodoService struct {
	repo TodoRepository
}

func NewTodoService(repo TodoRepository) *TodoService {
	return &TodoService{
		repo: repo,
	}
}

// CreateTodoInput — уже провалидированная форма запроса на создание.
type CreateTodoInput struct {
	Title         string
	Description   string
	DueDate       *time.Time
	IsRecurring   bool
	RecurringType todo.RecurringType
	RecurringDays []int
}

func (s *TodoService) HealthCheck(ctx context.Context) error {
	if err := s.repo.HealthCheck(ctx); err != nil {
		return fmt.Errorf("проверка здоровья сервиса: %w", err)
	}
	return nil
}

func (s *TodoService) Create(ctx context.Context, userID uuid.UUID, input CreateTodoInput) (*todo.Todo, error) {
	if input.Title == "" {
		return nil, NewValidationError("title", "название не может быть пустым")
	}

	if input.IsRecurring &&
		input.RecurringType != todo.RecurringDaily &&
		input.RecurringType != todo.RecurringWeekly {
		return nil, NewValidationError("recurringType", "допустимы только daily и weekly")
	}

	newTodo := &todo.Todo{
		UUID:           uuid.New(),
		UserUUID:       userID,
		Title:          input.Title,
		Description:    input.Description,
		DueDate:        input.DueDate,
		CompletedDates: []time.Time{},
	}

	if input.IsRecurring {
		newTodo.IsRecurring = true
		newTodo.RecurringType = input.RecurringType
		newTodo.RecurringDays = input.RecurringDays
	}

	if err := s.repo.Create(ctx, newTodo); err != nil {
		return nil, fmt.Errorf("создание задачи: %w", err)
	}

	logger.Info("Service: Задача создана",
		zap.String("todo_id", newTodo.UUID.String()),
		zap.String("user_id", userID.String()))

	return newTodo, nil
}

// GetAll возвращает все задачи пользователя без календарного фильтра.
func (s *TodoService) GetAll(ctx context.Context, userID uuid.UUID) ([]*todo.Todo, error) {
	todos, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("получение задач: %w", err)
	}
	return todos, nil
}

// GetForDate загружает все задачи пользователя и оставляет активные на
// указанный день. Хранилище про даты ничего не знает — фильтр в памяти.
func (s *TodoService) GetForDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*todo.Todo, error) {
	todos, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("получение задач: %w", err)
	}

	active := []*todo.Todo{}
	for _, t := range todos {
		if t.ActiveOn(date) {
			active = append(active, t)
		}
	}

	logger.Info("Service: Задачи на дату отфильтрованы",
		zap.String("user_id", userID.String()),
		zap.Int("total", len(todos)),
		zap.Int("active", len(active)))

	return active, nil
}

// Toggle переключает выполнение задачи. Запись перечитывается, меняется и
// сохраняется целиком: при гонке двух запросов побеждает последний.
func (s *TodoService) Toggle(ctx context.Context, userID, todoID uuid.UUID, date *time.Time) (*todo.Todo, error) {
	existing, err := s.loadOwned(ctx, userID, todoID)
	if err != nil {
		return nil, err
	}

	existing.Toggle(date)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("сохранение задачи: %w", err)
	}

	return existing, nil
}

func (s *TodoService) Delete(ctx context.Context, userID, todoID uuid.UUID) error {
	if _, err := s.loadOwned(ctx, userID, todoID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, todoID); err != nil {
		return fmt.Errorf("удаление задачи: %w", err)
	}

	logger.Info("Service: Задача удалена", zap.String("todo_id", todoID.String()))
	return nil
}

// loadOwned — единая проверка доступа для мутаций: сначала существование,
// затем владелец.
func (s *TodoService) loadOwned(ctx context.Context, userID, todoID uuid.UUID) (*todo.Todo, error) {
	existing, err := s.repo.GetByID(ctx, todoID)
	if err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			logger.Info("Service: Задача не найдена", zap.String("target_id", todoID.String()))
			return nil, NewNotFound("задача", todoID.String())
		}
		return nil, fmt.Errorf("получение задачи: %w", err)
	}

	if existing.UserUUID != userID {
		logger.Warn("Service: Попытка доступа к чужой задаче",
			zap.String("todo_id", todoID.String()),
			zap.String("caller_id", userID.String()))
		return nil, NewForbidden("задача", todoID.String())
	}

	return existing, nil
}
