package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"todoTracker/internal/logger"
	"todoTracker/internal/models/todo"
	repo "todoTracker/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type Storage struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func (s *Storage) HealthCheck(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		logger.Error("Repository: Неудачная проверка ping", err)
		return fmt.Errorf("проверка соединения ping: %w", err)
	}
	return nil
}

func (s *Storage) Create(ctx context.Context, todoToCreate *todo.Todo) error {
	start := time.Now()

	query := `INSERT INTO todos
				(uuid, user_uuid, title, description, completed, due_date,
				is_recurring, recurring_type, recurring_days, completed_dates, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
				RETURNING created_at`

	err := s.pool.QueryRow(ctx, query,
		todoToCreate.UUID,
		todoToCreate.UserUUID,
		todoToCreate.Title,
		todoToCreate.Description,
		todoToCreate.Completed,
		todoToCreate.DueDate,
		todoToCreate.IsRecurring,
		nullableType(todoToCreate.RecurringType),
		todoToCreate.RecurringDays,
		todoToCreate.CompletedDates,
	).Scan(&todoToCreate.CreatedAt)

	if err != nil {
		logger.Error("Repository: Не удалось добавить задачу", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("добавление задачи: %w", err)
	}

	if time.Since(start) > time.Millisecond*50 {
		logger.Warn("Repository: Медленный запрос", zap.Duration("ms", time.Since(start)))
	}
	return nil
}

func (s *Storage) Update(ctx context.Context, todoToUpdate *todo.Todo) error {
	start := time.Now()

	query := `UPDATE todos
			SET title = $1,
				description = $2,
				completed = $3,
				due_date = $4,
				is_recurring = $5,
				recurring_type = $6,
				recurring_days = $7,
				completed_dates = $8,
				updated_at = NOW()
			WHERE uuid = $9
			RETURNING updated_at`

	err := s.pool.QueryRow(ctx, query,
		todoToUpdate.Title,
		todoToUpdate.Description,
		todoToUpdate.Completed,
		todoToUpdate.DueDate,
		todoToUpdate.IsRecurring,
		nullableType(todoToUpdate.RecurringType),
		todoToUpdate.RecurringDays,
		todoToUpdate.CompletedDates,
		todoToUpdate.UUID,
	).Scan(&todoToUpdate.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repo.ErrNotFound
		}
		logger.Error("Repository: Не удалось обновить задачу", err)
		return fmt.Errorf("обновление задачи: %w", err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленная операция", zap.Duration("ms", time.Since(start)))
	}
	return nil
}

func (s *Storage) GetByID(ctx context.Context, id uuid.UUID) (*todo.Todo, error) {
	start := time.Now()

	query := `SELECT
				uuid,
				user_uuid,
				title,
				description,
				completed,
				due_date,
				is_recurring,
				COALESCE(recurring_type, ''),
				recurring_days,
				completed_dates,
				created_at,
				updated_at
				FROM todos
				WHERE uuid = $1`

	result := &todo.Todo{}
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&result.UUID,
		&result.UserUUID,
		&result.Title,
		&result.Description,
		&result.Completed,
		&result.DueDate,
		&result.IsRecurring,
		&result.RecurringType,
		&result.RecurringDays,
		&result.CompletedDates,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		logger.Error("Repository: Не удалось получить задачу", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("получение задачи: %w", err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленный запрос", zap.Duration("ms", time.Since(start)))
	}

	return result, nil
}

// GetByUser возвращает все задачи пользователя без фильтра по датам:
// календарную фильтрацию выполняет сервис в памяти.
func (s *Storage) GetByUser(ctx context.Context, userID uuid.UUID) ([]*todo.Todo, error) {
	start := time.Now()

	query := `SELECT
				uuid,
				user_uuid,
				title,
				description,
				completed,
				due_date,
				is_recurring,
				COALESCE(recurring_type, ''),
				recurring_days,
				completed_dates,
				created_at,
				updated_at
				FROM todos
				WHERE user_uuid = $1
				ORDER BY created_at`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		logger.Error("Repository: Не удалось получить задачи", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("получение задач: %w", err)
	}
	defer rows.Close()

	todos := []*todo.Todo{}
	for rows.Next() {
		result := &todo.Todo{}

		err := rows.Scan(
			&result.UUID,
			&result.UserUUID,
			&result.Title,
			&result.Description,
			&result.Completed,
			&result.DueDate,
			&result.IsRecurring,
			&result.RecurringType,
			&result.RecurringDays,
			&result.CompletedDates,
			&result.CreatedAt,
			&result.UpdatedAt,
		)
		if err != nil {
			logger.Warn("Repository: Ошибка сканирования задачи", zap.Error(err))
			continue
		}

		todos = append(todos, result)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Repository: Ошибка итерации по строкам", err)
		return nil, fmt.Errorf("итерация по строкам: %w", err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленный запрос", zap.Duration("ms", time.Since(start)))
	}

	return todos, nil
}

func (s *Storage) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()

	query := `DELETE FROM todos WHERE uuid = $1`

	tag, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		logger.Error("Repository: Удаление задачи", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("удаление задачи: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленная операция", zap.Duration("ms", time.Since(start)))
	}
	return nil
}

// nullableType превращает пустой тип повторения в NULL для базы.
func nullableType(t todo.RecurringType) *string {
	if t == todo.RecurringNone {
		return nil
	}
	value := string(t)
	return &value
}
