package postgres

import (
	"context"
	"fmt"
	"time"

	"todoTracker/internal/config"
	"todoTracker/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool создаёт общий пул соединений для всех postgres-хранилищ.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		logger.Error("Repository: Ошибка загрузки конфига", err)
		return nil, fmt.Errorf("загрузка конфига: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.MaxConnIdleTime = cfg.IdleTimeout
	if poolConfig.MaxConns == 0 {
		poolConfig.MaxConns = 10
	}
	if poolConfig.MaxConnIdleTime == 0 {
		poolConfig.MaxConnIdleTime = time.Minute * 5
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Error("Repository: Ошибка создания пула", err)
		return nil, fmt.Errorf("создание пула: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Error("Repository: Неудачная проверка ping", err)
		return nil, fmt.Errorf("проверка соединения ping: %w", err)
	}

	logger.Info("Repository: Успешное создание подключения к PostgreSQL")
	return pool, nil
}

// EnsureSchema создаёт таблицы, если их ещё нет. Удаление пользователя
// каскадно удаляет его задачи — инвариант ссылочной целостности держит
// сама база.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		uuid UUID PRIMARY KEY,
		email TEXT UNIQUE,
		password_hash TEXT,
		is_anonymous BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ
	);

	CREATE TABLE IF NOT EXISTS todos (
		uuid UUID PRIMARY KEY,
		user_uuid UUID NOT NULL REFERENCES users(uuid) ON DELETE CASCADE,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		due_date TIMESTAMPTZ,
		is_recurring BOOLEAN NOT NULL DEFAULT FALSE,
		recurring_type VARCHAR(16),
		recurring_days INTEGER[],
		completed_dates TIMESTAMPTZ[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ
	);

	CREATE INDEX IF NOT EXISTS idx_todos_user ON todos(user_uuid);
	CREATE INDEX IF NOT EXISTS idx_users_email ON users(email) WHERE email IS NOT NULL;
	`

	if _, err := pool.Exec(ctx, query); err != nil {
		logger.Error("Repository: Ошибка создания схемы", err)
		return fmt.Errorf("создание схемы: %w", err)
	}

	logger.Info("Repository: Схема проверена")
	return nil
}
