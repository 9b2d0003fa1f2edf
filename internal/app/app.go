package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"todoTracker/internal/config"
	"todoTracker/internal/handlers"
	"todoTracker/internal/logger"
	"todoTracker/internal/middleware"
	"todoTracker/internal/repository/postgres"
	todoinmemory "todoTracker/internal/repository/todo/inmemory"
	todopostgres "todoTracker/internal/repository/todo/postgres"
	userinmemory "todoTracker/internal/repository/user/inmemory"
	userpostgres "todoTracker/internal/repository/user/postgres"
	"todoTracker/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	config    *config.Config
	server    *http.Server
	router    *chi.Mux
	todoRepo  service.TodoRepository
	userRepo  service.UserRepository
	shutdowns []func() // функции для graceful shutdown
}

func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
	}
}

func (a *App) Init(ctx context.Context) error {
	if err := logger.Init(a.config.Logging.Development); err != nil {
		return fmt.Errorf("инициализация логгера: %w", err)
	}

	a.shutdowns = append(a.shutdowns, func() {
		logger.Info("Завершение работы логгирования...")
		logger.Sync()
	})

	if err := a.initRepositories(ctx); err != nil {
		return fmt.Errorf("инициализация хранилищ: %w", err)
	}

	a.initRouter()

	a.server = &http.Server{
		Addr:    a.config.GetServerAddr(),
		Handler: a.router,
	}

	return nil
}

// initRepositories выбирает адаптер хранилища по конфигу: одно ядро,
// два взаимозаменяемых бекенда.
func (a *App) initRepositories(ctx context.Context) error {
	switch a.config.Repository.Type {
	case "postgres":
		pool, err := postgres.NewPool(ctx, a.config.Database)
		if err != nil {
			return err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			return err
		}
		a.shutdowns = append(a.shutdowns, func() {
			logger.Info("Закрытие соединений PostgreSQL...")
			pool.Close()
		})

		a.todoRepo = todopostgres.New(pool)
		a.userRepo = userpostgres.New(pool)
	case "inmemory", "":
		a.todoRepo = todoinmemory.NewTodoStorage()
		a.userRepo = userinmemory.NewUserStorage()
	default:
		return fmt.Errorf("неизвестный тип хранилища: %s", a.config.Repository.Type)
	}

	logger.Info("Хранилище выбрано", zap.String("type", a.config.Repository.Type))
	return nil
}

func (a *App) initRouter() {
	todoService := service.NewTodoService(a.todoRepo)
	authService := service.NewAuthService(a.userRepo, a.config.Auth.JWTSecret, a.config.Auth.TokenTTL)

	todoHandler := handlers.NewTodoHandler(todoService)
	authHandler := handlers.NewAuthHandler(authService)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.RateLimit(100))

	r.Post("/auth/signin", authHandler.SignIn)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(a.config.Auth.JWTSecret))

		r.Get("/auth/me", authHandler.Me)

		r.Route("/todos", func(r chi.Router) {
			r.Get("/", todoHandler.GetTodos)                // GET /todos
			r.Post("/", todoHandler.PostTodo)               // POST /todos
			r.Get("/for-date", todoHandler.GetTodosForDate) // GET /todos/for-date?date=millis
			r.Post("/toggle", todoHandler.ToggleTodo)       // POST /todos/toggle
			r.Delete("/{id}", todoHandler.DeleteTodo)       // DELETE /todos/{id}
		})
	})

	r.Get("/health", todoHandler.HealthCheck)

	a.router = r
}

// Run запускает сервер и ждёт отмены контекста для корректной остановки.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		logger.Info("Сервер запущен", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("запуск сервера: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка остановки сервера", err)
	}

	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}

	return nil
}
