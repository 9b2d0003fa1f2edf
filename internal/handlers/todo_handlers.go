package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"todoTracker/internal/handlers/dto"
	"todoTracker/internal/logger"
	"todoTracker/internal/middleware"
	"todoTracker/internal/models/todo"
	"todoTracker/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TodoHandler struct {
	TodoService TodoService
}

func NewTodoHandler(todoService TodoService) TodoHandler {
	return TodoHandler{
		TodoService: todoService,
	}
}

// callerID достаёт идентичность, положенную Auth-middleware. Ниже по стеку
// она передаётся только явно.
func callerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		logger.Warn("HTTP: Запрос без идентичности",
			zap.String("path", r.URL.Path),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusUnauthorized, "требуется авторизация")
		return uuid.Nil, false
	}
	return userID, true
}

func (s *TodoHandler) PostTodo(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var request dto.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "неверное тело запроса:"+err.Error())
		return
	}

	if request.Title == "" {
		logger.Warn("HTTP: Ошибка валидации",
			zap.String("field", "title"),
			zap.String("error", "empty_field"),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "название не может быть пустым")
		return
	}

	input := service.CreateTodoInput{
		Title:       request.Title,
		Description: request.Description,
		IsRecurring: request.IsRecurring,
	}
	if request.DueDate != nil {
		dueDate := dto.MillisToTime(*request.DueDate)
		input.DueDate = &dueDate
	}
	if request.RecurringType != nil {
		input.RecurringType = todo.RecurringType(*request.RecurringType)
	}
	input.RecurringDays = request.RecurringDays

	logger.Info("HTTP: Вызов сервиса создания задач")
	created, err := s.TodoService.Create(r.Context(), userID, input)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	logger.Info("HTTP_OUT: Задача создана",
		zap.String("todo_id", created.UUID.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))

	responseWithJSON(w, http.StatusCreated, dto.FromTodo(created))
}

func (s *TodoHandler) GetTodos(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	todos, err := s.TodoService.GetAll(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	logger.Info("HTTP_OUT: Задачи получены",
		zap.Int("count", len(todos)),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, dto.FromTodoList(todos))
}

func (s *TodoHandler) GetTodosForDate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	millis, err := strconv.ParseInt(r.URL.Query().Get("date"), 10, 64)
	if err != nil {
		logger.Warn("HTTP: Ошибка получения параметра",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "не удалось получить значение date: "+err.Error())
		return
	}

	date := dto.MillisToTime(millis)

	logger.Info("HTTP: Вызов сервиса для получения задач на дату")
	todos, err := s.TodoService.GetForDate(r.Context(), userID, date)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	logger.Info("HTTP_OUT: Задачи на дату получены",
		zap.Int("count", len(todos)),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, dto.FromTodoListOnDate(todos, date))
}

func (s *TodoHandler) ToggleTodo(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var request dto.ToggleTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "неверное тело запроса:"+err.Error())
		return
	}

	todoID, err := uuid.Parse(request.TodoID)
	if err != nil {
		logger.Warn("HTTP: Не удалось получить todoId",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "не удалось получить todoId:"+err.Error())
		return
	}

	var date *time.Time
	if request.Date != nil {
		parsed := dto.MillisToTime(*request.Date)
		date = &parsed
	}

	logger.Info("HTTP: Вызов сервиса переключения задачи")
	updated, err := s.TodoService.Toggle(r.Context(), userID, todoID, date)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	logger.Info("HTTP_OUT: Задача переключена",
		zap.String("todo_id", updated.UUID.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, dto.FromTodo(updated))
}

func (s *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	idParam := chi.URLParam(r, "id")
	todoID, err := uuid.Parse(idParam)
	if err != nil {
		logger.Warn("HTTP: Не удалось получить id",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "не удалось получить id:"+err.Error())
		return
	}

	logger.Info("HTTP: Обращение к сервису для удаления задачи")
	if err := s.TodoService.Delete(r.Context(), userID, todoID); err != nil {
		handleServiceError(w, err)
		return
	}

	logger.Info("HTTP_OUT: Задача удалена",
		zap.String("todo_id", todoID.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusNoContent))

	responseWithJSON(w, http.StatusNoContent, nil)
}

func (s *TodoHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP: Health check")

	if err := s.TodoService.HealthCheck(r.Context()); err != nil {
		responseWithJSON(w, http.StatusServiceUnavailable, map[string]any{
			"service": "todo-tracker",
			"status":  "unavailable",
		})
		return
	}

	responseWithJSON(w, http.StatusOK, map[string]any{
		"service": "todo-tracker",
		"status":  "ok",
	})
}
