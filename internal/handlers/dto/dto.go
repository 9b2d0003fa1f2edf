// Пакет dto описывает проводной формат API: все даты — epoch millis,
// имена полей — в camelCase, как их ждёт клиент.
package dto

import (
	"time"

	"todoTracker/internal/models/todo"
	"todoTracker/internal/models/user"
)

type SignInRequest struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Flow     string  `json:"flow,omitempty"`
}

type UserResponse struct {
	ID          string  `json:"id"`
	Email       *string `json:"email"`
	IsAnonymous bool    `json:"isAnonymous"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type CreateTodoRequest struct {
	Title         string  `json:"title"`
	Description   string  `json:"description,omitempty"`
	DueDate       *int64  `json:"dueDate,omitempty"`
	IsRecurring   bool    `json:"isRecurring,omitempty"`
	RecurringType *string `json:"recurringType,omitempty"`
	RecurringDays []int   `json:"recurringDays,omitempty"`
}

type ToggleTodoRequest struct {
	TodoID string `json:"todoId"`
	Date   *int64 `json:"date,omitempty"`
}

type TodoResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"userId"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Completed      bool    `json:"completed"`
	DueDate        *int64  `json:"dueDate"`
	IsRecurring    bool    `json:"isRecurring"`
	RecurringType  *string `json:"recurringType"`
	RecurringDays  []int   `json:"recurringDays"`
	CompletedDates []int64 `json:"completedDates"`
	CreatedAt      int64   `json:"createdAt"`
	UpdatedAt      *int64  `json:"updatedAt,omitempty"`
}

// TodoOnDateResponse — элемент выдачи "задачи на день": к задаче добавлен
// признак выполнения именно в запрошенный день.
type TodoOnDateResponse struct {
	TodoResponse
	CompletedOnDate bool `json:"completedOnDate"`
}

func FromUser(u *user.User) UserResponse {
	return UserResponse{
		ID:          u.UUID.String(),
		Email:       u.Email,
		IsAnonymous: u.IsAnonymous,
	}
}

func FromTodo(t *todo.Todo) TodoResponse {
	res := TodoResponse{
		ID:             t.UUID.String(),
		UserID:         t.UserUUID.String(),
		Title:          t.Title,
		Description:    t.Description,
		Completed:      t.Completed,
		IsRecurring:    t.IsRecurring,
		RecurringDays:  t.RecurringDays,
		CompletedDates: make([]int64, 0, len(t.CompletedDates)),
		CreatedAt:      t.CreatedAt.UnixMilli(),
	}

	if t.DueDate != nil {
		millis := t.DueDate.UnixMilli()
		res.DueDate = &millis
	}
	if t.RecurringType != todo.RecurringNone {
		recurringType := string(t.RecurringType)
		res.RecurringType = &recurringType
	}
	for _, completed := range t.CompletedDates {
		res.CompletedDates = append(res.CompletedDates, completed.UnixMilli())
	}
	if t.UpdatedAt != nil {
		millis := t.UpdatedAt.UnixMilli()
		res.UpdatedAt = &millis
	}

	return res
}

func FromTodoOnDate(t *todo.Todo, date time.Time) TodoOnDateResponse {
	return TodoOnDateResponse{
		TodoResponse:    FromTodo(t),
		CompletedOnDate: t.CompletedOn(date),
	}
}

func FromTodoList(todos []*todo.Todo) []TodoResponse {
	result := make([]TodoResponse, len(todos))
	for i, t := range todos {
		result[i] = FromTodo(t)
	}
	return result
}

func FromTodoListOnDate(todos []*todo.Todo, date time.Time) []TodoOnDateResponse {
	result := make([]TodoOnDateResponse, len(todos))
	for i, t := range todos {
		result[i] = FromTodoOnDate(t, date)
	}
	return result
}

// MillisToTime переводит epoch millis в локальное время.
func MillisToTime(millis int64) time.Time {
	return time.UnixMilli(millis)
}
