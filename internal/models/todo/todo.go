package todo

import (
	"time"

	"github.com/google/uuid"
)

// Todo — задача пользователя. Разовая задача использует поля Completed и
// DueDate; повторяющаяся — RecurringType, RecurringDays и CompletedDates.
// CompletedDates хранит полночь (по локальному времени) каждого дня,
// в который повторяющаяся задача была отмечена выполненной.
type Todo struct {
	UUID           uuid.UUID     `json:"uuid" db:"uuid"`
	UserUUID       uuid.UUID     `json:"user_uuid" db:"user_uuid"`
	Title          string        `json:"title" db:"title"`
	Description    string        `json:"description" db:"description"`
	Completed      bool          `json:"completed" db:"completed"`
	DueDate        *time.Time    `json:"due_date,omitempty" db:"due_date"`
	IsRecurring    bool          `json:"is_recurring" db:"is_recurring"`
	RecurringType  RecurringType `json:"recurring_type,omitempty" db:"recurring_type"`
	RecurringDays  []int         `json:"recurring_days,omitempty" db:"recurring_days"`
	CompletedDates []time.Time   `json:"completed_dates" db:"completed_dates"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt      *time.Time    `json:"updated_at,omitempty" db:"updated_at,omitempty"`
}

type RecurringType string

const RecurringNone RecurringType = ""
const RecurringDaily RecurringType = "daily"
const RecurringWeekly RecurringType = "weekly"
