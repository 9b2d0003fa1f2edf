package todo_test

import (
	"testing"
	"time"

	"todoTracker/internal/models/todo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 3 марта 2024 — воскресенье, дальше дни недели идут по порядку.
var sunday = time.Date(2024, 3, 3, 0, 0, 0, 0, time.Local)
var monday = time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local)

func ptrTime(t time.Time) *time.Time {
	return &t
}

// TestDayStart тестирует нормализацию к полуночи
func TestDayStart(t *testing.T) {
	moment := time.Date(2024, 3, 5, 17, 42, 13, 999, time.Local)
	day := todo.DayStart(moment)

	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local), day)
	assert.Equal(t, day, todo.DayStart(day))
}

// TestActiveOn_NonRecurring тестирует активность разовых задач
func TestActiveOn_NonRecurring(t *testing.T) {
	tests := []struct {
		name     string
		dueDate  *time.Time
		date     time.Time
		expected bool
	}{
		{
			name:     "no due date - always active",
			dueDate:  nil,
			date:     monday,
			expected: true,
		},
		{
			name:     "due same day, time of day ignored",
			dueDate:  ptrTime(time.Date(2024, 3, 5, 10, 0, 0, 0, time.Local)),
			date:     time.Date(2024, 3, 5, 23, 59, 0, 0, time.Local),
			expected: true,
		},
		{
			name:     "due same day, midnight query",
			dueDate:  ptrTime(time.Date(2024, 3, 5, 10, 0, 0, 0, time.Local)),
			date:     time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local),
			expected: true,
		},
		{
			name:     "due next day - inactive",
			dueDate:  ptrTime(time.Date(2024, 3, 5, 10, 0, 0, 0, time.Local)),
			date:     time.Date(2024, 3, 6, 9, 0, 0, 0, time.Local),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &todo.Todo{Title: "Pay rent", DueDate: tt.dueDate}
			assert.Equal(t, tt.expected, task.ActiveOn(tt.date))
		})
	}
}

// TestActiveOn_Daily тестирует ежедневные задачи
func TestActiveOn_Daily(t *testing.T) {
	task := &todo.Todo{
		Title:         "Stretch",
		IsRecurring:   true,
		RecurringType: todo.RecurringDaily,
	}

	for i := 0; i < 7; i++ {
		assert.True(t, task.ActiveOn(sunday.AddDate(0, 0, i)))
	}
}

// TestActiveOn_Weekly тестирует еженедельные задачи по набору дней
func TestActiveOn_Weekly(t *testing.T) {
	task := &todo.Todo{
		Title:         "Water plants",
		IsRecurring:   true,
		RecurringType: todo.RecurringWeekly,
		RecurringDays: []int{1, 3, 5}, // пн, ср, пт
	}

	assert.True(t, task.ActiveOn(monday))
	assert.False(t, task.ActiveOn(sunday))
	assert.True(t, task.ActiveOn(monday.AddDate(0, 0, 2)))  // среда
	assert.False(t, task.ActiveOn(monday.AddDate(0, 0, 1))) // вторник
}

// TestActiveOn_WeeklyEmptyDays тестирует пустой набор дней: задача никогда не активна
func TestActiveOn_WeeklyEmptyDays(t *testing.T) {
	task := &todo.Todo{
		Title:         "Orphan",
		IsRecurring:   true,
		RecurringType: todo.RecurringWeekly,
	}

	for i := 0; i < 7; i++ {
		assert.False(t, task.ActiveOn(sunday.AddDate(0, 0, i)))
	}
}

// TestActiveOn_RecurringWithoutType тестирует повторяющуюся задачу без типа
func TestActiveOn_RecurringWithoutType(t *testing.T) {
	task := &todo.Todo{Title: "Broken", IsRecurring: true}
	assert.False(t, task.ActiveOn(monday))
}

// TestCompletedOn тестирует проверку выполнения на день
func TestCompletedOn(t *testing.T) {
	t.Run("non-recurring uses flag, date ignored", func(t *testing.T) {
		task := &todo.Todo{Title: "Once", Completed: true}
		assert.True(t, task.CompletedOn(monday))
		assert.True(t, task.CompletedOn(sunday))

		task.Completed = false
		assert.False(t, task.CompletedOn(monday))
	})

	t.Run("recurring checks completed dates set", func(t *testing.T) {
		task := &todo.Todo{
			Title:          "Daily",
			IsRecurring:    true,
			RecurringType:  todo.RecurringDaily,
			CompletedDates: []time.Time{todo.DayStart(monday)},
		}

		assert.True(t, task.CompletedOn(monday))
		assert.True(t, task.CompletedOn(monday.Add(15*time.Hour))) // то же число, другое время
		assert.False(t, task.CompletedOn(sunday))
	})
}

// TestToggle_NonRecurring тестирует переключение разовой задачи
func TestToggle_NonRecurring(t *testing.T) {
	task := &todo.Todo{Title: "Once"}

	task.Toggle(nil)
	assert.True(t, task.Completed)

	// повторное переключение возвращает исходное состояние
	task.Toggle(nil)
	assert.False(t, task.Completed)
}

// TestToggle_RecurringWithDate тестирует идемпотентную пару переключений
func TestToggle_RecurringWithDate(t *testing.T) {
	task := &todo.Todo{
		Title:          "Water plants",
		IsRecurring:    true,
		RecurringType:  todo.RecurringWeekly,
		RecurringDays:  []int{1},
		CompletedDates: []time.Time{},
	}

	date := monday.Add(9 * time.Hour)

	task.Toggle(&date)
	require.Len(t, task.CompletedDates, 1)
	assert.Equal(t, todo.DayStart(monday), task.CompletedDates[0])
	assert.True(t, task.CompletedOn(monday))

	// второй вызов с той же датой снимает отметку
	task.Toggle(&date)
	assert.Empty(t, task.CompletedDates)
	assert.False(t, task.CompletedOn(monday))
}

// TestToggle_RecurringDifferentDates тестирует независимость отметок по дням.
// Набор отметок нигде не усекается и растёт с каждым новым днём — это
// осознанное поведение, компактизации нет.
func TestToggle_RecurringDifferentDates(t *testing.T) {
	task := &todo.Todo{
		Title:          "Stretch",
		IsRecurring:    true,
		RecurringType:  todo.RecurringDaily,
		CompletedDates: []time.Time{},
	}

	day1 := monday
	day2 := monday.AddDate(0, 0, 1)

	task.Toggle(&day1)
	task.Toggle(&day2)

	assert.Len(t, task.CompletedDates, 2)
	assert.True(t, task.CompletedOn(day1))
	assert.True(t, task.CompletedOn(day2))

	task.Toggle(&day1)
	assert.False(t, task.CompletedOn(day1))
	assert.True(t, task.CompletedOn(day2))
}

// TestToggle_RecurringWithoutDate тестирует граничный случай: повторяющаяся
// задача без даты переключает неиспользуемый флаг Completed и не трогает
// отметки по дням — поведение исходной системы сохранено намеренно.
func TestToggle_RecurringWithoutDate(t *testing.T) {
	task := &todo.Todo{
		Title:          "Daily",
		IsRecurring:    true,
		RecurringType:  todo.RecurringDaily,
		CompletedDates: []time.Time{todo.DayStart(monday)},
	}

	task.Toggle(nil)

	assert.True(t, task.Completed)
	assert.Len(t, task.CompletedDates, 1)
	// флаг не влияет на выполнение по дням
	assert.False(t, task.CompletedOn(sunday))
	assert.True(t, task.CompletedOn(monday))
}
