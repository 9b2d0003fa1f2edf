package todo

import "time"

// Чистые функции календарной логики: никаких побочных эффектов,
// вся работа с хранилищем остаётся на уровне сервиса.

// DayStart нормализует момент времени к полуночи его календарного дня
// в локации самого момента.
func DayStart(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// ActiveOn сообщает, попадает ли задача в список на указанный день.
// Разовая задача без дедлайна активна всегда; с дедлайном — только в день
// дедлайна. Ежедневная — каждый день. Еженедельная — по дням недели из
// RecurringDays (0 = воскресенье ... 6 = суббота); пустой набор дней
// означает "никогда".
func (t *Todo) ActiveOn(date time.Time) bool {
	if !t.IsRecurring {
		if t.DueDate == nil {
			return true
		}
		return DayStart(*t.DueDate).Equal(DayStart(date))
	}

	switch t.RecurringType {
	case RecurringDaily:
		return true
	case RecurringWeekly:
		weekday := int(date.Weekday())
		for _, day := range t.RecurringDays {
			if day == weekday {
				return true
			}
		}
		return false
	}

	return false
}

// CompletedOn сообщает, выполнена ли задача в указанный день.
// Для разовой задачи день не важен — смотрим только флаг Completed.
func (t *Todo) CompletedOn(date time.Time) bool {
	if !t.IsRecurring {
		return t.Completed
	}

	day := DayStart(date)
	for _, completed := range t.CompletedDates {
		if DayStart(completed).Equal(day) {
			return true
		}
	}
	return false
}

// Toggle переключает состояние выполнения. Для повторяющейся задачи с
// указанной датой отметка дня добавляется либо снимается: повторный вызов
// с той же датой возвращает набор к исходному состоянию. Во всех остальных
// случаях переворачивается флаг Completed — в том числе для повторяющейся
// задачи без даты: флаг для неё ни на что не влияет, но исходное поведение
// именно такое, и мы его сохраняем.
func (t *Todo) Toggle(date *time.Time) {
	if t.IsRecurring && date != nil {
		day := DayStart(*date)
		for i, completed := range t.CompletedDates {
			if DayStart(completed).Equal(day) {
				t.CompletedDates = append(t.CompletedDates[:i], t.CompletedDates[i+1:]...)
				return
			}
		}
		t.CompletedDates = append(t.CompletedDates, day)
		return
	}

	t.Completed = !t.Completed
}
