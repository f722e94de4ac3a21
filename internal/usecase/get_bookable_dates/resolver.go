package get_bookable_dates

import (
	"time"

	"github.com/resilientmind/coaching-platform/internal/domain"
)

// isDateBookable проверяет, доступна ли дата для бронирования.
// Чистая функция над заранее загруженным расписанием: дата доступна, когда
// она не в прошлом, попадает в окно advance booking, для её дня недели
// есть активное правило и дата не заблокирована админом.
//
// Порядок проверок фиксирован от дешёвых к дорогим, но результат
// от порядка не зависит: все условия должны выполниться одновременно.
func isDateBookable(
	date time.Time,
	now time.Time,
	rulesByDay map[time.Weekday]*domain.WeeklyAvailabilityRule,
	blocked map[string]struct{},
	policy domain.BookingPolicy,
) bool {
	// Прошедшие даты недоступны, сегодняшняя - ещё доступна
	if isDateInPast(date, now) {
		return false
	}

	// Окно advance booking: 0 = без ограничения
	if policy.AdvanceBookingDays > 0 {
		maxDate := dateOnly(now).AddDate(0, 0, policy.AdvanceBookingDays)
		if dateOnly(date).After(maxDate) {
			return false
		}
	}

	// День недели должен иметь активное правило
	rule, ok := rulesByDay[date.Weekday()]
	if !ok || !rule.IsActive {
		return false
	}

	// Точечная блокировка даты перекрывает активное правило
	if _, isBlocked := blocked[date.Format(domain.DateFormat)]; isBlocked {
		return false
	}

	return true
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	return dateOnly(date).Before(dateOnly(now))
}

// dateOnly обнуляет время, оставляя только дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
