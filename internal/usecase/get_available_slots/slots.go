package get_available_slots

import (
	"time"

	"github.com/resilientmind/coaching-platform/internal/domain"
	"github.com/resilientmind/coaching-platform/pkg/types"
)

// generateTimeSlots генерирует список всех возможных временных слотов на день
// Слоты генерируются от начала рабочего окна с шагом, равным длительности сессии
// Затем фильтруются с учетом текущего времени и минимального lead time
func generateTimeSlots(
	rule *domain.WeeklyAvailabilityRule,
	slotDuration int,
	requestDate time.Time,
	now time.Time,
	minLeadTimeMinutes int,
) ([]types.TimeString, error) {
	// Прошедшие даты и неактивные дни не дают слотов
	if isDateInPast(requestDate, now) {
		return []types.TimeString{}, nil
	}
	if rule == nil || !rule.IsActive {
		return []types.TimeString{}, nil
	}

	// Шаг 1: Генерируем ВСЕ слоты от начала окна до конца с фиксированным шагом
	allSlots := make([]types.TimeString, 0)
	currentSlot := rule.StartTime

	for currentSlot.IsBefore(rule.EndTime) {
		// Проверяем, что слот целиком помещается в рабочее окно
		slotEnd, err := currentSlot.AddMinutes(slotDuration)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(rule.EndTime) {
			break
		}

		allSlots = append(allSlots, currentSlot)
		currentSlot, err = currentSlot.AddMinutes(slotDuration)
		if err != nil {
			return nil, err
		}
	}

	// Шаг 2: Если дата НЕ сегодня - возвращаем все слоты
	if !isSameDay(requestDate, now) {
		return allSlots, nil
	}

	// Шаг 3: Для сегодняшней даты фильтруем слоты по lead time
	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(minLeadTimeMinutes)
	if err != nil {
		// now + lead time перевалил за полночь: сегодня уже ничего не забронировать
		return []types.TimeString{}, nil
	}

	availableSlots := make([]types.TimeString, 0)
	for _, slot := range allSlots {
		if !slot.IsBefore(minAllowedTime) {
			availableSlots = append(availableSlots, slot)
		}
	}

	return availableSlots, nil
}

// filterFreeSlots оставляет только слоты, не пересекающиеся ни с одним
// занятым интервалом. Порядок слотов сохраняется.
//
// Пересечение строгое: интервалы, которые только граничат, не конфликтуют.
// - Слот 11:30-12:00, бронирование 11:20-11:40 → ЕСТЬ пересечение (11:30-11:40)
// - Слот 11:30-12:00, бронирование 11:00-11:30 → НЕТ пересечения (граничат)
// - Слот 11:30-12:00, бронирование 12:00-12:30 → НЕТ пересечения (граничат)
func filterFreeSlots(slots []types.TimeString, slotDuration int, busy []domain.TimeInterval) []Slot {
	result := make([]Slot, 0, len(slots))

	for _, slotStart := range slots {
		slotEnd, err := slotStart.AddMinutes(slotDuration)
		if err != nil {
			// Слот не помещается в сутки, пропускаем
			continue
		}

		candidate := domain.TimeInterval{Start: slotStart, End: slotEnd}

		free := true
		for _, interval := range busy {
			if candidate.Overlaps(interval) {
				free = false
				break
			}
		}

		if free {
			result = append(result, Slot{
				StartTime:       slotStart,
				DurationMinutes: slotDuration,
			})
		}
	}

	return result
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
