package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/resilientmind/coaching-platform/internal/domain"
	"github.com/resilientmind/coaching-platform/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID == uuid.Nil {
		return fmt.Errorf("%w: clientId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}

	if !strings.Contains(req.ClientEmail, "@") {
		return fmt.Errorf("%w: clientEmail must be a valid email", ErrInvalidInput)
	}

	if req.SessionType == "" {
		return fmt.Errorf("%w: sessionType is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime must be in HH:MM format", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом и в пределах окна advance booking
func validateDate(requestDate time.Time, now time.Time, advanceBookingDays int) error {
	if isDateInPast(requestDate, now) {
		return ErrDateInPast
	}

	// Если advanceBookingDays = 0, нет ограничений на дату
	if advanceBookingDays == 0 {
		return nil
	}

	maxDate := dateOnly(now).AddDate(0, 0, advanceBookingDays)
	if dateOnly(requestDate).After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// validateWindow проверяет, что слот целиком помещается в рабочее окно дня
func validateWindow(start, end types.TimeString, rule *domain.WeeklyAvailabilityRule) error {
	if start.IsBefore(rule.StartTime) || end.IsAfter(rule.EndTime) {
		return fmt.Errorf("%w: slot %s-%s is outside window %s-%s",
			ErrOutsideWorkingHours, start, end, rule.StartTime, rule.EndTime)
	}
	return nil
}

// validateLeadTime проверяет минимальный интервал до начала слота.
// Ограничение действует только для бронирований на сегодняшний день.
func validateLeadTime(requestDate time.Time, start types.TimeString, now time.Time, minLeadTimeMinutes int) error {
	if !isSameDay(requestDate, now) {
		return nil
	}

	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(minLeadTimeMinutes)
	if err != nil {
		// now + lead time за полночь: сегодня бронировать уже поздно
		return ErrTooLateToBook
	}

	if start.IsBefore(minAllowedTime) {
		return fmt.Errorf("%w: slot must start at least %d minutes from now", ErrTooLateToBook, minLeadTimeMinutes)
	}

	return nil
}

// hasOverlap проверяет пересечение кандидата с занятыми интервалами.
// Граничащие интервалы (конец одного равен началу другого) не конфликтуют.
func hasOverlap(candidate domain.TimeInterval, busy []domain.TimeInterval) bool {
	for _, interval := range busy {
		if candidate.Overlaps(interval) {
			return true
		}
	}
	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	return dateOnly(date).Before(dateOnly(now))
}

// dateOnly обнуляет время, оставляя только дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
