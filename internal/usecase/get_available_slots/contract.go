package get_available_slots

import (
	"context"
	"time"

	"github.com/resilientmind/coaching-platform/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetScheduledByDate получает все scheduled бронирования на дату,
	// отсортированные по времени начала
	GetScheduledByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// ScheduleProvider интерфейс источника расписания тренера
type ScheduleProvider interface {
	WeeklyRules(ctx context.Context) ([]*domain.WeeklyAvailabilityRule, error)
	IsDateBlocked(ctx context.Context, date time.Time) (bool, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
