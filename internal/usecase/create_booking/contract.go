package create_booking

import (
	"context"
	"time"

	"github.com/resilientmind/coaching-platform/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetScheduledByDate получает все scheduled бронирования на дату
	// Внутри транзакции блокирует строки через FOR UPDATE
	GetScheduledByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	// Create создает новое бронирование
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ScheduleProvider интерфейс источника расписания тренера
type ScheduleProvider interface {
	WeeklyRules(ctx context.Context) ([]*domain.WeeklyAvailabilityRule, error)
	IsDateBlocked(ctx context.Context, date time.Time) (bool, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	// DoSerializable выполняет функцию в сериализуемой транзакции
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
