package get_bookable_dates

import (
	"context"
	"time"

	"github.com/resilientmind/coaching-platform/internal/domain"
)

// ScheduleProvider интерфейс источника расписания тренера
// Реализуется сервисом доступности, который подставляет шаблон
// по умолчанию, если админ ещё не настроил недельные правила
type ScheduleProvider interface {
	WeeklyRules(ctx context.Context) ([]*domain.WeeklyAvailabilityRule, error)
	BlockedDatesBetween(ctx context.Context, from, to time.Time) ([]*domain.BlockedDate, error)
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
