package availability

import (
	"context"
	"time"

	"github.com/resilientmind/coaching-platform/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetWeeklyRules(ctx context.Context) ([]*domain.WeeklyAvailabilityRule, error)
	UpsertWeeklyRule(ctx context.Context, rule *domain.WeeklyAvailabilityRule) (*domain.WeeklyAvailabilityRule, error)
	GetBlockedDates(ctx context.Context, from, to time.Time) ([]*domain.BlockedDate, error)
	HasBlockedDate(ctx context.Context, date time.Time) (bool, error)
	AddBlockedDate(ctx context.Context, date time.Time, reason *string) (*domain.BlockedDate, error)
	RemoveBlockedDate(ctx context.Context, date time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
