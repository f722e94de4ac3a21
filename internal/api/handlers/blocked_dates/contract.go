package blocked_dates

import (
	"context"
	"time"

	"github.com/resilientmind/coaching-platform/internal/service/availability/models"
)

type AvailabilityService interface {
	ListBlockedDates(ctx context.Context, from, to time.Time) (*models.BlockedDateListResponse, error)
	AddBlockedDate(ctx context.Context, req *models.AddBlockedDateRequest) (*models.BlockedDateResponse, error)
	RemoveBlockedDate(ctx context.Context, date time.Time) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
