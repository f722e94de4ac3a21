package weekly_schedule

import (
	"context"

	"github.com/resilientmind/coaching-platform/internal/service/availability/models"
)

type AvailabilityService interface {
	GetWeeklySchedule(ctx context.Context) (*models.WeeklyScheduleResponse, error)
	UpdateWeeklyRule(ctx context.Context, req *models.UpdateWeeklyRuleRequest) (*models.WeeklyRuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
