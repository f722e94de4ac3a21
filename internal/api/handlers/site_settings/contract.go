package site_settings

import (
	"context"

	"github.com/resilientmind/coaching-platform/internal/service/settings/models"
)

type SettingsService interface {
	List(ctx context.Context) (*models.SettingListResponse, error)
	Upsert(ctx context.Context, req *models.UpsertSettingRequest) (*models.SettingResponse, error)
	Delete(ctx context.Context, key string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
