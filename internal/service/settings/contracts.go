package settings

import (
	"context"

	"github.com/resilientmind/coaching-platform/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек сайта
type SettingsRepository interface {
	GetAll(ctx context.Context) ([]*domain.SiteSetting, error)
	GetByKey(ctx context.Context, key string) (*domain.SiteSetting, error)
	Upsert(ctx context.Context, setting *domain.SiteSetting) (*domain.SiteSetting, error)
	Delete(ctx context.Context, key string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
