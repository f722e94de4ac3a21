package content

import (
	"context"

	"github.com/resilientmind/coaching-platform/internal/domain"
)

// VideoRepository интерфейс репозитория видео
type VideoRepository interface {
	GetWithFilter(ctx context.Context, filter domain.VideoFilter) ([]*domain.Video, error)
	Create(ctx context.Context, video *domain.Video) (*domain.Video, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
