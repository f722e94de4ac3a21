package list_videos

import (
	"context"

	"github.com/resilientmind/coaching-platform/internal/service/content/models"
)

type ContentService interface {
	ListVideos(ctx context.Context, req *models.ListVideosRequest) (*models.VideoListResponse, error)
	ListAllVideos(ctx context.Context) (*models.VideoListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
