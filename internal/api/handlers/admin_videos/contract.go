package admin_videos

import (
	"context"

	"github.com/resilientmind/coaching-platform/internal/service/content/models"
)

type ContentService interface {
	ListAllVideos(ctx context.Context) (*models.VideoListResponse, error)
	CreateVideo(ctx context.Context, req *models.CreateVideoRequest) (*models.VideoResponse, error)
	DeleteVideo(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
