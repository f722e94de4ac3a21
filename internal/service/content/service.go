package content

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/resilientmind/coaching-platform/internal/domain"
	videoRepo "github.com/resilientmind/coaching-platform/internal/infra/storage/videos"
	"github.com/resilientmind/coaching-platform/internal/service/content/models"
)

// Service сервис видео-библиотеки программы
type Service struct {
	videoRepo VideoRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса контента
func NewService(videoRepo VideoRepository, logger Logger) *Service {
	return &Service{
		videoRepo: videoRepo,
		logger:    logger,
	}
}

// ListVideos возвращает видео, доступные по тарифу клиента.
// Интро-видео включаются всегда, остальные - по модулям тарифа.
func (s *Service) ListVideos(ctx context.Context, req *models.ListVideosRequest) (*models.VideoListResponse, error) {
	s.logger.Info("ListVideos: membership=%s", req.Membership)

	membership := domain.MembershipType(req.Membership)
	if req.Membership != "" && !domain.ValidMembership(req.Membership) {
		s.logger.Warn("ListVideos: invalid membership=%s", req.Membership)
		return nil, fmt.Errorf("%w: unknown membership", ErrInvalidInput)
	}

	filter := domain.VideoFilter{
		Modules:       domain.ModulesForMembership(membership),
		IncludeIntros: true,
	}

	videos, err := s.videoRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListVideos: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListVideos - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListVideos: fetched %d videos for membership=%s", len(videos), req.Membership)
	return models.FromDomainVideoList(videos), nil
}

// ListAllVideos возвращает все видео библиотеки для админки
func (s *Service) ListAllVideos(ctx context.Context) (*models.VideoListResponse, error) {
	s.logger.Info("ListAllVideos: fetching full library")

	videos, err := s.videoRepo.GetWithFilter(ctx, domain.VideoFilter{})
	if err != nil {
		s.logger.Error("ListAllVideos: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAllVideos - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVideoList(videos), nil
}

// CreateVideo добавляет видео в библиотеку
func (s *Service) CreateVideo(ctx context.Context, req *models.CreateVideoRequest) (*models.VideoResponse, error) {
	s.logger.Info("CreateVideo: title=%q, module=%s, week=%d", req.Title, req.Module, req.WeekNumber)

	if err := validateCreateVideo(req); err != nil {
		s.logger.Warn("CreateVideo: validation failed: %v", err)
		return nil, err
	}

	video := &domain.Video{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Module:      domain.VideoModule(req.Module),
		WeekNumber:  req.WeekNumber,
		VideoURL:    req.VideoURL,
		IsIntro:     req.IsIntro,
	}

	created, err := s.videoRepo.Create(ctx, video)
	if err != nil {
		s.logger.Error("CreateVideo: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateVideo - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateVideo: successfully created video id=%d", created.ID)
	return models.FromDomainVideo(created), nil
}

// DeleteVideo удаляет видео из библиотеки
func (s *Service) DeleteVideo(ctx context.Context, id int64) error {
	s.logger.Info("DeleteVideo: id=%d", id)

	if err := s.videoRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, videoRepo.ErrVideoNotFound) {
			s.logger.Warn("DeleteVideo: video id=%d not found", id)
			return ErrVideoNotFound
		}
		s.logger.Error("DeleteVideo: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteVideo - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteVideo: successfully deleted video id=%d", id)
	return nil
}

// validateCreateVideo валидирует запрос на добавление видео
func validateCreateVideo(req *models.CreateVideoRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if !domain.ValidModule(req.Module) {
		return fmt.Errorf("%w: module must be A, B or C", ErrInvalidInput)
	}
	if req.WeekNumber < 1 || req.WeekNumber > 5 {
		return fmt.Errorf("%w: weekNumber must be between 1 and 5", ErrInvalidInput)
	}
	if strings.TrimSpace(req.VideoURL) == "" {
		return fmt.Errorf("%w: videoUrl is required", ErrInvalidInput)
	}
	return nil
}
