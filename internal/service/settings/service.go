package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/resilientmind/coaching-platform/internal/domain"
	settingsRepo "github.com/resilientmind/coaching-platform/internal/infra/storage/settings"
	"github.com/resilientmind/coaching-platform/internal/service/settings/models"
)

// Service сервис административных настроек сайта
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// List возвращает все настройки сайта
func (s *Service) List(ctx context.Context) (*models.SettingListResponse, error) {
	s.logger.Info("List: fetching all settings")

	list, err := s.settingsRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettingList(list), nil
}

// Get возвращает настройку по ключу
func (s *Service) Get(ctx context.Context, key string) (*models.SettingResponse, error) {
	s.logger.Info("Get: key=%s", key)

	setting, err := s.settingsRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingNotFound) {
			s.logger.Warn("Get: setting key=%s not found", key)
			return nil, ErrSettingNotFound
		}
		s.logger.Error("Get: repository error for key=%s: %v", key, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSetting(setting), nil
}

// Upsert создает или обновляет настройку по ключу
func (s *Service) Upsert(ctx context.Context, req *models.UpsertSettingRequest) (*models.SettingResponse, error) {
	s.logger.Info("Upsert: key=%s", req.Key)

	if strings.TrimSpace(req.Key) == "" {
		return nil, fmt.Errorf("%w: key is required", ErrInvalidInput)
	}

	setting := &domain.SiteSetting{
		Key:         strings.TrimSpace(req.Key),
		Value:       req.Value,
		Description: req.Description,
	}

	updated, err := s.settingsRepo.Upsert(ctx, setting)
	if err != nil {
		s.logger.Error("Upsert: repository error for key=%s: %v", req.Key, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully saved setting key=%s", updated.Key)
	return models.FromDomainSetting(updated), nil
}

// Delete удаляет настройку по ключу
func (s *Service) Delete(ctx context.Context, key string) error {
	s.logger.Info("Delete: key=%s", key)

	if err := s.settingsRepo.Delete(ctx, key); err != nil {
		if errors.Is(err, settingsRepo.ErrSettingNotFound) {
			s.logger.Warn("Delete: setting key=%s not found", key)
			return ErrSettingNotFound
		}
		s.logger.Error("Delete: repository error for key=%s: %v", key, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted setting key=%s", key)
	return nil
}
