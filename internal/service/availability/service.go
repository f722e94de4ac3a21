package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/resilientmind/coaching-platform/internal/domain"
	scheduleRepo "github.com/resilientmind/coaching-platform/internal/infra/storage/schedule"
	"github.com/resilientmind/coaching-platform/internal/service/availability/models"
	"github.com/resilientmind/coaching-platform/pkg/types"
)

// Service сервис расписания тренера: недельные правила и заблокированные даты.
// Одновременно служит источником расписания для booking use case'ов.
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// WeeklyRules возвращает недельные правила доступности.
// Если админ ещё не настроил ни одного правила, подставляется шаблон
// по умолчанию: будни 09:00-17:00, выходные неактивны. Резолверы ниже
// по стеку всегда видят полный набор правил.
func (s *Service) WeeklyRules(ctx context.Context) ([]*domain.WeeklyAvailabilityRule, error) {
	rules, err := s.scheduleRepo.GetWeeklyRules(ctx)
	if err != nil {
		s.logger.Error("WeeklyRules: repository error: %v", err)
		return nil, fmt.Errorf("%w: WeeklyRules - repository error: %v", ErrInternal, err)
	}

	if len(rules) == 0 {
		s.logger.Info("WeeklyRules: no rules configured, using default weekday template")
		return domain.DefaultWeeklyRules(), nil
	}

	return rules, nil
}

// BlockedDatesBetween возвращает заблокированные даты диапазона [from, to]
func (s *Service) BlockedDatesBetween(ctx context.Context, from, to time.Time) ([]*domain.BlockedDate, error) {
	blocked, err := s.scheduleRepo.GetBlockedDates(ctx, from, to)
	if err != nil {
		s.logger.Error("BlockedDatesBetween: repository error: %v", err)
		return nil, fmt.Errorf("%w: BlockedDatesBetween - repository error: %v", ErrInternal, err)
	}
	return blocked, nil
}

// IsDateBlocked проверяет точечную блокировку даты
func (s *Service) IsDateBlocked(ctx context.Context, date time.Time) (bool, error) {
	blocked, err := s.scheduleRepo.HasBlockedDate(ctx, date)
	if err != nil {
		s.logger.Error("IsDateBlocked: repository error: %v", err)
		return false, fmt.Errorf("%w: IsDateBlocked - repository error: %v", ErrInternal, err)
	}
	return blocked, nil
}

// GetWeeklySchedule возвращает недельное расписание для админки
func (s *Service) GetWeeklySchedule(ctx context.Context) (*models.WeeklyScheduleResponse, error) {
	s.logger.Info("GetWeeklySchedule: fetching weekly schedule")

	rules, err := s.WeeklyRules(ctx)
	if err != nil {
		return nil, err
	}

	return models.FromDomainRules(rules), nil
}

// UpdateWeeklyRule создает или обновляет правило одного дня недели
func (s *Service) UpdateWeeklyRule(ctx context.Context, req *models.UpdateWeeklyRuleRequest) (*models.WeeklyRuleResponse, error) {
	s.logger.Info("UpdateWeeklyRule: day=%d, window=%s-%s, active=%t",
		req.DayOfWeek, req.StartTime, req.EndTime, req.IsActive)

	rule, err := s.validateWeeklyRule(req)
	if err != nil {
		s.logger.Warn("UpdateWeeklyRule: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.scheduleRepo.UpsertWeeklyRule(ctx, rule)
	if err != nil {
		s.logger.Error("UpdateWeeklyRule: repository error for day=%d: %v", req.DayOfWeek, err)
		return nil, fmt.Errorf("%w: UpdateWeeklyRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWeeklyRule: successfully updated rule for day=%s", updated.DayOfWeek)
	resp := models.FromDomainRule(updated)
	return &resp, nil
}

// ListBlockedDates возвращает заблокированные даты диапазона для админки
func (s *Service) ListBlockedDates(ctx context.Context, from, to time.Time) (*models.BlockedDateListResponse, error) {
	s.logger.Info("ListBlockedDates: from=%s, to=%s",
		from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	if to.Before(from) {
		return nil, fmt.Errorf("%w: to date must not be before from date", ErrInvalidInput)
	}

	blocked, err := s.BlockedDatesBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBlockedDates(blocked), nil
}

// AddBlockedDate блокирует дату для бронирования
// Существующие бронирования на эту дату не отменяются
func (s *Service) AddBlockedDate(ctx context.Context, req *models.AddBlockedDateRequest) (*models.BlockedDateResponse, error) {
	s.logger.Info("AddBlockedDate: date=%s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Reason != nil && len(*req.Reason) > domain.MaxBlockedReasonLength {
		return nil, fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxBlockedReasonLength)
	}

	blocked, err := s.scheduleRepo.AddBlockedDate(ctx, req.Date, req.Reason)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrDateAlreadyBlocked) {
			s.logger.Warn("AddBlockedDate: date %s is already blocked", req.Date.Format(domain.DateFormat))
			return nil, ErrDateAlreadyBlocked
		}
		s.logger.Error("AddBlockedDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddBlockedDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddBlockedDate: successfully blocked date=%s", req.Date.Format(domain.DateFormat))
	resp := models.FromDomainBlockedDate(blocked)
	return &resp, nil
}

// RemoveBlockedDate снимает блокировку с даты
func (s *Service) RemoveBlockedDate(ctx context.Context, date time.Time) error {
	s.logger.Info("RemoveBlockedDate: date=%s", date.Format(domain.DateFormat))

	if err := s.scheduleRepo.RemoveBlockedDate(ctx, date); err != nil {
		if errors.Is(err, scheduleRepo.ErrBlockedDateNotFound) {
			s.logger.Warn("RemoveBlockedDate: date %s is not blocked", date.Format(domain.DateFormat))
			return ErrBlockedDateNotFound
		}
		s.logger.Error("RemoveBlockedDate: repository error: %v", err)
		return fmt.Errorf("%w: RemoveBlockedDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveBlockedDate: successfully unblocked date=%s", date.Format(domain.DateFormat))
	return nil
}

// validateWeeklyRule валидирует и конвертирует запрос в domain правило
func (s *Service) validateWeeklyRule(req *models.UpdateWeeklyRuleRequest) (*domain.WeeklyAvailabilityRule, error) {
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return nil, fmt.Errorf("%w: dayOfWeek must be between 0 and 6", ErrInvalidInput)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime must be in HH:MM format", ErrInvalidInput)
	}

	endTime, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: endTime must be in HH:MM format", ErrInvalidInput)
	}

	if !startTime.IsBefore(endTime) {
		return nil, fmt.Errorf("%w: endTime must be after startTime", ErrInvalidTimeRange)
	}

	return &domain.WeeklyAvailabilityRule{
		DayOfWeek: time.Weekday(req.DayOfWeek),
		StartTime: startTime,
		EndTime:   endTime,
		IsActive:  req.IsActive,
	}, nil
}
