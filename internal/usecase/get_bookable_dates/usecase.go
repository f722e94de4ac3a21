package get_bookable_dates

import (
	"context"
	"fmt"

	"github.com/resilientmind/coaching-platform/internal/domain"
)

// UseCase use case для получения календарной доступности по диапазону дат
type UseCase struct {
	schedule     ScheduleProvider
	policy       domain.BookingPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(schedule ScheduleProvider, policy domain.BookingPolicy, logger Logger) *UseCase {
	return &UseCase{
		schedule:     schedule,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBookableDates: from=%s, to=%s",
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.policy); err != nil {
		uc.logger.Warn("GetBookableDates: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Загружаем недельные правила
	rules, err := uc.schedule.WeeklyRules(ctx)
	if err != nil {
		uc.logger.Error("GetBookableDates: failed to get weekly rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get weekly rules: %v", ErrInternal, err)
	}

	// 4. Загружаем заблокированные даты диапазона
	blockedDates, err := uc.schedule.BlockedDatesBetween(ctx, req.From, req.To)
	if err != nil {
		uc.logger.Error("GetBookableDates: failed to get blocked dates: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked dates: %v", ErrInternal, err)
	}

	rulesByDay := domain.RulesByDay(rules)
	blocked := domain.BlockedSet(blockedDates)

	// 5. Резолвим доступность для каждой даты диапазона
	dates := make([]DateAvailability, 0)
	for date := dateOnly(req.From); !date.After(dateOnly(req.To)); date = date.AddDate(0, 0, 1) {
		dates = append(dates, DateAvailability{
			Date:     date,
			Bookable: isDateBookable(date, now, rulesByDay, blocked, uc.policy),
		})
	}

	uc.logger.Info("GetBookableDates: resolved %d dates, from=%s, to=%s",
		len(dates), req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	return &Response{
		From:  req.From,
		To:    req.To,
		Dates: dates,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, policy domain.BookingPolicy) error {
	if req.From.IsZero() {
		return fmt.Errorf("%w: from date is required", ErrInvalidInput)
	}
	if req.To.IsZero() {
		return fmt.Errorf("%w: to date is required", ErrInvalidInput)
	}
	if req.To.Before(req.From) {
		return fmt.Errorf("%w: to date must not be before from date", ErrInvalidInput)
	}

	rangeDays := int(dateOnly(req.To).Sub(dateOnly(req.From)).Hours()/24) + 1
	if policy.CalendarMaxRangeDays > 0 && rangeDays > policy.CalendarMaxRangeDays {
		return fmt.Errorf("%w: at most %d days per request", ErrRangeTooLarge, policy.CalendarMaxRangeDays)
	}

	return nil
}
