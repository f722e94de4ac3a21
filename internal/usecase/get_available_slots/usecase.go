package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/resilientmind/coaching-platform/internal/domain"
)

// UseCase use case для получения доступных слотов на дату
type UseCase struct {
	bookingRepo  BookingRepository
	schedule     ScheduleProvider
	policy       domain.BookingPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	schedule ScheduleProvider,
	policy domain.BookingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		schedule:     schedule,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, sessionType=%s",
		req.Date.Format(domain.DateFormat), req.SessionType)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем тип сессии и длительность слота
	spec, ok := domain.SessionTypeByName(string(req.SessionType))
	if !ok {
		uc.logger.Warn("GetAvailableSlots: unknown session type %q", req.SessionType)
		return nil, ErrUnknownSessionType
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// 4. Валидация даты с учетом окна advance booking
	if err := validateDate(req.Date, now, uc.policy.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	emptyResponse := &Response{
		Date:            req.Date,
		SessionType:     spec.Type,
		DurationMinutes: spec.DurationMinutes,
		Slots:           []Slot{},
	}

	// 5. Проверяем точечную блокировку даты
	blocked, err := uc.schedule.IsDateBlocked(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to check blocked date: %v", err)
		return nil, fmt.Errorf("%w: failed to check blocked date: %v", ErrInternal, err)
	}
	if blocked {
		uc.logger.Info("GetAvailableSlots: date %s is blocked", req.Date.Format(domain.DateFormat))
		return emptyResponse, nil
	}

	// 6. Получаем правило недельного расписания для дня
	rules, err := uc.schedule.WeeklyRules(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get weekly rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get weekly rules: %v", ErrInternal, err)
	}

	rule := domain.RulesByDay(rules)[req.Date.Weekday()]
	if rule == nil || !rule.IsActive {
		uc.logger.Info("GetAvailableSlots: day %s is not available", req.Date.Weekday())
		return emptyResponse, nil
	}

	// 7. Генерируем временные слоты с шагом длительности сессии
	timeSlots, err := generateTimeSlots(rule, spec.DurationMinutes, req.Date, now, uc.policy.MinLeadTimeMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 8. Получаем все scheduled бронирования на эту дату
	bookings, err := uc.bookingRepo.GetScheduledByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 9. Отфильтровываем слоты, пересекающиеся с занятыми интервалами
	slots := filterFreeSlots(timeSlots, spec.DurationMinutes, domain.BusyIntervals(bookings))

	uc.logger.Info("GetAvailableSlots: generated %d slots for date=%s, sessionType=%s",
		len(slots), req.Date.Format(domain.DateFormat), spec.Type)

	return &Response{
		Date:            req.Date,
		SessionType:     spec.Type,
		DurationMinutes: spec.DurationMinutes,
		Slots:           slots,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.SessionType == "" {
		return fmt.Errorf("%w: sessionType is required", ErrInvalidInput)
	}
	return nil
}

// validateDate проверяет, что дата подходит для запроса слотов
func validateDate(requestDate time.Time, now time.Time, advanceBookingDays int) error {
	// Прошедшая дата не ошибка для календаря, но слоты по ней не выдаются:
	// generateTimeSlots вернет пустой список. Здесь отсекаем только
	// даты за пределами окна advance booking.
	if advanceBookingDays == 0 {
		return nil
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, advanceBookingDays)

	requestDateOnly := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, requestDate.Location())

	if requestDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}
