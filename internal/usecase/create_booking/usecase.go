package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/resilientmind/coaching-platform/internal/domain"
	bookingRepo "github.com/resilientmind/coaching-platform/internal/infra/storage/booking"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	schedule     ScheduleProvider
	txManager    TransactionManager
	policy       domain.BookingPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	schedule ScheduleProvider,
	txManager TransactionManager,
	policy domain.BookingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		schedule:     schedule,
		txManager:    txManager,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// двойная защита - перепроверка пересечений под FOR UPDATE внутри
// транзакции плюс exclusion констрейнт на уровне БД
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%s, sessionType=%s, date=%s, time=%s",
		req.ClientID, req.SessionType, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем тип сессии: длительность и цену
	spec, ok := domain.SessionTypeByName(string(req.SessionType))
	if !ok {
		uc.logger.Warn("CreateBooking: unknown session type %q", req.SessionType)
		return nil, ErrUnknownSessionType
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// 4. Вычисляем занимаемый интервал слота
	slotEnd, err := req.StartTime.AddMinutes(spec.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateBooking: slot does not fit into the day: %v", err)
		return nil, fmt.Errorf("%w: slot does not fit into the day", ErrOutsideWorkingHours)
	}
	candidate := domain.TimeInterval{Start: req.StartTime, End: slotEnd}

	// Переменная для хранения результата
	var result *domain.Booking

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Валидация даты: не в прошлом и в пределах окна advance booking
		if err := validateDate(req.Date, now, uc.policy.AdvanceBookingDays); err != nil {
			uc.logger.Warn("CreateBooking: date validation failed: %v", err)
			return err
		}

		// 5.2. Проверяем точечную блокировку даты (FOR UPDATE внутри транзакции)
		blocked, err := uc.schedule.IsDateBlocked(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check blocked date: %v", err)
			return fmt.Errorf("%w: failed to check blocked date: %v", ErrInternal, err)
		}
		if blocked {
			uc.logger.Warn("CreateBooking: date %s is blocked", req.Date.Format(domain.DateFormat))
			return ErrDateBlocked
		}

		// 5.3. Получаем правило недельного расписания для дня
		rules, err := uc.schedule.WeeklyRules(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get weekly rules: %v", err)
			return fmt.Errorf("%w: failed to get weekly rules: %v", ErrInternal, err)
		}

		rule := domain.RulesByDay(rules)[req.Date.Weekday()]
		if rule == nil || !rule.IsActive {
			uc.logger.Warn("CreateBooking: day %s is not available", req.Date.Weekday())
			return ErrDayNotAvailable
		}

		// 5.4. Проверяем, что слот помещается в рабочее окно дня
		if err := validateWindow(req.StartTime, slotEnd, rule); err != nil {
			uc.logger.Warn("CreateBooking: window validation failed: %v", err)
			return err
		}

		// 5.5. Проверяем минимальный lead time для сегодняшних бронирований
		if err := validateLeadTime(req.Date, req.StartTime, now, uc.policy.MinLeadTimeMinutes); err != nil {
			uc.logger.Warn("CreateBooking: lead time validation failed: %v", err)
			return err
		}

		// 5.6. Получаем все scheduled бронирования на дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetScheduledByDate(txCtx, req.Date)
		if err != nil {
			// Конкурентная транзакция выиграла гонку за эти строки
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: locked read rejected: %v", err)
				return ErrSlotConflict
			}
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.7. Проверяем пересечение с занятыми интервалами
		if hasOverlap(candidate, domain.BusyIntervals(bookings)) {
			uc.logger.Warn("CreateBooking: slot %s-%s overlaps an existing booking", req.StartTime, slotEnd)
			return ErrSlotConflict
		}

		// 5.8. Создаем бронирование с денормализацией данных сессии
		booking := &domain.Booking{
			ClientID:        req.ClientID,
			ClientName:      req.ClientName,
			ClientEmail:     req.ClientEmail,
			SessionType:     spec.Type,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: spec.DurationMinutes,
			PricePaid:       spec.PriceEUR,
			Status:          domain.StatusScheduled,
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Конкурентная вставка обошла FOR UPDATE: БД отклонила по констрейнту
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: insert rejected by constraint: %v", err)
				return ErrSlotConflict
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Serialization failure двух одновременных транзакций - тоже конфликт слота.
		// Проигравшая транзакция может упасть уже на COMMIT: такая ошибка приходит
		// не из репозитория, поэтому классифицируем pq-код напрямую
		if errors.Is(err, bookingRepo.ErrSlotTaken) || bookingRepo.IsConflictErr(err) {
			uc.logger.Warn("CreateBooking: transaction lost the slot race: %v", err)
			return nil, ErrSlotConflict
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		ClientName:      result.ClientName,
		ClientEmail:     result.ClientEmail,
		SessionType:     result.SessionType,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		PricePaid:       result.PricePaid,
		Status:          string(result.Status),
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
