package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/resilientmind/coaching-platform/internal/domain"
	bookingRepo "github.com/resilientmind/coaching-platform/internal/infra/storage/booking"
	"github.com/resilientmind/coaching-platform/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Клиент видит только своё бронирование, админ - любое
func (s *Service) GetByID(ctx context.Context, id int64, actorID uuid.UUID, isAdmin bool) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for actor=%s", id, actorID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !isAdmin && booking.ClientID != actorID {
		s.logger.Warn("GetByID: access denied for actor=%s to booking id=%d", actorID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetClientBookings получает историю бронирований клиента
// Опционально фильтрует по статусу. Клиент видит только свою историю.
func (s *Service) GetClientBookings(ctx context.Context, req *models.GetClientBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetClientBookings: fetching bookings for client=%s, status=%v", req.ClientID, req.Status)

	if !req.IsAdmin && req.ClientID != req.ActorID {
		s.logger.Warn("GetClientBookings: access denied for actor=%s to client=%s", req.ActorID, req.ClientID)
		return nil, ErrAccessDenied
	}

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientBookings: invalid status=%s for client=%s", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByClientID(ctx, req.ClientID, domainStatus)
	if err != nil {
		s.logger.Error("GetClientBookings: repository error for client=%s: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientBookings: successfully fetched %d bookings for client=%s", len(bookings), req.ClientID)
	return models.FromDomainBookingList(bookings), nil
}

// GetAllWithFilter получает бронирования с гибкой фильтрацией
// Доступно только админу, права проверяет API слой
//
// Примеры использования:
// - Активные бронирования: GetAllWithFilter(ctx, &GetBookingsRequest{})
// - Бронирования на дату: StartDate и EndDate указывают на одну дату
// - Только завершенные: Status = "completed"
// - Включая отменённые: IncludeInactive = true
func (s *Service) GetAllWithFilter(ctx context.Context, req *models.GetBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := "GetAllWithFilter: fetching bookings"
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s",
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetAllWithFilter: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetAllWithFilter: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAllWithFilter - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAllWithFilter: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Клиент может отменить только своё бронирование, админ - любое
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by actor=%s", bookingID, req.ActorID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if !req.IsAdmin && booking.ClientID != req.ActorID {
		s.logger.Warn("Cancel: access denied for actor=%s to cancel booking id=%d", req.ActorID, bookingID)
		return ErrAccessDenied
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// UpdateStatus обновляет статус бронирования
// Доступно только админу, права проверяет API слой.
// Повторное применение текущего статуса - no-op без записи в БД.
// Изменение терминального бронирования на другой статус запрещено.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, ErrInvalidStatus
	}

	// Идемпотентность: повторное применение текущего статуса не ошибка
	if booking.Status == newStatus {
		s.logger.Info("UpdateStatus: booking id=%d already has status=%s, no-op", bookingID, newStatus)
		return models.FromDomainBooking(booking), nil
	}

	if !booking.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: invalid transition %s -> %s for booking id=%d",
			booking.Status, newStatus, bookingID)
		return nil, ErrInvalidTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking.Status = newStatus

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return models.FromDomainBooking(booking), nil
}
