package create_booking

import (
	"errors"
	"net/http"

	"github.com/resilientmind/coaching-platform/internal/api/handlers"
	"github.com/resilientmind/coaching-platform/internal/api/middleware"
	"github.com/resilientmind/coaching-platform/internal/domain"
	"github.com/resilientmind/coaching-platform/internal/integrations/brevo"
	createBooking "github.com/resilientmind/coaching-platform/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidDateOrTime   = "invalid booking date or start time, expected YYYY-MM-DD and HH:MM"
	msgSlotConflict        = "the selected slot is no longer available"
	msgUnknownSessionType  = "unknown session type"
	msgDateInPast          = "booking date is in the past"
	msgDateTooFar          = "booking date is too far in the future"
	msgDayNotAvailable     = "this day is not available for booking"
	msgDateBlocked         = "this date is not available for booking"
	msgOutsideWorkingHours = "the slot is outside working hours"
	msgTooLateToBook       = "it is too late to book this slot"
	msgUnauthorized        = "authentication required"
)

type Handler struct {
	useCase  CreateBookingUseCase
	notifier Notifier
	logger   Logger
}

func NewHandler(useCase CreateBookingUseCase, notifier Notifier, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		notifier: notifier,
		logger:   logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Конфликт слота и нарушения политики бронирования отдаются
		// разными статусами: 409 для гонки за слот, 422 для правил расписания
		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: client=%s, date=%s, time=%s",
				clientID, req.BookingDate, req.StartTime)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createBooking.ErrUnknownSessionType):
			h.logger.Warn("POST /bookings - Unknown session type: %s", req.SessionType)
			handlers.RespondBadRequest(w, msgUnknownSessionType)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Date in past: client=%s, date=%s", clientID, req.BookingDate)
			handlers.RespondUnprocessable(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far: client=%s, date=%s", clientID, req.BookingDate)
			handlers.RespondUnprocessable(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrDayNotAvailable):
			h.logger.Warn("POST /bookings - Day not available: client=%s, date=%s", clientID, req.BookingDate)
			handlers.RespondUnprocessable(w, msgDayNotAvailable)

		case errors.Is(err, createBooking.ErrDateBlocked):
			h.logger.Warn("POST /bookings - Date blocked: client=%s, date=%s", clientID, req.BookingDate)
			handlers.RespondUnprocessable(w, msgDateBlocked)

		case errors.Is(err, createBooking.ErrOutsideWorkingHours):
			h.logger.Warn("POST /bookings - Outside working hours: client=%s, time=%s", clientID, req.StartTime)
			handlers.RespondUnprocessable(w, msgOutsideWorkingHours)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: client=%s, time=%s", clientID, req.StartTime)
			handlers.RespondUnprocessable(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: client=%s, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Письмо-подтверждение и синхронизация контакта после успешной записи.
	// Недоступность Brevo не откатывает бронирование.
	h.sendConfirmation(r, result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, client=%s", result.ID, clientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) sendConfirmation(r *http.Request, result *createBooking.Response) {
	sessionName := string(result.SessionType)
	if spec, ok := domain.SessionTypeByName(sessionName); ok {
		sessionName = spec.Name
	}

	confirmation := &brevo.BookingConfirmation{
		Email:           result.ClientEmail,
		Name:            result.ClientName,
		SessionName:     sessionName,
		Date:            result.BookingDate.Format(domain.DateFormat),
		StartTime:       result.StartTime.String(),
		DurationMinutes: result.DurationMinutes,
	}

	if err := h.notifier.SendBookingConfirmationWithGracefulDegradation(r.Context(), confirmation); err != nil {
		h.logger.Warn("POST /bookings - Confirmation email skipped for booking_id=%d: %v", result.ID, err)
	}
	if err := h.notifier.SyncContactWithGracefulDegradation(r.Context(), result.ClientEmail, result.ClientName); err != nil {
		h.logger.Warn("POST /bookings - Contact sync skipped for booking_id=%d: %v", result.ID, err)
	}
}
