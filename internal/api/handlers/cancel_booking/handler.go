package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/resilientmind/coaching-platform/internal/api/handlers"
	"github.com/resilientmind/coaching-platform/internal/api/middleware"
	"github.com/resilientmind/coaching-platform/internal/domain"
	"github.com/resilientmind/coaching-platform/internal/service/bookings"
	"github.com/resilientmind/coaching-platform/internal/service/bookings/models"
)

const (
	msgInvalidBookingID   = "invalid booking id"
	msgInvalidRequestBody = "invalid request body"
	msgBookingNotFound    = "booking not found"
	msgAccessDenied       = "access denied"
	msgCannotCancel       = "booking cannot be cancelled"
	msgReasonTooLong      = "cancellation reason is too long"
	msgUnauthorized       = "authentication required"
)

// CancelRequest HTTP request model
type CancelRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req CancelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		handlers.RespondBadRequest(w, msgReasonTooLong)
		return
	}

	serviceReq := &models.CancelBookingRequest{
		ActorID:            actorID,
		IsAdmin:            middleware.IsAdmin(r.Context()),
		CancellationReason: req.CancellationReason,
	}

	if err := h.service.Cancel(r.Context(), bookingID, serviceReq); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Access denied: booking_id=%d, actor=%s", bookingID, actorID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Cannot cancel: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed to cancel: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled: booking_id=%d, actor=%s", bookingID, actorID)
	handlers.RespondNoContent(w)
}
