package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/resilientmind/coaching-platform/internal/api/handlers"
	"github.com/resilientmind/coaching-platform/internal/api/middleware"
	"github.com/resilientmind/coaching-platform/internal/service/bookings"
)

const (
	msgInvalidBookingID = "invalid booking id"
	msgBookingNotFound  = "booking not found"
	msgAccessDenied     = "access denied"
	msgUnauthorized     = "authentication required"
)

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

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id} - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.service.GetByID(r.Context(), bookingID, actorID, middleware.IsAdmin(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{id} - Access denied: booking_id=%d, actor=%s", bookingID, actorID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /bookings/{id} - Failed to get booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
