package update_booking_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/resilientmind/coaching-platform/internal/api/handlers"
	"github.com/resilientmind/coaching-platform/internal/service/bookings"
	"github.com/resilientmind/coaching-platform/internal/service/bookings/models"
)

const (
	msgInvalidBookingID   = "invalid booking id"
	msgInvalidRequestBody = "invalid request body"
	msgBookingNotFound    = "booking not found"
	msgInvalidStatus      = "invalid booking status"
	msgInvalidTransition  = "status transition is not allowed"
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

// Handle PATCH /api/v1/admin/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), bookingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid status %q: booking_id=%d", req.Status, bookingID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Transition rejected: booking_id=%d, status=%s", bookingID, req.Status)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /admin/bookings/{id}/status - Failed to update status: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/{id}/status - Status updated: booking_id=%d, status=%s", bookingID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
