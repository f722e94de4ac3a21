package get_client_bookings

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/resilientmind/coaching-platform/internal/api/handlers"
	"github.com/resilientmind/coaching-platform/internal/api/middleware"
	"github.com/resilientmind/coaching-platform/internal/service/bookings"
	"github.com/resilientmind/coaching-platform/internal/service/bookings/models"
)

const (
	msgInvalidClientID = "invalid client id"
	msgInvalidStatus   = "invalid booking status"
	msgAccessDenied    = "access denied"
	msgUnauthorized    = "authentication required"
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

// Handle GET /api/v1/clients/{clientId}/bookings?status=scheduled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	clientID, err := uuid.Parse(mux.Vars(r)["clientId"])
	if err != nil {
		h.logger.Warn("GET /clients/{id}/bookings - Invalid client id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	req := &models.GetClientBookingsRequest{
		ClientID: clientID,
		ActorID:  actorID,
		IsAdmin:  middleware.IsAdmin(r.Context()),
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetClientBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /clients/{id}/bookings - Access denied: client=%s, actor=%s", clientID, actorID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /clients/{id}/bookings - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /clients/{id}/bookings - Failed to get bookings: client=%s, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
