package get_admin_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/resilientmind/coaching-platform/internal/api/handlers"
	"github.com/resilientmind/coaching-platform/internal/domain"
	"github.com/resilientmind/coaching-platform/internal/service/bookings"
	"github.com/resilientmind/coaching-platform/internal/service/bookings/models"
)

const (
	msgInvalidStartDate = "invalid startDate, expected YYYY-MM-DD"
	msgInvalidEndDate   = "invalid endDate, expected YYYY-MM-DD"
	msgInvalidStatus    = "invalid booking status"
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

// Handle GET /api/v1/admin/bookings?startDate=...&endDate=...&status=...&includeInactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.GetBookingsRequest{}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid startDate %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidStartDate)
			return
		}
		req.StartDate = &startDate
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid endDate %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidEndDate)
			return
		}
		req.EndDate = &endDate
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if raw := query.Get("includeInactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err == nil {
			req.IncludeInactive = includeInactive
		}
	}

	result, err := h.service.GetAllWithFilter(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput), errors.Is(err, models.ErrInvalidStatus):
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/bookings - Failed to get bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
