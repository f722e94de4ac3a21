package blocked_dates

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/resilientmind/coaching-platform/internal/api/handlers"
	"github.com/resilientmind/coaching-platform/internal/api/middleware"
	"github.com/resilientmind/coaching-platform/internal/domain"
	"github.com/resilientmind/coaching-platform/internal/service/availability"
	"github.com/resilientmind/coaching-platform/internal/service/availability/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date, expected YYYY-MM-DD"
	msgInvalidRange       = "invalid date range"
	msgAlreadyBlocked     = "date is already blocked"
	msgNotBlocked         = "date is not blocked"
)

// defaultListRangeDays диапазон по умолчанию для GET без параметров
const defaultListRangeDays = 365

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/admin/availability/blocked-dates?from=...&to=...
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	from := time.Now().UTC().Truncate(24 * time.Hour)
	to := from.AddDate(0, 0, defaultListRangeDays)

	if raw := query.Get("from"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /admin/availability/blocked-dates - Invalid from %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		from = parsed
	}
	if raw := query.Get("to"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /admin/availability/blocked-dates - Invalid to %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		to = parsed
	}

	result, err := h.service.ListBlockedDates(r.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /admin/availability/blocked-dates - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /admin/availability/blocked-dates - Failed to list: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleAdd POST /api/v1/admin/availability/blocked-dates
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req AddBlockedDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/availability/blocked-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /admin/availability/blocked-dates - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.AddBlockedDate(r.Context(), &models.AddBlockedDateRequest{
		Date:   date,
		Reason: req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrDateAlreadyBlocked):
			h.logger.Warn("POST /admin/availability/blocked-dates - Already blocked: date=%s", req.Date)
			handlers.RespondConflict(w, msgAlreadyBlocked)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /admin/availability/blocked-dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /admin/availability/blocked-dates - Failed to block date=%s: %v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	admin, _ := middleware.UserID(r.Context())
	h.logger.Info("POST /admin/availability/blocked-dates - Date blocked: date=%s, admin=%s", req.Date, admin)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleRemove DELETE /api/v1/admin/availability/blocked-dates/{date}
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["date"]

	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		h.logger.Warn("DELETE /admin/availability/blocked-dates/{date} - Invalid date %q: %v", raw, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.RemoveBlockedDate(r.Context(), date); err != nil {
		switch {
		case errors.Is(err, availability.ErrBlockedDateNotFound):
			h.logger.Warn("DELETE /admin/availability/blocked-dates/{date} - Not blocked: date=%s", raw)
			handlers.RespondNotFound(w, msgNotBlocked)

		default:
			h.logger.Error("DELETE /admin/availability/blocked-dates/{date} - Failed to unblock date=%s: %v", raw, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	admin, _ := middleware.UserID(r.Context())
	h.logger.Info("DELETE /admin/availability/blocked-dates/{date} - Date unblocked: date=%s, admin=%s", raw, admin)
	handlers.RespondNoContent(w)
}
