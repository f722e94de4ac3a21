package weekly_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/resilientmind/coaching-platform/internal/api/handlers"
	"github.com/resilientmind/coaching-platform/internal/api/middleware"
	"github.com/resilientmind/coaching-platform/internal/service/availability"
	"github.com/resilientmind/coaching-platform/internal/service/availability/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDay         = "day must be a number between 0 (Sunday) and 6 (Saturday)"
	msgInvalidRule        = "invalid availability rule"
	msgInvalidTimeRange   = "endTime must be after startTime"
)

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

// HandleGet GET /api/v1/admin/availability/weekly
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetWeeklySchedule(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/availability/weekly - Failed to get schedule: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /api/v1/admin/availability/weekly/{day}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(mux.Vars(r)["day"])
	if err != nil {
		h.logger.Warn("PUT /admin/availability/weekly - Invalid day %q: %v", mux.Vars(r)["day"], err)
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	var req models.UpdateWeeklyRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/availability/weekly - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.DayOfWeek = day

	result, err := h.service.UpdateWeeklyRule(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidTimeRange):
			h.logger.Warn("PUT /admin/availability/weekly - Invalid time range: day=%d, window=%s-%s",
				req.DayOfWeek, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("PUT /admin/availability/weekly - Invalid rule: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRule)

		default:
			h.logger.Error("PUT /admin/availability/weekly - Failed to update rule: day=%d, error=%v", req.DayOfWeek, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	admin, _ := middleware.UserID(r.Context())
	h.logger.Info("PUT /admin/availability/weekly - Rule updated: day=%s, admin=%s", result.DayName, admin)
	handlers.RespondJSON(w, http.StatusOK, result)
}
