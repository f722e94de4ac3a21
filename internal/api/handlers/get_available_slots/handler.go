package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/resilientmind/coaching-platform/internal/api/handlers"
	"github.com/resilientmind/coaching-platform/internal/domain"
	getAvailableSlots "github.com/resilientmind/coaching-platform/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate        = "invalid 'date', expected YYYY-MM-DD"
	msgUnknownSessionType = "unknown session type"
	msgDateTooFar         = "date is too far in the future"
	msgInvalidInput       = "invalid request parameters"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/slots?date=YYYY-MM-DD&sessionType=single_session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /availability/slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	sessionType := domain.SessionType(r.URL.Query().Get("sessionType"))

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		Date:        date,
		SessionType: sessionType,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrUnknownSessionType):
			h.logger.Warn("GET /availability/slots - Unknown session type: %s", sessionType)
			handlers.RespondBadRequest(w, msgUnknownSessionType)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /availability/slots - Date too far: date=%s", date.Format(domain.DateFormat))
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /availability/slots - Failed to get slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
