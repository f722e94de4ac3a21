package get_bookable_dates

import (
	"errors"
	"net/http"
	"time"

	"github.com/resilientmind/coaching-platform/internal/api/handlers"
	"github.com/resilientmind/coaching-platform/internal/domain"
	getBookableDates "github.com/resilientmind/coaching-platform/internal/usecase/get_bookable_dates"
)

const (
	msgInvalidFrom   = "invalid 'from' date, expected YYYY-MM-DD"
	msgInvalidTo     = "invalid 'to' date, expected YYYY-MM-DD"
	msgInvalidRange  = "invalid date range"
	msgRangeTooLarge = "requested date range is too large"
)

type Handler struct {
	useCase GetBookableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetBookableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/dates?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from, err := time.Parse(domain.DateFormat, r.URL.Query().Get("from"))
	if err != nil {
		h.logger.Warn("GET /availability/dates - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFrom)
		return
	}

	to, err := time.Parse(domain.DateFormat, r.URL.Query().Get("to"))
	if err != nil {
		h.logger.Warn("GET /availability/dates - Invalid to date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTo)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getBookableDates.Request{From: from, To: to})
	if err != nil {
		switch {
		case errors.Is(err, getBookableDates.ErrRangeTooLarge):
			h.logger.Warn("GET /availability/dates - Range too large: from=%s, to=%s",
				from.Format(domain.DateFormat), to.Format(domain.DateFormat))
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, getBookableDates.ErrInvalidInput):
			h.logger.Warn("GET /availability/dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /availability/dates - Failed to resolve dates: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
