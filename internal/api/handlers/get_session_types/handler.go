package get_session_types

import (
	"net/http"

	"github.com/resilientmind/coaching-platform/internal/api/handlers"
	"github.com/resilientmind/coaching-platform/internal/domain"
)

// SessionTypeResponse один тип сессии из каталога
type SessionTypeResponse struct {
	Type            string  `json:"type"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	PriceEUR        float64 `json:"priceEur"`
}

// SessionTypesResponse каталог типов сессий
type SessionTypesResponse struct {
	SessionTypes []SessionTypeResponse `json:"sessionTypes"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /api/v1/session-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	specs := domain.SessionTypes()

	resp := SessionTypesResponse{
		SessionTypes: make([]SessionTypeResponse, 0, len(specs)),
	}
	for _, spec := range specs {
		resp.SessionTypes = append(resp.SessionTypes, SessionTypeResponse{
			Type:            string(spec.Type),
			Name:            spec.Name,
			DurationMinutes: spec.DurationMinutes,
			PriceEUR:        spec.PriceEUR,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
