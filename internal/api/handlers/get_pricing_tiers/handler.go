package get_pricing_tiers

import (
	"net/http"
	"time"

	"github.com/resilientmind/coaching-platform/internal/api/handlers"
	"github.com/resilientmind/coaching-platform/internal/domain"
)

// TierResponse один тариф членства
type TierResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Price          float64  `json:"price"` // Цена с учетом early-bird периода
	RegularPrice   float64  `json:"regularPrice"`
	Interval       string   `json:"interval"`
	MembershipType string   `json:"membershipType"`
	Description    string   `json:"description"`
	Features       []string `json:"features"`
	Highlighted    bool     `json:"highlighted"`
	Badge          *string  `json:"badge,omitempty"`
}

// TiersResponse витрина тарифов
type TiersResponse struct {
	Tiers []TierResponse `json:"tiers"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /api/v1/pricing/tiers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	tiers := domain.VisibleTiers()

	resp := TiersResponse{
		Tiers: make([]TierResponse, 0, len(tiers)),
	}
	for _, tier := range tiers {
		resp.Tiers = append(resp.Tiers, TierResponse{
			ID:             tier.ID,
			Name:           tier.Name,
			Price:          tier.EffectivePrice(now),
			RegularPrice:   tier.RegularPrice,
			Interval:       tier.Interval,
			MembershipType: string(tier.MembershipType),
			Description:    tier.Description,
			Features:       tier.Features,
			Highlighted:    tier.Highlighted,
			Badge:          tier.Badge,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
