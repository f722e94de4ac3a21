package create_checkout_session

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/resilientmind/coaching-platform/internal/api/handlers"
	"github.com/resilientmind/coaching-platform/internal/domain"
	"github.com/resilientmind/coaching-platform/internal/integrations/checkout"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownTier        = "unknown membership tier"
	msgInvalidEmail       = "invalid customer email"
	msgPaymentUnavailable = "payment provider is unavailable"
)

type Handler struct {
	client CheckoutClient
	logger Logger
}

func NewHandler(client CheckoutClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle POST /api/v1/checkout/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /checkout/sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	tier, ok := domain.TierByID(req.TierID)
	if !ok {
		h.logger.Warn("POST /checkout/sessions - Unknown tier: %q", req.TierID)
		handlers.RespondBadRequest(w, msgUnknownTier)
		return
	}

	if !strings.Contains(req.CustomerEmail, "@") {
		h.logger.Warn("POST /checkout/sessions - Invalid email for tier=%s", req.TierID)
		handlers.RespondBadRequest(w, msgInvalidEmail)
		return
	}

	session, err := h.client.CreateSession(r.Context(), &checkout.SessionRequest{
		TierID:        tier.ID,
		TierName:      tier.Name,
		AmountEUR:     tier.EffectivePrice(time.Now()),
		CustomerEmail: req.CustomerEmail,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrNotConfigured):
			h.logger.Warn("POST /checkout/sessions - Payment provider not configured")
			handlers.RespondJSON(w, http.StatusServiceUnavailable, handlers.ErrorResponse{
				Code:    http.StatusServiceUnavailable,
				Message: msgPaymentUnavailable,
			})

		default:
			h.logger.Error("POST /checkout/sessions - Failed to create session for tier=%s: %v", req.TierID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkout/sessions - Session created: id=%s, tier=%s", session.ID, tier.ID)
	handlers.RespondJSON(w, http.StatusCreated, CheckoutResponse{
		SessionID: session.ID,
		URL:       session.URL,
	})
}
