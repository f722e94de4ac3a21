package create_checkout_session

// CheckoutRequest HTTP модель запроса на оформление членства
type CheckoutRequest struct {
	TierID        string `json:"tierId"`
	CustomerEmail string `json:"customerEmail"`
}

// CheckoutResponse URL платёжной страницы
type CheckoutResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}
