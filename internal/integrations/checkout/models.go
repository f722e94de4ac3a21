package checkout

// SessionRequest параметры платёжной сессии
type SessionRequest struct {
	TierID        string  // ID тарифа членства
	TierName      string  // Название тарифа для страницы оплаты
	AmountEUR     float64 // Сумма к оплате
	CustomerEmail string  // Email плательщика
}

// Session созданная платёжная сессия
type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"` // URL страницы оплаты для редиректа
}

// sessionPayload тело запроса к платёжному провайдеру
type sessionPayload struct {
	Reference     string `json:"reference"`
	Description   string `json:"description"`
	AmountCents   int64  `json:"amount_cents"`
	Currency      string `json:"currency"`
	CustomerEmail string `json:"customer_email"`
	SuccessURL    string `json:"success_url"`
	CancelURL     string `json:"cancel_url"`
}
