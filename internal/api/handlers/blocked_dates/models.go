package blocked_dates

// AddBlockedDateRequest HTTP модель запроса на блокировку даты
type AddBlockedDateRequest struct {
	Date   string  `json:"date"` // "2026-09-15"
	Reason *string `json:"reason,omitempty"`
}
