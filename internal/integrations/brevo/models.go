package brevo

// contactRequest тело запроса POST /v3/contacts
type contactRequest struct {
	Email         string            `json:"email"`
	Attributes    map[string]string `json:"attributes,omitempty"`
	ListIDs       []int64           `json:"listIds,omitempty"`
	UpdateEnabled bool              `json:"updateEnabled"`
}

// emailRequest тело запроса POST /v3/smtp/email
type emailRequest struct {
	Sender      emailAddress   `json:"sender"`
	To          []emailAddress `json:"to"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
}

type emailAddress struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// BookingConfirmation данные для письма-подтверждения бронирования
type BookingConfirmation struct {
	Email           string
	Name            string
	SessionName     string
	Date            string // "2026-09-15"
	StartTime       string // "10:00"
	DurationMinutes int
}
