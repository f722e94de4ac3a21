package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/resilientmind/coaching-platform/internal/domain"
	createBooking "github.com/resilientmind/coaching-platform/internal/usecase/create_booking"
	"github.com/resilientmind/coaching-platform/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientName  string  `json:"clientName"`
	ClientEmail string  `json:"clientEmail"`
	SessionType string  `json:"sessionType"`
	BookingDate string  `json:"bookingDate"` // "2026-09-15"
	StartTime   string  `json:"startTime"`   // "10:00"
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	ClientID        string  `json:"clientId"`
	ClientName      string  `json:"clientName"`
	ClientEmail     string  `json:"clientEmail"`
	SessionType     string  `json:"sessionType"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	PricePaid       float64 `json:"pricePaid"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(clientID uuid.UUID) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ClientID:    clientID,
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
		SessionType: domain.SessionType(r.SessionType),
		Date:        bookingDate,
		StartTime:   startTime,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID.String(),
		ClientName:      resp.ClientName,
		ClientEmail:     resp.ClientEmail,
		SessionType:     string(resp.SessionType),
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		PricePaid:       resp.PricePaid,
		Status:          resp.Status,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
