package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/resilientmind/coaching-platform/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	ActorID            uuid.UUID `json:"-"`
	IsAdmin            bool      `json:"-"`
	CancellationReason string    `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования (админ)
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GetClientBookingsRequest запрос на получение бронирований клиента
type GetClientBookingsRequest struct {
	ClientID uuid.UUID `json:"clientId"`
	ActorID  uuid.UUID `json:"-"`
	IsAdmin  bool      `json:"-"`
	Status   *string   `json:"status,omitempty"`
}

// GetBookingsRequest запрос админского списка бронирований с фильтрацией
type GetBookingsRequest struct {
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить терминальные бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64     `json:"id"`
	ClientID        uuid.UUID `json:"clientId"`
	ClientName      string    `json:"clientName"`
	ClientEmail     string    `json:"clientEmail"`
	SessionType     string    `json:"sessionType"`
	BookingDate     string    `json:"bookingDate"` // "2026-09-15"
	StartTime       string    `json:"startTime"`   // "10:00"
	DurationMinutes int       `json:"durationMinutes"`
	PricePaid       float64   `json:"pricePaid"`
	Status          string    `json:"status"`

	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		ClientID:           b.ClientID,
		ClientName:         b.ClientName,
		ClientEmail:        b.ClientEmail,
		SessionType:        string(b.SessionType),
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		DurationMinutes:    b.DurationMinutes,
		PricePaid:          b.PricePaid,
		Status:             string(b.Status),
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	if !domain.ValidStatus(status) {
		return "", ErrInvalidStatus
	}
	return domain.BookingStatus(status), nil
}
