package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/resilientmind/coaching-platform/pkg/types"
)

// BookingStatus represents the status of a coaching session booking
type BookingStatus string

const (
	StatusScheduled BookingStatus = "scheduled"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// Booking represents one reserved coaching session slot
type Booking struct {
	ID              int64
	ClientID        uuid.UUID // ID клиента из внешнего auth-провайдера
	ClientName      string
	ClientEmail     string
	SessionType     SessionType
	BookingDate     time.Time // дата сессии без времени
	StartTime       types.TimeString
	DurationMinutes int
	PricePaid       float64
	Status          BookingStatus

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsScheduled returns true if the booking still occupies its slot
func (b *Booking) IsScheduled() bool {
	return b.Status == StatusScheduled
}

// IsTerminal returns true if the booking reached a final state
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted ||
		b.Status == StatusCancelled ||
		b.Status == StatusNoShow
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusScheduled
}

// CanTransitionTo reports whether a status change is allowed.
// Re-applying the current status is always allowed and treated as a no-op
// by callers; any other mutation of a terminal booking is rejected.
func (b *Booking) CanTransitionTo(status BookingStatus) bool {
	if b.Status == status {
		return true
	}
	return b.Status == StatusScheduled
}

// Interval returns the occupied time window of the booking
func (b *Booking) Interval() (TimeInterval, error) {
	end, err := b.StartTime.AddMinutes(b.DurationMinutes)
	if err != nil {
		return TimeInterval{}, err
	}
	return TimeInterval{Start: b.StartTime, End: end}, nil
}

// BookingsFilter фильтр для выборки бронирований (админский список)
type BookingsFilter struct {
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли терминальные бронирования
}

// ValidStatus reports whether the given string is a known booking status
func ValidStatus(s string) bool {
	switch BookingStatus(s) {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}
