package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/resilientmind/coaching-platform/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByClientID(ctx context.Context, clientID uuid.UUID, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
