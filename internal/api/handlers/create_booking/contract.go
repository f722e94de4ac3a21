package create_booking

import (
	"context"

	"github.com/resilientmind/coaching-platform/internal/integrations/brevo"
	createBooking "github.com/resilientmind/coaching-platform/internal/usecase/create_booking"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// Notifier интерфейс отправки подтверждений по email
// Реализуется Brevo клиентом с graceful degradation
type Notifier interface {
	SendBookingConfirmationWithGracefulDegradation(ctx context.Context, confirmation *brevo.BookingConfirmation) error
	SyncContactWithGracefulDegradation(ctx context.Context, email, name string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
