package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resilientmind/coaching-platform/internal/domain"
	bookingRepo "github.com/resilientmind/coaching-platform/internal/infra/storage/booking"
	"github.com/resilientmind/coaching-platform/internal/service/bookings/models"
)

type fakeRepo struct {
	booking       *domain.Booking
	getErr        error
	updatedStatus *domain.BookingStatus
	cancelled     bool
	cancelReason  string
}

func (f *fakeRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeRepo) GetByClientID(_ context.Context, _ uuid.UUID, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return []*domain.Booking{f.booking}, nil
}

func (f *fakeRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return []*domain.Booking{f.booking}, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus) error {
	f.updatedStatus = &status
	return nil
}

func (f *fakeRepo) Cancel(_ context.Context, _ int64, reason string) error {
	f.cancelled = true
	f.cancelReason = reason
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var clientID = uuid.New()

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:              7,
		ClientID:        clientID,
		ClientName:      "Anna",
		ClientEmail:     "anna@example.com",
		SessionType:     domain.SessionSingle,
		BookingDate:     time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 60,
		PricePaid:       87,
		Status:          status,
	}
}

func TestGetByID_AccessControl(t *testing.T) {
	repo := &fakeRepo{booking: testBooking(domain.StatusScheduled)}
	svc := NewService(repo, nopLogger{})

	// Владелец видит своё бронирование
	resp, err := svc.GetByID(context.Background(), 7, clientID, false)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)

	// Чужой клиент - нет
	_, err = svc.GetByID(context.Background(), 7, uuid.New(), false)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Админ видит любое
	_, err = svc.GetByID(context.Background(), 7, uuid.New(), true)
	assert.NoError(t, err)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeRepo{getErr: bookingRepo.ErrBookingNotFound}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), 99, clientID, false)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetClientBookings_AccessControl(t *testing.T) {
	repo := &fakeRepo{booking: testBooking(domain.StatusScheduled)}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{
		ClientID: clientID,
		ActorID:  uuid.New(),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{
		ClientID: clientID,
		ActorID:  clientID,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
}

func TestGetClientBookings_InvalidStatus(t *testing.T) {
	repo := &fakeRepo{booking: testBooking(domain.StatusScheduled)}
	svc := NewService(repo, nopLogger{})

	badStatus := "postponed"
	_, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{
		ClientID: clientID,
		ActorID:  clientID,
		Status:   &badStatus,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	repo := &fakeRepo{booking: testBooking(domain.StatusScheduled)}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{
		ActorID:            clientID,
		CancellationReason: "schedule change",
	})
	require.NoError(t, err)
	assert.True(t, repo.cancelled)
	assert.Equal(t, "schedule change", repo.cancelReason)
}

func TestCancel_OnlyOwnerOrAdmin(t *testing.T) {
	repo := &fakeRepo{booking: testBooking(domain.StatusScheduled)}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{ActorID: uuid.New()})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, repo.cancelled)

	err = svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{ActorID: uuid.New(), IsAdmin: true})
	assert.NoError(t, err)
}

func TestCancel_TerminalBooking(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusCompleted, domain.StatusCancelled, domain.StatusNoShow} {
		t.Run(string(status), func(t *testing.T) {
			repo := &fakeRepo{booking: testBooking(status)}
			svc := NewService(repo, nopLogger{})

			err := svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{ActorID: clientID})
			assert.ErrorIs(t, err, ErrCannotCancel)
		})
	}
}

func TestUpdateStatus_FromScheduled(t *testing.T) {
	repo := &fakeRepo{booking: testBooking(domain.StatusScheduled)}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusCompleted, *repo.updatedStatus)
}

func TestUpdateStatus_ReapplyingCurrentStatusIsNoOp(t *testing.T) {
	repo := &fakeRepo{booking: testBooking(domain.StatusCompleted)}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)

	// Запись в БД не выполнялась
	assert.Nil(t, repo.updatedStatus)
}

func TestUpdateStatus_TerminalToOtherIsRejected(t *testing.T) {
	repo := &fakeRepo{booking: testBooking(domain.StatusCancelled)}
	svc := NewService(repo, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "completed"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Nil(t, repo.updatedStatus)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	repo := &fakeRepo{booking: testBooking(domain.StatusScheduled)}
	svc := NewService(repo, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "postponed"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
