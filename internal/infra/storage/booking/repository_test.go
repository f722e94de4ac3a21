package booking_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resilientmind/coaching-platform/internal/domain"
	"github.com/resilientmind/coaching-platform/internal/infra/storage/booking"
)

var bookingColumns = []string{
	"id", "client_id", "client_name", "client_email", "session_type",
	"booking_date", "start_time", "duration_minutes", "price_paid", "status",
	"notes", "cancellation_reason", "cancelled_at", "created_at", "updated_at",
}

func newMock(t *testing.T) (*booking.Repository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return booking.NewRepository(db), mock, func() { db.Close() }
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock, closeDB := newMock(t)
	defer closeDB()

	clientID := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows(bookingColumns).AddRow(
		int64(7), clientID.String(), "Anna", "anna@example.com", "single_session",
		time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC), "10:00", 60, 87.0, "scheduled",
		nil, nil, nil, now, now,
	)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, client_id, client_name, client_email, session_type, booking_date, start_time, duration_minutes, price_paid, status, notes, cancellation_reason, cancelled_at, created_at, updated_at FROM bookings WHERE id = $1`,
	)).WithArgs(int64(7)).WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, clientID, got.ClientID)
	assert.Equal(t, domain.SessionSingle, got.SessionType)
	assert.Equal(t, "10:00", got.StartTime.String())
	assert.Equal(t, domain.StatusScheduled, got.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock, closeDB := newMock(t)
	defer closeDB()

	mock.ExpectQuery("SELECT .* FROM bookings").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock, closeDB := newMock(t)
	defer closeDB()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(42), now, now))

	created, err := repo.Create(context.Background(), &domain.Booking{
		ClientID:        uuid.New(),
		ClientName:      "Anna",
		ClientEmail:     "anna@example.com",
		SessionType:     domain.SessionSingle,
		BookingDate:     time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 60,
		PricePaid:       87,
		Status:          domain.StatusScheduled,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ExclusionConstraintMapsToSlotTaken(t *testing.T) {
	repo, mock, closeDB := newMock(t)
	defer closeDB()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnError(&pq.Error{Code: "23P01", Constraint: "bookings_no_overlap"})

	_, err := repo.Create(context.Background(), &domain.Booking{
		ClientID:    uuid.New(),
		ClientName:  "Anna",
		ClientEmail: "anna@example.com",
		SessionType: domain.SessionSingle,
		BookingDate: time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		Status:      domain.StatusScheduled,
	})
	assert.ErrorIs(t, err, booking.ErrSlotTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetScheduledByDate(t *testing.T) {
	repo, mock, closeDB := newMock(t)
	defer closeDB()

	date := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)
	now := time.Now()
	rows := sqlmock.NewRows(bookingColumns).
		AddRow(int64(1), uuid.New().String(), "Anna", "anna@example.com", "single_session",
			date, "09:00", 60, 87.0, "scheduled", nil, nil, nil, now, now).
		AddRow(int64(2), uuid.New().String(), "Ben", "ben@example.com", "deep_dive",
			date, "11:00", 90, 120.0, "scheduled", nil, nil, nil, now, now)

	// Вне транзакции запрос идёт без FOR UPDATE
	mock.ExpectQuery(`SELECT .* FROM bookings WHERE booking_date = \$\d+ AND status = \$\d+ ORDER BY start_time ASC$`).
		WillReturnRows(rows)

	got, err := repo.GetScheduledByDate(context.Background(), date)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "09:00", got[0].StartTime.String())
	assert.Equal(t, "11:00", got[1].StartTime.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetScheduledByDate_SerializationFailureMapsToSlotTaken(t *testing.T) {
	repo, mock, closeDB := newMock(t)
	defer closeDB()

	mock.ExpectQuery(`SELECT .* FROM bookings`).
		WillReturnError(&pq.Error{Code: "40001", Message: "could not serialize access"})

	_, err := repo.GetScheduledByDate(context.Background(), time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, booking.ErrSlotTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_NotFound(t *testing.T) {
	repo, mock, closeDB := newMock(t)
	defer closeDB()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 99, domain.StatusCompleted)
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Cancel(t *testing.T) {
	repo, mock, closeDB := newMock(t)
	defer closeDB()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = $1, cancellation_reason = $2, cancelled_at = NOW() WHERE id = $3")).
		WithArgs("cancelled", "schedule change", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Cancel(context.Background(), 7, "schedule change")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
