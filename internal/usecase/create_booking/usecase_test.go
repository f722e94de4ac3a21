package create_booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resilientmind/coaching-platform/internal/domain"
	bookingRepo "github.com/resilientmind/coaching-platform/internal/infra/storage/booking"
	"github.com/resilientmind/coaching-platform/pkg/types"
)

type fakeBookingRepo struct {
	scheduled    []*domain.Booking
	scheduledErr error
	createErr    error
	created      *domain.Booking
}

func (f *fakeBookingRepo) GetScheduledByDate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	if f.scheduledErr != nil {
		return nil, f.scheduledErr
	}
	return f.scheduled, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *booking
	created.ID = 42
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

type fakeSchedule struct {
	rules   []*domain.WeeklyAvailabilityRule
	blocked bool
}

func (f *fakeSchedule) WeeklyRules(_ context.Context) ([]*domain.WeeklyAvailabilityRule, error) {
	return f.rules, nil
}

func (f *fakeSchedule) IsDateBlocked(_ context.Context, _ time.Time) (bool, error) {
	return f.blocked, nil
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct {
	err       error
	commitErr error // возвращается после успешного выполнения fn, как ошибка COMMIT
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.err != nil {
		return f.err
	}
	if err := fn(ctx); err != nil {
		return err
	}
	if f.commitErr != nil {
		return fmt.Errorf("txmanager: commit: %w", f.commitErr)
	}
	return nil
}

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func scheduled(start types.TimeString, duration int) *domain.Booking {
	return &domain.Booking{
		StartTime:       start,
		DurationMinutes: duration,
		Status:          domain.StatusScheduled,
	}
}

func validRequest() *Request {
	return &Request{
		ClientID:    uuid.New(),
		ClientName:  "Anna",
		ClientEmail: "anna@example.com",
		SessionType: domain.SessionSingle,
		Date:        time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC), // среда
		StartTime:   "10:00",
	}
}

func newUseCase(repo *fakeBookingRepo, schedule *fakeSchedule, txMgr *fakeTxManager, now time.Time) *UseCase {
	uc := NewUseCase(repo, schedule, txMgr, domain.DefaultBookingPolicy(), nopLogger{})
	uc.timeProvider = &fixedTime{t: now}
	return uc
}

var testNow = time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

func TestExecute_Success(t *testing.T) {
	repo := &fakeBookingRepo{}
	schedule := &fakeSchedule{rules: domain.DefaultWeeklyRules()}
	uc := newUseCase(repo, schedule, &fakeTxManager{}, testNow)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, domain.SessionSingle, resp.SessionType)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, 87.0, resp.PricePaid)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)

	// Длительность и цена берутся из каталога, не из запроса
	require.NotNil(t, repo.created)
	assert.Equal(t, 60, repo.created.DurationMinutes)
	assert.Equal(t, 87.0, repo.created.PricePaid)
}

func TestExecute_SlotConflict(t *testing.T) {
	// Существующее 90-минутное бронирование 09:30-11:00 пересекает слот 10:00-11:00
	repo := &fakeBookingRepo{scheduled: []*domain.Booking{scheduled("09:30", 90)}}
	schedule := &fakeSchedule{rules: domain.DefaultWeeklyRules()}
	uc := newUseCase(repo, schedule, &fakeTxManager{}, testNow)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_BoundaryContactIsNotConflict(t *testing.T) {
	// Бронирование 09:00-10:00 заканчивается ровно на начале слота 10:00-11:00
	repo := &fakeBookingRepo{scheduled: []*domain.Booking{scheduled("09:00", 60)}}
	schedule := &fakeSchedule{rules: domain.DefaultWeeklyRules()}
	uc := newUseCase(repo, schedule, &fakeTxManager{}, testNow)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_ConstraintRejectionMapsToConflict(t *testing.T) {
	// Конкурентная вставка прошла мимо FOR UPDATE, БД отклонила по констрейнту
	repo := &fakeBookingRepo{createErr: bookingRepo.ErrSlotTaken}
	schedule := &fakeSchedule{rules: domain.DefaultWeeklyRules()}
	uc := newUseCase(repo, schedule, &fakeTxManager{}, testNow)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_SerializationFailureMapsToConflict(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{}, &fakeSchedule{rules: domain.DefaultWeeklyRules()},
		&fakeTxManager{err: bookingRepo.ErrSlotTaken}, testNow)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_CommitSerializationFailureMapsToConflict(t *testing.T) {
	// Проигравшая serializable транзакция падает на COMMIT: ошибка приходит
	// завёрнутой transaction manager'ом, минуя маппинг репозитория
	txMgr := &fakeTxManager{commitErr: &pq.Error{
		Code:    "40001",
		Message: "could not serialize access due to read/write dependencies among transactions",
	}}
	uc := newUseCase(&fakeBookingRepo{}, &fakeSchedule{rules: domain.DefaultWeeklyRules()}, txMgr, testNow)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_LockedReadConflictMapsToConflict(t *testing.T) {
	// 40001 на SELECT ... FOR UPDATE: репозиторий транслирует его в ErrSlotTaken
	repo := &fakeBookingRepo{scheduledErr: fmt.Errorf(
		"%w: GetScheduledByDate - execute query: %v",
		bookingRepo.ErrSlotTaken, &pq.Error{Code: "40001"},
	)}
	uc := newUseCase(repo, &fakeSchedule{rules: domain.DefaultWeeklyRules()}, &fakeTxManager{}, testNow)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_PolicyViolations(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(req *Request)
		schedule *fakeSchedule
		wantErr  error
	}{
		{
			name:     "date in past",
			mutate:   func(req *Request) { req.Date = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC) },
			schedule: &fakeSchedule{rules: domain.DefaultWeeklyRules()},
			wantErr:  ErrDateInPast,
		},
		{
			name: "date too far in future",
			mutate: func(req *Request) {
				req.Date = testNow.AddDate(0, 0, domain.DefaultAdvanceBookingDays+7)
			},
			schedule: &fakeSchedule{rules: domain.DefaultWeeklyRules()},
			wantErr:  ErrDateTooFarInFuture,
		},
		{
			name:     "blocked date",
			mutate:   func(req *Request) {},
			schedule: &fakeSchedule{rules: domain.DefaultWeeklyRules(), blocked: true},
			wantErr:  ErrDateBlocked,
		},
		{
			name:     "day without active rule",
			mutate:   func(req *Request) { req.Date = time.Date(2026, 9, 19, 0, 0, 0, 0, time.UTC) }, // суббота
			schedule: &fakeSchedule{rules: domain.DefaultWeeklyRules()},
			wantErr:  ErrDayNotAvailable,
		},
		{
			name:     "slot before window start",
			mutate:   func(req *Request) { req.StartTime = "08:00" },
			schedule: &fakeSchedule{rules: domain.DefaultWeeklyRules()},
			wantErr:  ErrOutsideWorkingHours,
		},
		{
			name:     "slot overruns window end",
			mutate:   func(req *Request) { req.StartTime = "16:30" },
			schedule: &fakeSchedule{rules: domain.DefaultWeeklyRules()},
			wantErr:  ErrOutsideWorkingHours,
		},
		{
			name: "same day lead time violation",
			mutate: func(req *Request) {
				// Сегодня 14.09, сейчас 10:00, lead time 30 минут
				req.Date = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
				req.StartTime = "10:15"
			},
			schedule: &fakeSchedule{rules: domain.DefaultWeeklyRules()},
			wantErr:  ErrTooLateToBook,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			uc := newUseCase(&fakeBookingRepo{}, tt.schedule, &fakeTxManager{}, testNow)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_UnknownSessionType(t *testing.T) {
	req := validRequest()
	req.SessionType = "group_retreat"

	uc := newUseCase(&fakeBookingRepo{}, &fakeSchedule{}, &fakeTxManager{}, testNow)
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnknownSessionType)
}

func TestExecute_InputValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "missing client id", mutate: func(req *Request) { req.ClientID = uuid.Nil }},
		{name: "blank client name", mutate: func(req *Request) { req.ClientName = "  " }},
		{name: "invalid email", mutate: func(req *Request) { req.ClientEmail = "not-an-email" }},
		{name: "zero date", mutate: func(req *Request) { req.Date = time.Time{} }},
		{name: "malformed start time", mutate: func(req *Request) { req.StartTime = "10am" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			uc := newUseCase(&fakeBookingRepo{}, &fakeSchedule{}, &fakeTxManager{}, testNow)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
