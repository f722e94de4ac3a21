package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resilientmind/coaching-platform/internal/domain"
	"github.com/resilientmind/coaching-platform/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetScheduledByDate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeSchedule struct {
	rules   []*domain.WeeklyAvailabilityRule
	blocked bool
	err     error
}

func (f *fakeSchedule) WeeklyRules(_ context.Context) ([]*domain.WeeklyAvailabilityRule, error) {
	return f.rules, f.err
}

func (f *fakeSchedule) IsDateBlocked(_ context.Context, _ time.Time) (bool, error) {
	return f.blocked, f.err
}

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func rule(start, end types.TimeString) *domain.WeeklyAvailabilityRule {
	return &domain.WeeklyAvailabilityRule{
		DayOfWeek: time.Wednesday,
		StartTime: start,
		EndTime:   end,
		IsActive:  true,
	}
}

func scheduled(start types.TimeString, duration int) *domain.Booking {
	return &domain.Booking{
		StartTime:       start,
		DurationMinutes: duration,
		Status:          domain.StatusScheduled,
	}
}

func newUseCase(repo *fakeBookingRepo, schedule *fakeSchedule, now time.Time) *UseCase {
	uc := NewUseCase(repo, schedule, domain.DefaultBookingPolicy(), nopLogger{})
	uc.timeProvider = &fixedTime{t: now}
	return uc
}

func TestGenerateTimeSlots_FutureDate(t *testing.T) {
	now := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	requestDate := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(rule("09:00", "12:00"), 60, requestDate, now, 30)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "10:00", "11:00"}, slots)
}

func TestGenerateTimeSlots_SlotMustFitWindow(t *testing.T) {
	now := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	requestDate := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

	// 90-минутные слоты в окне 09:00-17:00: последний начинается в 15:00,
	// слот 16:30-18:00 уже не помещается
	slots, err := generateTimeSlots(rule("09:00", "17:00"), 90, requestDate, now, 30)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "10:30", "12:00", "13:30", "15:00"}, slots)
}

func TestGenerateTimeSlots_FullWorkingDay(t *testing.T) {
	now := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	requestDate := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

	// Стандартный рабочий день 09:00-17:00 с часовыми сессиями: ровно 8 слотов
	slots, err := generateTimeSlots(rule("09:00", "17:00"), 60, requestDate, now, 30)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{
		"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00",
	}, slots)
}

func TestGenerateTimeSlots_SameDayLeadTime(t *testing.T) {
	// Сегодня 14:05, lead time 30 минут: минимально допустимое начало 14:35
	now := time.Date(2026, 9, 16, 14, 5, 0, 0, time.UTC)
	requestDate := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(rule("09:00", "17:00"), 60, requestDate, now, 30)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"15:00", "16:00"}, slots)
}

func TestGenerateTimeSlots_SameDayLeadTimeExhaustsDay(t *testing.T) {
	// Сегодня 15:40, lead time 30 минут: минимально допустимое начало 16:10,
	// но последний часовой слот дня начинается в 16:00
	now := time.Date(2026, 9, 16, 15, 40, 0, 0, time.UTC)
	requestDate := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(rule("09:00", "17:00"), 60, requestDate, now, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_PastDateIsEmpty(t *testing.T) {
	now := time.Date(2026, 9, 16, 10, 0, 0, 0, time.UTC)
	requestDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(rule("09:00", "17:00"), 60, requestDate, now, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestFilterFreeSlots(t *testing.T) {
	slots := []types.TimeString{"09:00", "10:00", "11:00", "12:00"}

	// Бронирование 10:30-11:30 пересекает слоты 10:00-11:00 и 11:00-12:00
	busy := []domain.TimeInterval{{Start: "10:30", End: "11:30"}}

	free := filterFreeSlots(slots, 60, busy)
	require.Len(t, free, 2)
	assert.Equal(t, types.TimeString("09:00"), free[0].StartTime)
	assert.Equal(t, types.TimeString("12:00"), free[1].StartTime)
}

func TestFilterFreeSlots_BoundaryContactIsNotConflict(t *testing.T) {
	slots := []types.TimeString{"11:30"}

	// Бронирования граничат со слотом 11:30-12:00 с обеих сторон
	busy := []domain.TimeInterval{
		{Start: "11:00", End: "11:30"},
		{Start: "12:00", End: "12:30"},
	}

	free := filterFreeSlots(slots, 30, busy)
	require.Len(t, free, 1)
	assert.Equal(t, types.TimeString("11:30"), free[0].StartTime)
}

func TestExecute_MixedDurations(t *testing.T) {
	// 90-минутное бронирование 10:00-11:30 против 60-минутных слотов:
	// слоты 10:00 и 11:00 заняты, 09:00 и 12:00+ свободны
	now := time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)
	requestDate := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

	repo := &fakeBookingRepo{bookings: []*domain.Booking{scheduled("10:00", 90)}}
	schedule := &fakeSchedule{rules: []*domain.WeeklyAvailabilityRule{rule("09:00", "13:00")}}
	uc := newUseCase(repo, schedule, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:        requestDate,
		SessionType: domain.SessionSingle,
	})
	require.NoError(t, err)

	starts := make([]types.TimeString, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		starts = append(starts, s.StartTime)
	}
	assert.Equal(t, []types.TimeString{"09:00", "12:00"}, starts)
	assert.Equal(t, 60, resp.DurationMinutes)
}

func TestExecute_BlockedDateReturnsEmpty(t *testing.T) {
	now := time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)
	requestDate := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

	schedule := &fakeSchedule{rules: domain.DefaultWeeklyRules(), blocked: true}
	uc := newUseCase(&fakeBookingRepo{}, schedule, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:        requestDate,
		SessionType: domain.SessionDiscoveryCall,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_InactiveDayReturnsEmpty(t *testing.T) {
	now := time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, 9, 19, 0, 0, 0, 0, time.UTC)

	schedule := &fakeSchedule{rules: domain.DefaultWeeklyRules()}
	uc := newUseCase(&fakeBookingRepo{}, schedule, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:        saturday,
		SessionType: domain.SessionSingle,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_UnknownSessionType(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{}, &fakeSchedule{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{
		Date:        time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		SessionType: "group_retreat",
	})
	assert.ErrorIs(t, err, ErrUnknownSessionType)
}

func TestExecute_DateTooFarInFuture(t *testing.T) {
	now := time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)
	uc := newUseCase(&fakeBookingRepo{}, &fakeSchedule{rules: domain.DefaultWeeklyRules()}, now)

	_, err := uc.Execute(context.Background(), &Request{
		Date:        now.AddDate(0, 0, domain.DefaultAdvanceBookingDays+1),
		SessionType: domain.SessionSingle,
	})
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}
