package get_bookable_dates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resilientmind/coaching-platform/internal/domain"
)

type fakeSchedule struct {
	rules   []*domain.WeeklyAvailabilityRule
	blocked []*domain.BlockedDate
	err     error
}

func (f *fakeSchedule) WeeklyRules(_ context.Context) ([]*domain.WeeklyAvailabilityRule, error) {
	return f.rules, f.err
}

func (f *fakeSchedule) BlockedDatesBetween(_ context.Context, _, _ time.Time) ([]*domain.BlockedDate, error) {
	return f.blocked, f.err
}

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_ResolvesRange(t *testing.T) {
	schedule := &fakeSchedule{
		rules: domain.DefaultWeeklyRules(),
		blocked: []*domain.BlockedDate{
			{Date: date(2026, time.September, 16)},
		},
	}

	uc := NewUseCase(schedule, domain.DefaultBookingPolicy(), nopLogger{})
	uc.timeProvider = &fixedTime{t: time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)}

	// Пн 14.09 - вс 20.09
	resp, err := uc.Execute(context.Background(), &Request{
		From: date(2026, time.September, 14),
		To:   date(2026, time.September, 20),
	})
	require.NoError(t, err)
	require.Len(t, resp.Dates, 7)

	byDate := make(map[string]bool, len(resp.Dates))
	for _, d := range resp.Dates {
		byDate[d.Date.Format(domain.DateFormat)] = d.Bookable
	}

	assert.True(t, byDate["2026-09-14"])  // понедельник
	assert.False(t, byDate["2026-09-16"]) // заблокирована
	assert.True(t, byDate["2026-09-17"])  // четверг
	assert.False(t, byDate["2026-09-19"]) // суббота
	assert.False(t, byDate["2026-09-20"]) // воскресенье
}

func TestExecute_RangeTooLarge(t *testing.T) {
	uc := NewUseCase(&fakeSchedule{}, domain.DefaultBookingPolicy(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		From: date(2026, time.September, 1),
		To:   date(2026, time.September, 1).AddDate(0, 0, domain.DefaultCalendarMaxRangeDays),
	})
	assert.ErrorIs(t, err, ErrRangeTooLarge)
}

func TestExecute_InvalidRange(t *testing.T) {
	uc := NewUseCase(&fakeSchedule{}, domain.DefaultBookingPolicy(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		From: date(2026, time.September, 10),
		To:   date(2026, time.September, 5),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{To: date(2026, time.September, 5)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
