package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resilientmind/coaching-platform/internal/domain"
	scheduleRepo "github.com/resilientmind/coaching-platform/internal/infra/storage/schedule"
	"github.com/resilientmind/coaching-platform/internal/service/availability/models"
	"github.com/resilientmind/coaching-platform/pkg/ptr"
)

type fakeRepo struct {
	rules        []*domain.WeeklyAvailabilityRule
	upserted     *domain.WeeklyAvailabilityRule
	blockedDates []*domain.BlockedDate
	addErr       error
	removeErr    error
}

func (f *fakeRepo) GetWeeklyRules(_ context.Context) ([]*domain.WeeklyAvailabilityRule, error) {
	return f.rules, nil
}

func (f *fakeRepo) UpsertWeeklyRule(_ context.Context, rule *domain.WeeklyAvailabilityRule) (*domain.WeeklyAvailabilityRule, error) {
	f.upserted = rule
	return rule, nil
}

func (f *fakeRepo) GetBlockedDates(_ context.Context, _, _ time.Time) ([]*domain.BlockedDate, error) {
	return f.blockedDates, nil
}

func (f *fakeRepo) HasBlockedDate(_ context.Context, _ time.Time) (bool, error) {
	return len(f.blockedDates) > 0, nil
}

func (f *fakeRepo) AddBlockedDate(_ context.Context, date time.Time, reason *string) (*domain.BlockedDate, error) {
	if f.addErr != nil {
		return nil, f.addErr
	}
	return &domain.BlockedDate{ID: 1, Date: date, Reason: reason}, nil
}

func (f *fakeRepo) RemoveBlockedDate(_ context.Context, _ time.Time) error {
	return f.removeErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestWeeklyRules_DefaultTemplateWhenUnconfigured(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	rules, err := svc.WeeklyRules(context.Background())
	require.NoError(t, err)
	require.Len(t, rules, 7)

	byDay := domain.RulesByDay(rules)
	assert.True(t, byDay[time.Monday].IsActive)
	assert.True(t, byDay[time.Friday].IsActive)
	assert.False(t, byDay[time.Saturday].IsActive)
	assert.False(t, byDay[time.Sunday].IsActive)
	assert.Equal(t, domain.DefaultWorkdayStart, byDay[time.Monday].StartTime)
	assert.Equal(t, domain.DefaultWorkdayEnd, byDay[time.Monday].EndTime)
}

func TestWeeklyRules_ConfiguredRulesWinOverTemplate(t *testing.T) {
	configured := []*domain.WeeklyAvailabilityRule{
		{DayOfWeek: time.Monday, StartTime: "12:00", EndTime: "20:00", IsActive: true},
	}
	svc := NewService(&fakeRepo{rules: configured}, nopLogger{})

	rules, err := svc.WeeklyRules(context.Background())
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, configured[0], rules[0])
}

func TestUpdateWeeklyRule(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.UpdateWeeklyRule(context.Background(), &models.UpdateWeeklyRuleRequest{
		DayOfWeek: 3,
		StartTime: "10:00",
		EndTime:   "18:30",
		IsActive:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Wednesday", resp.DayName)
	assert.Equal(t, "10:00", resp.StartTime)
	require.NotNil(t, repo.upserted)
	assert.Equal(t, time.Wednesday, repo.upserted.DayOfWeek)
}

func TestUpdateWeeklyRule_Validation(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	tests := []struct {
		name    string
		req     models.UpdateWeeklyRuleRequest
		wantErr error
	}{
		{
			name:    "day out of range",
			req:     models.UpdateWeeklyRuleRequest{DayOfWeek: 7, StartTime: "09:00", EndTime: "17:00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "malformed start time",
			req:     models.UpdateWeeklyRuleRequest{DayOfWeek: 1, StartTime: "9am", EndTime: "17:00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "end before start",
			req:     models.UpdateWeeklyRuleRequest{DayOfWeek: 1, StartTime: "17:00", EndTime: "09:00"},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "zero-length window",
			req:     models.UpdateWeeklyRuleRequest{DayOfWeek: 1, StartTime: "09:00", EndTime: "09:00"},
			wantErr: ErrInvalidTimeRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateWeeklyRule(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAddBlockedDate(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	resp, err := svc.AddBlockedDate(context.Background(), &models.AddBlockedDateRequest{
		Date:   time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		Reason: ptr.Ptr("vacation"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-09-16", resp.Date)
	assert.Equal(t, "vacation", *resp.Reason)
}

func TestAddBlockedDate_AlreadyBlocked(t *testing.T) {
	svc := NewService(&fakeRepo{addErr: scheduleRepo.ErrDateAlreadyBlocked}, nopLogger{})

	_, err := svc.AddBlockedDate(context.Background(), &models.AddBlockedDateRequest{
		Date: time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrDateAlreadyBlocked)
}

func TestRemoveBlockedDate_NotBlocked(t *testing.T) {
	svc := NewService(&fakeRepo{removeErr: scheduleRepo.ErrBlockedDateNotFound}, nopLogger{})

	err := svc.RemoveBlockedDate(context.Background(), time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrBlockedDateNotFound)
}
