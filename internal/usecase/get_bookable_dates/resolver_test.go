package get_bookable_dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/resilientmind/coaching-platform/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsDateBookable(t *testing.T) {
	// Вт 15.09.2026, рабочая неделя пн-пт
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	rules := domain.RulesByDay(domain.DefaultWeeklyRules())
	policy := domain.BookingPolicy{
		MinLeadTimeMinutes:   30,
		AdvanceBookingDays:   60,
		CalendarMaxRangeDays: 93,
	}

	tests := []struct {
		name    string
		date    time.Time
		blocked map[string]struct{}
		want    bool
	}{
		{
			name: "weekday inside window",
			date: date(2026, time.September, 16), // среда
			want: true,
		},
		{
			name: "today is still bookable",
			date: date(2026, time.September, 15),
			want: true,
		},
		{
			name: "yesterday is not bookable",
			date: date(2026, time.September, 14),
			want: false,
		},
		{
			name: "saturday has no active rule",
			date: date(2026, time.September, 19),
			want: false,
		},
		{
			name: "sunday has no active rule",
			date: date(2026, time.September, 20),
			want: false,
		},
		{
			name: "weekday near the end of advance window",
			date: date(2026, time.September, 15).AddDate(0, 0, 59), // пятница 13.11
			want: true,
		},
		{
			name: "weekday beyond advance window",
			date: date(2026, time.September, 15).AddDate(0, 0, 63), // вторник 17.11
			want: false,
		},
		{
			name:    "blocked date overrides active rule",
			date:    date(2026, time.September, 16),
			blocked: map[string]struct{}{"2026-09-16": {}},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocked := tt.blocked
			if blocked == nil {
				blocked = map[string]struct{}{}
			}
			got := isDateBookable(tt.date, now, rules, blocked, policy)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsDateBookable_UnlimitedAdvanceWindow(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	rules := domain.RulesByDay(domain.DefaultWeeklyRules())
	policy := domain.BookingPolicy{AdvanceBookingDays: 0}

	// Среда через два года
	farFuture := date(2028, time.September, 13)
	assert.True(t, isDateBookable(farFuture, now, rules, map[string]struct{}{}, policy))
}
