package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{StatusScheduled, StatusCompleted, true},
		{StatusScheduled, StatusCancelled, true},
		{StatusScheduled, StatusNoShow, true},
		{StatusScheduled, StatusScheduled, true},

		// Повторное применение терминального статуса допустимо (no-op)
		{StatusCompleted, StatusCompleted, true},
		{StatusCancelled, StatusCancelled, true},
		{StatusNoShow, StatusNoShow, true},

		// Любая другая мутация терминального бронирования запрещена
		{StatusCompleted, StatusScheduled, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusCompleted, false},
		{StatusNoShow, StatusScheduled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.want, b.CanTransitionTo(tt.to))
		})
	}
}

func TestTimeInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeInterval
		want bool
	}{
		{
			name: "partial overlap",
			a:    TimeInterval{Start: "11:30", End: "12:00"},
			b:    TimeInterval{Start: "11:20", End: "11:40"},
			want: true,
		},
		{
			name: "containment",
			a:    TimeInterval{Start: "10:00", End: "12:00"},
			b:    TimeInterval{Start: "10:30", End: "11:00"},
			want: true,
		},
		{
			name: "boundary contact left",
			a:    TimeInterval{Start: "11:30", End: "12:00"},
			b:    TimeInterval{Start: "11:00", End: "11:30"},
			want: false,
		},
		{
			name: "boundary contact right",
			a:    TimeInterval{Start: "11:30", End: "12:00"},
			b:    TimeInterval{Start: "12:00", End: "12:30"},
			want: false,
		},
		{
			name: "disjoint",
			a:    TimeInterval{Start: "09:00", End: "10:00"},
			b:    TimeInterval{Start: "14:00", End: "15:00"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestBusyIntervals_SkipsTerminalBookings(t *testing.T) {
	bookings := []*Booking{
		{StartTime: "09:00", DurationMinutes: 60, Status: StatusScheduled},
		{StartTime: "10:00", DurationMinutes: 60, Status: StatusCancelled},
		{StartTime: "11:00", DurationMinutes: 60, Status: StatusCompleted},
		{StartTime: "12:00", DurationMinutes: 60, Status: StatusNoShow},
	}

	intervals := BusyIntervals(bookings)
	assert.Len(t, intervals, 1)
	assert.Equal(t, TimeInterval{Start: "09:00", End: "10:00"}, intervals[0])
}
