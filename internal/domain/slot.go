package domain

import "github.com/resilientmind/coaching-platform/pkg/types"

// AvailableSlot represents a bookable start time within a day
type AvailableSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
}

// TimeInterval is a closed-open [Start, End) time window within one day.
// Busy time is always represented as a list of these intervals,
// independent of the session types that produced them.
type TimeInterval struct {
	Start types.TimeString
	End   types.TimeString
}

// Overlaps reports whether two intervals truly intersect.
// Boundary contact is not an overlap: a booking ending exactly where a
// slot starts leaves the slot free.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.IsBefore(other.End) && other.Start.IsBefore(i.End)
}

// BusyIntervals собирает интервалы занятости из активных бронирований дня
// Бронирования в терминальных статусах слот не занимают
func BusyIntervals(bookings []*Booking) []TimeInterval {
	intervals := make([]TimeInterval, 0, len(bookings))
	for _, booking := range bookings {
		if !booking.IsScheduled() {
			continue
		}
		interval, err := booking.Interval()
		if err != nil {
			// Некорректное время в строке БД не должно ронять выдачу слотов
			continue
		}
		intervals = append(intervals, interval)
	}
	return intervals
}
