package domain

import "github.com/resilientmind/coaching-platform/pkg/types"

// Default booking policy values
const (
	DefaultMinLeadTimeMinutes   = 30
	DefaultAdvanceBookingDays   = 60 // 0 = unlimited
	DefaultCalendarMaxRangeDays = 93 // ~3 месяца для календаря
)

// Default weekly template window
const (
	DefaultWorkdayStart = types.TimeString("09:00")
	DefaultWorkdayEnd   = types.TimeString("17:00")
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxBlockedReasonLength      = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BookingPolicy platform-wide booking constraints loaded from configuration
type BookingPolicy struct {
	MinLeadTimeMinutes   int // минимальный интервал до начала слота в день бронирования
	AdvanceBookingDays   int // 0 = без ограничения
	CalendarMaxRangeDays int // максимальный диапазон одного запроса календаря
}

// DefaultBookingPolicy returns the policy used when configuration is silent
func DefaultBookingPolicy() BookingPolicy {
	return BookingPolicy{
		MinLeadTimeMinutes:   DefaultMinLeadTimeMinutes,
		AdvanceBookingDays:   DefaultAdvanceBookingDays,
		CalendarMaxRangeDays: DefaultCalendarMaxRangeDays,
	}
}

// TerminalStatuses список терминальных статусов бронирований
// Используется при фильтрации занятости и в админском списке
var TerminalStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}
