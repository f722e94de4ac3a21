package domain

import (
	"time"

	"github.com/resilientmind/coaching-platform/pkg/types"
)

// WeeklyAvailabilityRule represents the coach's recurring availability
// for one day of the week. Rules are never deleted, only deactivated.
type WeeklyAvailabilityRule struct {
	ID        int64
	DayOfWeek time.Weekday // 0=Sunday .. 6=Saturday
	StartTime types.TimeString
	EndTime   types.TimeString
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlockedDate represents a calendar date fully excluded from booking,
// overriding an otherwise active weekly rule
type BlockedDate struct {
	ID        int64
	Date      time.Time // дата без времени
	Reason    *string
	CreatedAt time.Time
}

// DefaultWeeklyRules returns the weekday 09:00-17:00 template used when
// the administrator has not configured any availability rows yet.
// This fallback lives at the configuration-loading layer: the resolver
// itself only ever sees an explicit rule set.
func DefaultWeeklyRules() []*WeeklyAvailabilityRule {
	rules := make([]*WeeklyAvailabilityRule, 0, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		rules = append(rules, &WeeklyAvailabilityRule{
			DayOfWeek: day,
			StartTime: DefaultWorkdayStart,
			EndTime:   DefaultWorkdayEnd,
			IsActive:  day != time.Sunday && day != time.Saturday,
		})
	}
	return rules
}

// RulesByDay indexes weekly rules by day of week. If several rows exist
// for one day the last one wins (the storage layer enforces uniqueness).
func RulesByDay(rules []*WeeklyAvailabilityRule) map[time.Weekday]*WeeklyAvailabilityRule {
	byDay := make(map[time.Weekday]*WeeklyAvailabilityRule, len(rules))
	for _, rule := range rules {
		byDay[rule.DayOfWeek] = rule
	}
	return byDay
}

// BlockedSet builds a date-keyed lookup set from blocked date rows
func BlockedSet(blocked []*BlockedDate) map[string]struct{} {
	set := make(map[string]struct{}, len(blocked))
	for _, b := range blocked {
		set[b.Date.Format(DateFormat)] = struct{}{}
	}
	return set
}
