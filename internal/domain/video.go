package domain

import "time"

// VideoModule tiers program content within a month: A is foundational,
// B is advanced, C is reserved for yearly members
type VideoModule string

const (
	ModuleA VideoModule = "A"
	ModuleB VideoModule = "B"
	ModuleC VideoModule = "C"
)

// Video represents one program video of the membership library
type Video struct {
	ID          int64
	Title       string
	Description *string
	Module      VideoModule
	WeekNumber  int
	VideoURL    string
	IsIntro     bool // интро-видео доступны всем вне зависимости от тарифа
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidModule reports whether the string names a known video module
func ValidModule(s string) bool {
	switch VideoModule(s) {
	case ModuleA, ModuleB, ModuleC:
		return true
	default:
		return false
	}
}

// ModulesForMembership returns the modules a membership tier may watch.
// basic -> A, premium -> A+B; module C is admin-only content for now.
func ModulesForMembership(membership MembershipType) []VideoModule {
	switch membership {
	case MembershipPremium:
		return []VideoModule{ModuleA, ModuleB}
	default:
		return []VideoModule{ModuleA}
	}
}

// VideoFilter фильтр выборки видео
type VideoFilter struct {
	Modules       []VideoModule // пустой список = все модули
	IncludeIntros bool          // интро-видео добавляются независимо от модулей
}
