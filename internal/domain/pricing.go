package domain

import "time"

// EarlyBirdEnd is the instant after which early-bird pricing no longer applies
var EarlyBirdEnd = time.Date(2026, time.April, 25, 23, 59, 59, 0, time.UTC)

// MembershipType gates access to platform content
type MembershipType string

const (
	MembershipBasic   MembershipType = "basic"
	MembershipPremium MembershipType = "premium"
)

// MembershipTier describes one purchasable membership plan
type MembershipTier struct {
	ID             string
	Name           string
	RegularPrice   float64
	EarlyBirdPrice float64
	Interval       string // "month" | "year"
	MembershipType MembershipType
	Description    string
	Features       []string
	Highlighted    bool
	Badge          *string
	Hidden         bool
}

// membershipTiers каталог тарифов
// Годовые тарифы скрыты с витрины, но остаются валидными для checkout
var membershipTiers = []MembershipTier{
	{
		ID:             "basic_monthly",
		Name:           "Basic Monthly",
		RegularPrice:   37,
		EarlyBirdPrice: 27,
		Interval:       "month",
		MembershipType: MembershipBasic,
		Description:    "Access to the foundational Module A of the current program theme each month.",
		Features: []string{
			"Monthly foundational module (Module A)",
			"Downloadable worksheets for Module A",
			"Access to meditation library",
			"Monthly content updates",
		},
	},
	{
		ID:             "basic_yearly",
		Name:           "Basic Yearly",
		RegularPrice:   370,
		EarlyBirdPrice: 370,
		Interval:       "year",
		MembershipType: MembershipBasic,
		Description:    "Complete access to all 4 programs (12 months) with all modules.",
		Features: []string{
			"All 4 transformational programs (12 months)",
			"Complete access to all modules (A, B, C)",
			"All downloadable worksheets & exercises",
			"Full meditation & visualization library",
		},
		Hidden: true,
	},
	{
		ID:             "premium_monthly",
		Name:           "Premium Monthly",
		RegularPrice:   47,
		EarlyBirdPrice: 37,
		Interval:       "month",
		MembershipType: MembershipPremium,
		Description:    "Enhanced access to foundational and advanced modules (A & B) plus priority support.",
		Features: []string{
			"Modules A & B of current month",
			"All Basic Monthly benefits",
			"Access to additional Resilient Hub (Module A)",
			"Priority support",
		},
		Highlighted: true,
	},
	{
		ID:             "premium_yearly",
		Name:           "Premium Yearly",
		RegularPrice:   470,
		EarlyBirdPrice: 470,
		Interval:       "year",
		MembershipType: MembershipPremium,
		Description:    "Complete program access with personal consultations and materials kit.",
		Features: []string{
			"All 4 programs with all modules (A, B, C)",
			"4 hours personal consultations",
			"Art expressive therapy materials kit",
			"All worksheets, meditations & exercises",
		},
		Highlighted: true,
		Hidden:      true,
	},
}

// VisibleTiers returns tiers shown on the pricing page
func VisibleTiers() []MembershipTier {
	visible := make([]MembershipTier, 0, len(membershipTiers))
	for _, tier := range membershipTiers {
		if !tier.Hidden {
			visible = append(visible, tier)
		}
	}
	return visible
}

// TierByID looks up any tier (including hidden ones) by its identifier
func TierByID(id string) (MembershipTier, bool) {
	for _, tier := range membershipTiers {
		if tier.ID == id {
			return tier, true
		}
	}
	return MembershipTier{}, false
}

// EffectivePrice returns the price in effect at the given instant
func (t MembershipTier) EffectivePrice(now time.Time) float64 {
	if now.Before(EarlyBirdEnd) {
		return t.EarlyBirdPrice
	}
	return t.RegularPrice
}

// ValidMembership reports whether the string names a known membership type
func ValidMembership(s string) bool {
	switch MembershipType(s) {
	case MembershipBasic, MembershipPremium:
		return true
	default:
		return false
	}
}
