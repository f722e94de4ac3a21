package domain

// SessionType identifies a bookable coaching session format
type SessionType string

const (
	SessionDiscoveryCall SessionType = "discovery_call"
	SessionSingle        SessionType = "single_session"
	SessionDeepDive      SessionType = "deep_dive"
)

// SessionTypeSpec describes the duration and price of a session type
type SessionTypeSpec struct {
	Type            SessionType
	Name            string
	DurationMinutes int
	PriceEUR        float64
}

// sessionCatalog каталог типов сессий
// Длительности намеренно разные: пересечения проверяются по интервалам
// занятости, а не по фиксированной сетке слотов
var sessionCatalog = []SessionTypeSpec{
	{Type: SessionDiscoveryCall, Name: "Discovery Call", DurationMinutes: 30, PriceEUR: 0},
	{Type: SessionSingle, Name: "Single Session", DurationMinutes: 60, PriceEUR: 87},
	{Type: SessionDeepDive, Name: "Deep Dive", DurationMinutes: 90, PriceEUR: 120},
}

// SessionTypes returns the full session type catalog in display order
func SessionTypes() []SessionTypeSpec {
	out := make([]SessionTypeSpec, len(sessionCatalog))
	copy(out, sessionCatalog)
	return out
}

// SessionTypeByName looks up a session type spec by its identifier.
// Returns false if the identifier is unknown.
func SessionTypeByName(name string) (SessionTypeSpec, bool) {
	for _, spec := range sessionCatalog {
		if spec.Type == SessionType(name) {
			return spec, true
		}
	}
	return SessionTypeSpec{}, false
}
