package get_available_slots

import (
	"time"

	"github.com/resilientmind/coaching-platform/internal/domain"
	"github.com/resilientmind/coaching-platform/pkg/types"
)

// Request модель запроса доступных слотов на дату
type Request struct {
	Date        time.Time          // Дата для получения слотов (без времени)
	SessionType domain.SessionType // Тип сессии, определяет длительность слота
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time
	SessionType     domain.SessionType
	DurationMinutes int
	Slots           []Slot
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность слота в минутах
}
