package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/resilientmind/coaching-platform/internal/domain"
	"github.com/resilientmind/coaching-platform/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientID    uuid.UUID          // ID клиента из auth-провайдера
	ClientName  string             // Имя клиента
	ClientEmail string             // Email для подтверждения
	SessionType domain.SessionType // Тип сессии, определяет длительность и цену
	Date        time.Time          // Дата сессии (без времени)
	StartTime   types.TimeString   // Время начала (например, "10:00")
	Notes       *string            // Заметки клиента (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	ClientID        uuid.UUID
	ClientName      string
	ClientEmail     string
	SessionType     domain.SessionType
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	PricePaid       float64
	Status          string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
