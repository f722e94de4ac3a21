package get_available_slots

import (
	"github.com/resilientmind/coaching-platform/internal/domain"
	getAvailableSlots "github.com/resilientmind/coaching-platform/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date            string         `json:"date"` // "2026-09-15"
	SessionType     string         `json:"sessionType"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// SlotResponse один доступный слот
type SlotResponse struct {
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
		})
	}

	return &SlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		SessionType:     string(resp.SessionType),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
