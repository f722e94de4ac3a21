package get_bookable_dates

import (
	"github.com/resilientmind/coaching-platform/internal/domain"
	getBookableDates "github.com/resilientmind/coaching-platform/internal/usecase/get_bookable_dates"
)

// DatesResponse HTTP response model
type DatesResponse struct {
	From  string         `json:"from"`
	To    string         `json:"to"`
	Dates []DateResponse `json:"dates"`
}

// DateResponse доступность одной даты
type DateResponse struct {
	Date     string `json:"date"` // "2026-09-15"
	Bookable bool   `json:"bookable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookableDates.Response) *DatesResponse {
	dates := make([]DateResponse, 0, len(resp.Dates))
	for _, d := range resp.Dates {
		dates = append(dates, DateResponse{
			Date:     d.Date.Format(domain.DateFormat),
			Bookable: d.Bookable,
		})
	}

	return &DatesResponse{
		From:  resp.From.Format(domain.DateFormat),
		To:    resp.To.Format(domain.DateFormat),
		Dates: dates,
	}
}
