package models

import (
	"time"

	"github.com/resilientmind/coaching-platform/internal/domain"
)

// Request модели

// UpdateWeeklyRuleRequest запрос на изменение правила одного дня недели
// День приходит в пути запроса, не в теле
type UpdateWeeklyRuleRequest struct {
	DayOfWeek int    `json:"-"`         // 0=Sunday .. 6=Saturday
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "17:00"
	IsActive  bool   `json:"isActive"`
}

// AddBlockedDateRequest запрос на блокировку даты
type AddBlockedDateRequest struct {
	Date   time.Time `json:"-"`
	Reason *string   `json:"reason,omitempty"`
}

// Response модели

// WeeklyRuleResponse правило одного дня недели
type WeeklyRuleResponse struct {
	DayOfWeek int    `json:"dayOfWeek"`
	DayName   string `json:"dayName"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsActive  bool   `json:"isActive"`
}

// WeeklyScheduleResponse недельное расписание целиком
type WeeklyScheduleResponse struct {
	Rules []WeeklyRuleResponse `json:"rules"`
}

// BlockedDateResponse одна заблокированная дата
type BlockedDateResponse struct {
	Date      string    `json:"date"` // "2026-09-15"
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlockedDateListResponse список заблокированных дат
type BlockedDateListResponse struct {
	BlockedDates []BlockedDateResponse `json:"blockedDates"`
}

// Методы конвертации

// FromDomainRule конвертирует domain правило в DTO
func FromDomainRule(r *domain.WeeklyAvailabilityRule) WeeklyRuleResponse {
	return WeeklyRuleResponse{
		DayOfWeek: int(r.DayOfWeek),
		DayName:   r.DayOfWeek.String(),
		StartTime: r.StartTime.String(),
		EndTime:   r.EndTime.String(),
		IsActive:  r.IsActive,
	}
}

// FromDomainRules конвертирует список правил в DTO расписания
func FromDomainRules(rules []*domain.WeeklyAvailabilityRule) *WeeklyScheduleResponse {
	resp := &WeeklyScheduleResponse{
		Rules: make([]WeeklyRuleResponse, 0, len(rules)),
	}
	for _, rule := range rules {
		resp.Rules = append(resp.Rules, FromDomainRule(rule))
	}
	return resp
}

// FromDomainBlockedDate конвертирует заблокированную дату в DTO
func FromDomainBlockedDate(b *domain.BlockedDate) BlockedDateResponse {
	return BlockedDateResponse{
		Date:      b.Date.Format(domain.DateFormat),
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBlockedDates конвертирует список заблокированных дат в DTO
func FromDomainBlockedDates(blocked []*domain.BlockedDate) *BlockedDateListResponse {
	resp := &BlockedDateListResponse{
		BlockedDates: make([]BlockedDateResponse, 0, len(blocked)),
	}
	for _, b := range blocked {
		resp.BlockedDates = append(resp.BlockedDates, FromDomainBlockedDate(b))
	}
	return resp
}
