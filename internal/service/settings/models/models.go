package models

import (
	"time"

	"github.com/resilientmind/coaching-platform/internal/domain"
)

// UpsertSettingRequest запрос на создание или обновление настройки
type UpsertSettingRequest struct {
	Key         string  `json:"-"`
	Value       *string `json:"value"`
	Description *string `json:"description,omitempty"`
}

// SettingResponse ответ с одной настройкой
type SettingResponse struct {
	Key         string    `json:"key"`
	Value       *string   `json:"value"`
	Description *string   `json:"description,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SettingListResponse ответ со списком настроек
type SettingListResponse struct {
	Settings []SettingResponse `json:"settings"`
}

// FromDomainSetting конвертирует domain модель в DTO
func FromDomainSetting(s *domain.SiteSetting) *SettingResponse {
	if s == nil {
		return nil
	}
	return &SettingResponse{
		Key:         s.Key,
		Value:       s.Value,
		Description: s.Description,
		UpdatedAt:   s.UpdatedAt,
	}
}

// FromDomainSettingList конвертирует список domain моделей в DTO
func FromDomainSettingList(list []*domain.SiteSetting) *SettingListResponse {
	resp := &SettingListResponse{
		Settings: make([]SettingResponse, 0, len(list)),
	}
	for _, s := range list {
		if settingResp := FromDomainSetting(s); settingResp != nil {
			resp.Settings = append(resp.Settings, *settingResp)
		}
	}
	return resp
}
