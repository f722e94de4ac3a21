package models

import (
	"time"

	"github.com/resilientmind/coaching-platform/internal/domain"
)

// Request модели

// CreateVideoRequest запрос на добавление видео в библиотеку
type CreateVideoRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Module      string  `json:"module"`     // "A", "B" или "C"
	WeekNumber  int     `json:"weekNumber"` // 1..5
	VideoURL    string  `json:"videoUrl"`
	IsIntro     bool    `json:"isIntro"`
}

// ListVideosRequest запрос списка видео для клиента
type ListVideosRequest struct {
	Membership string `json:"membership"` // "basic" или "premium"
}

// Response модели

// VideoResponse ответ с данными видео
type VideoResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Module      string    `json:"module"`
	WeekNumber  int       `json:"weekNumber"`
	VideoURL    string    `json:"videoUrl"`
	IsIntro     bool      `json:"isIntro"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// VideoListResponse ответ со списком видео
type VideoListResponse struct {
	Videos []VideoResponse `json:"videos"`
}

// Методы конвертации

// FromDomainVideo конвертирует domain модель в DTO
func FromDomainVideo(v *domain.Video) *VideoResponse {
	if v == nil {
		return nil
	}
	return &VideoResponse{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		Module:      string(v.Module),
		WeekNumber:  v.WeekNumber,
		VideoURL:    v.VideoURL,
		IsIntro:     v.IsIntro,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

// FromDomainVideoList конвертирует список domain моделей в DTO
func FromDomainVideoList(videos []*domain.Video) *VideoListResponse {
	resp := &VideoListResponse{
		Videos: make([]VideoResponse, 0, len(videos)),
	}
	for _, video := range videos {
		if videoResp := FromDomainVideo(video); videoResp != nil {
			resp.Videos = append(resp.Videos, *videoResp)
		}
	}
	return resp
}
