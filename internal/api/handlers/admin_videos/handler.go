package admin_videos

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/resilientmind/coaching-platform/internal/api/handlers"
	"github.com/resilientmind/coaching-platform/internal/service/content"
	"github.com/resilientmind/coaching-platform/internal/service/content/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidVideoID     = "invalid video id"
	msgInvalidVideo       = "invalid video attributes"
	msgVideoNotFound      = "video not found"
)

type Handler struct {
	service ContentService
	logger  Logger
}

func NewHandler(service ContentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/admin/videos
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListAllVideos(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/videos - Failed to list videos: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/admin/videos
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVideoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/videos - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateVideo(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, content.ErrInvalidInput):
			h.logger.Warn("POST /admin/videos - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidVideo)

		default:
			h.logger.Error("POST /admin/videos - Failed to create video: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/videos - Video created: id=%d, title=%q", result.ID, result.Title)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleDelete DELETE /api/v1/admin/videos/{videoId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	videoID, err := strconv.ParseInt(mux.Vars(r)["videoId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/videos/{id} - Invalid video id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVideoID)
		return
	}

	if err := h.service.DeleteVideo(r.Context(), videoID); err != nil {
		switch {
		case errors.Is(err, content.ErrVideoNotFound):
			h.logger.Warn("DELETE /admin/videos/{id} - Video not found: id=%d", videoID)
			handlers.RespondNotFound(w, msgVideoNotFound)

		default:
			h.logger.Error("DELETE /admin/videos/{id} - Failed to delete video: id=%d, error=%v", videoID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/videos/{id} - Video deleted: id=%d", videoID)
	handlers.RespondNoContent(w)
}
