package list_videos

import (
	"errors"
	"net/http"

	"github.com/resilientmind/coaching-platform/internal/api/handlers"
	"github.com/resilientmind/coaching-platform/internal/api/middleware"
	"github.com/resilientmind/coaching-platform/internal/service/content"
	"github.com/resilientmind/coaching-platform/internal/service/content/models"
)

const msgInvalidMembership = "unknown membership"

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

// Handle GET /api/v1/videos
// Тариф берётся из аутентифицированного контекста, не из запроса.
// Админ видит всю библиотеку, либо конкретный тариф через ?membership= (предпросмотр)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	membership := middleware.Membership(r.Context())

	if middleware.IsAdmin(r.Context()) {
		preview := r.URL.Query().Get("membership")
		if preview == "" {
			result, err := h.service.ListAllVideos(r.Context())
			if err != nil {
				h.logger.Error("GET /videos - Failed to list library: %v", err)
				handlers.RespondInternalError(w)
				return
			}
			handlers.RespondJSON(w, http.StatusOK, result)
			return
		}
		membership = preview
	}

	req := &models.ListVideosRequest{
		Membership: membership,
	}

	result, err := h.service.ListVideos(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, content.ErrInvalidInput):
			h.logger.Warn("GET /videos - Invalid membership %q: %v", req.Membership, err)
			handlers.RespondBadRequest(w, msgInvalidMembership)

		default:
			h.logger.Error("GET /videos - Failed to list videos: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
