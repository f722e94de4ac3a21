package site_settings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/resilientmind/coaching-platform/internal/api/handlers"
	"github.com/resilientmind/coaching-platform/internal/service/settings"
	"github.com/resilientmind/coaching-platform/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidKey         = "invalid setting key"
	msgSettingNotFound    = "setting not found"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/admin/settings
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/settings - Failed to list settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpsert PUT /api/v1/admin/settings/{key}
func (h *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	var req models.UpsertSettingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings/{key} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.Key = key

	result, err := h.service.Upsert(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /admin/settings/{key} - Invalid key %q: %v", key, err)
			handlers.RespondBadRequest(w, msgInvalidKey)

		default:
			h.logger.Error("PUT /admin/settings/{key} - Failed to save setting key=%s: %v", key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/settings/{key} - Setting saved: key=%s", key)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/admin/settings/{key}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	if err := h.service.Delete(r.Context(), key); err != nil {
		switch {
		case errors.Is(err, settings.ErrSettingNotFound):
			h.logger.Warn("DELETE /admin/settings/{key} - Setting not found: key=%s", key)
			handlers.RespondNotFound(w, msgSettingNotFound)

		default:
			h.logger.Error("DELETE /admin/settings/{key} - Failed to delete setting key=%s: %v", key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/settings/{key} - Setting deleted: key=%s", key)
	handlers.RespondNoContent(w)
}
