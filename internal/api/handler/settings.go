package handler

import (
	"net/http"

	"github.com/Rrens/jusoor-api/internal/api/response"
	"github.com/Rrens/jusoor-api/internal/domain"
	"github.com/Rrens/jusoor-api/internal/service"
)

// SettingsHandler handles accessibility settings endpoints
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get returns the current user's accessibility settings
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := principal(w, r)
	if !ok {
		return
	}

	settings, err := h.settingsService.Get(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.OK(w, map[string]any{
		"settings": settings,
	})
}

// Update applies a partial settings update
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := principal(w, r)
	if !ok {
		return
	}

	var input domain.AccessibilitySettingsUpdate
	if !decodeAndValidate(w, r, &input) {
		return
	}

	changed, err := h.settingsService.Update(r.Context(), user.ID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	message := "Settings updated"
	if !changed {
		message = "No changes"
	}
	response.OK(w, map[string]any{
		"message": message,
	})
}
