package handler

import (
	"net/http"
	"strconv"

	"github.com/Rrens/jusoor-api/internal/api/response"
	"github.com/Rrens/jusoor-api/internal/domain"
	"github.com/Rrens/jusoor-api/internal/service"
)

// TranslationHandler handles translation endpoints
type TranslationHandler struct {
	translationService *service.TranslationService
}

// NewTranslationHandler creates a new translation handler
func NewTranslationHandler(translationService *service.TranslationService) *TranslationHandler {
	return &TranslationHandler{translationService: translationService}
}

// Translate runs a translation and records it in the user's history
func (h *TranslationHandler) Translate(w http.ResponseWriter, r *http.Request) {
	user, ok := principal(w, r)
	if !ok {
		return
	}

	var input domain.TranslationRequest
	if !decodeAndValidate(w, r, &input) {
		return
	}

	result, err := h.translationService.Translate(r.Context(), user.ID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.OK(w, result)
}

// History lists the user's translations
func (h *TranslationHandler) History(w http.ResponseWriter, r *http.Request) {
	user, ok := principal(w, r)
	if !ok {
		return
	}

	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset")
	if !ok {
		return
	}

	history, err := h.translationService.History(r.Context(), user.ID, limit, offset)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.OK(w, history)
}

// Delete removes a translation owned by the user, or any translation for admins
func (h *TranslationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := principal(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, "id", "translation")
	if !ok {
		return
	}

	if err := h.translationService.Delete(r.Context(), user, id); err != nil {
		writeError(w, r, err)
		return
	}

	response.OK(w, map[string]any{
		"message": "Translation deleted",
	})
}

// queryInt reads an optional integer query parameter; absent means zero.
func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		response.BadRequest(w, "invalid "+name)
		return 0, false
	}
	return v, true
}
