package handler

import (
	"net/http"

	"github.com/Rrens/jusoor-api/internal/api/response"
	"github.com/Rrens/jusoor-api/internal/domain"
	"github.com/Rrens/jusoor-api/internal/service"
)

// SessionHandler handles live session endpoints
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler creates a new live session handler
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Start opens a live session
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	user, ok := principal(w, r)
	if !ok {
		return
	}

	started, err := h.sessionService.Start(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Created(w, started)
}

// AddMessage logs a message in a live session. The message may be sent as a
// JSON body or as query parameters.
func (h *SessionHandler) AddMessage(w http.ResponseWriter, r *http.Request) {
	user, ok := principal(w, r)
	if !ok {
		return
	}

	sessionID, ok := pathID(w, r, "id", "session")
	if !ok {
		return
	}

	var input domain.SessionMessageCreate
	present, ok := decodeOptional(w, r, &input)
	if !ok {
		return
	}
	if !present {
		q := r.URL.Query()
		input = domain.SessionMessageCreate{
			MessageType:       q.Get("message_type"),
			OriginalContent:   q.Get("original_content"),
			TranslatedContent: q.Get("translated_content"),
		}
		if !validateInput(w, &input) {
			return
		}
	}

	msg, err := h.sessionService.AddMessage(r.Context(), user.ID, sessionID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.OK(w, map[string]any{
		"message_id": msg.ID,
	})
}

// End closes a live session
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	user, ok := principal(w, r)
	if !ok {
		return
	}

	sessionID, ok := pathID(w, r, "id", "session")
	if !ok {
		return
	}

	duration, err := h.sessionService.End(r.Context(), user.ID, sessionID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.OK(w, map[string]any{
		"duration": duration,
	})
}

// Messages lists the messages of a live session
func (h *SessionHandler) Messages(w http.ResponseWriter, r *http.Request) {
	user, ok := principal(w, r)
	if !ok {
		return
	}

	sessionID, ok := pathID(w, r, "id", "session")
	if !ok {
		return
	}

	messages, err := h.sessionService.Messages(r.Context(), user.ID, sessionID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.OK(w, map[string]any{
		"messages": messages,
	})
}
