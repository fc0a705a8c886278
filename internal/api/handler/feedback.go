package handler

import (
	"net/http"

	"github.com/Rrens/jusoor-api/internal/api/response"
	"github.com/Rrens/jusoor-api/internal/domain"
	"github.com/Rrens/jusoor-api/internal/service"
)

// FeedbackHandler handles user feedback endpoints
type FeedbackHandler struct {
	feedbackService *service.FeedbackService
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(feedbackService *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// Submit stores feedback from the current user
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user, ok := principal(w, r)
	if !ok {
		return
	}

	var input domain.FeedbackCreate
	if !decodeAndValidate(w, r, &input) {
		return
	}

	f, err := h.feedbackService.Submit(r.Context(), user.ID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Created(w, map[string]any{
		"feedback_id": f.ID,
		"message":     "Feedback submitted",
	})
}

// List returns the current user's feedback
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := principal(w, r)
	if !ok {
		return
	}

	items, err := h.feedbackService.ListOwn(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.OK(w, map[string]any{
		"feedback": items,
	})
}
