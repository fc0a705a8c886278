package handler

import (
	"net/http"

	"github.com/Rrens/jusoor-api/internal/api/response"
	"github.com/Rrens/jusoor-api/internal/domain"
	"github.com/Rrens/jusoor-api/internal/service"
)

// AdminHandler handles admin dashboard endpoints
type AdminHandler struct {
	adminService    *service.AdminService
	feedbackService *service.FeedbackService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *service.AdminService, feedbackService *service.FeedbackService) *AdminHandler {
	return &AdminHandler{
		adminService:    adminService,
		feedbackService: feedbackService,
	}
}

// Users lists every account
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.OK(w, map[string]any{
		"users": users,
	})
}

// UpdateUser changes a user's role or active flag
func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, "id", "user")
	if !ok {
		return
	}

	var input domain.UserAdminUpdate
	if !decodeAndValidate(w, r, &input) {
		return
	}

	user, err := h.adminService.UpdateUser(r.Context(), actor, id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.OK(w, map[string]any{
		"user": user,
	})
}

// Stats returns dashboard counts
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminService.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.OK(w, map[string]any{
		"stats": stats,
	})
}

// Feedback lists all feedback with author details
func (h *AdminHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	items, err := h.feedbackService.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.OK(w, map[string]any{
		"feedback": items,
	})
}

// UpdateFeedbackStatus sets a feedback item's triage status. The status comes
// from the JSON body or the status query parameter.
func (h *AdminHandler) UpdateFeedbackStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "feedback")
	if !ok {
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if _, ok := decodeOptional(w, r, &input); !ok {
		return
	}
	if input.Status == "" {
		input.Status = r.URL.Query().Get("status")
	}
	if input.Status == "" {
		response.BadRequest(w, map[string]string{"status": "field is required"})
		return
	}

	if err := h.feedbackService.UpdateStatus(r.Context(), id, domain.FeedbackStatus(input.Status)); err != nil {
		writeError(w, r, err)
		return
	}

	response.OK(w, map[string]any{
		"message": "Status updated",
	})
}
