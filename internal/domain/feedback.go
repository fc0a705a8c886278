package domain

import (
	"context"
	"time"
)

// FeedbackStatus tracks admin triage of a feedback item
type FeedbackStatus string

const (
	FeedbackPending  FeedbackStatus = "pending"
	FeedbackReviewed FeedbackStatus = "reviewed"
	FeedbackResolved FeedbackStatus = "resolved"
)

// Valid reports whether s is one of the known statuses.
func (s FeedbackStatus) Valid() bool {
	switch s {
	case FeedbackPending, FeedbackReviewed, FeedbackResolved:
		return true
	}
	return false
}

// Feedback is a user-submitted rating or comment
type Feedback struct {
	ID            int64          `json:"id"`
	UserID        int64          `json:"-"`
	TranslationID *int64         `json:"translation_id,omitempty"`
	SessionID     *int64         `json:"session_id,omitempty"`
	FeedbackType  string         `json:"feedback_type"`
	Rating        *int           `json:"rating"`
	Comment       *string        `json:"comment"`
	Status        FeedbackStatus `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`

	// Populated only in admin listings.
	UserEmail    *string `json:"email,omitempty"`
	UserFullName *string `json:"full_name,omitempty"`
}

// FeedbackCreate is the body of POST /api/feedback
type FeedbackCreate struct {
	FeedbackType  string  `json:"feedback_type" validate:"required,oneof=general bug feature translation_quality"`
	Rating        *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment       *string `json:"comment" validate:"omitempty,max=5000"`
	TranslationID *int64  `json:"translation_id"`
	SessionID     *int64  `json:"session_id"`
}

// FeedbackRepository defines the interface for feedback storage
type FeedbackRepository interface {
	Create(ctx context.Context, f *Feedback) error
	ListByUser(ctx context.Context, userID int64) ([]Feedback, error)
	ListAll(ctx context.Context) ([]Feedback, error)
	UpdateStatus(ctx context.Context, id int64, status FeedbackStatus) error
}
