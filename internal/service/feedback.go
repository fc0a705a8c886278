package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Rrens/jusoor-api/internal/domain"
)

// FeedbackService handles user feedback and its admin triage
type FeedbackService struct {
	feedbackRepo domain.FeedbackRepository
	now          func() time.Time
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(feedbackRepo domain.FeedbackRepository) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		now:          time.Now,
	}
}

// Submit stores feedback from the user
func (s *FeedbackService) Submit(ctx context.Context, userID int64, input domain.FeedbackCreate) (*domain.Feedback, error) {
	f := &domain.Feedback{
		UserID:        userID,
		TranslationID: input.TranslationID,
		SessionID:     input.SessionID,
		FeedbackType:  input.FeedbackType,
		Rating:        input.Rating,
		Comment:       input.Comment,
		Status:        domain.FeedbackPending,
		CreatedAt:     s.now().UTC(),
	}

	if err := s.feedbackRepo.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("failed to submit feedback: %w", err)
	}
	return f, nil
}

// ListOwn returns the user's feedback, newest first
func (s *FeedbackService) ListOwn(ctx context.Context, userID int64) ([]domain.Feedback, error) {
	items, err := s.feedbackRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return items, nil
}

// ListAll returns every feedback item with its author
func (s *FeedbackService) ListAll(ctx context.Context) ([]domain.Feedback, error) {
	items, err := s.feedbackRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return items, nil
}

// UpdateStatus moves a feedback item to a new triage status
func (s *FeedbackService) UpdateStatus(ctx context.Context, feedbackID int64, status domain.FeedbackStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: status must be one of pending, reviewed, resolved", domain.ErrInvalidInput)
	}
	if err := s.feedbackRepo.UpdateStatus(ctx, feedbackID, status); err != nil {
		return fmt.Errorf("failed to update feedback status: %w", err)
	}
	return nil
}
