package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Rrens/jusoor-api/internal/domain"
)

func TestFeedbackService_Submit(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

	repo := new(MockFeedbackRepository)
	svc := NewFeedbackService(repo)
	svc.now = fixedClock(now)

	rating := 5
	repo.On("Create", ctx, mock.MatchedBy(func(f *domain.Feedback) bool {
		return f.UserID == 1 && f.Status == domain.FeedbackPending && *f.Rating == 5 && f.CreatedAt.Equal(now)
	})).Run(func(args mock.Arguments) { args.Get(1).(*domain.Feedback).ID = 11 }).Return(nil)

	f, err := svc.Submit(ctx, 1, domain.FeedbackCreate{FeedbackType: "general", Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, int64(11), f.ID)
	repo.AssertExpectations(t)
}

func TestFeedbackService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	repo := new(MockFeedbackRepository)
	svc := NewFeedbackService(repo)

	repo.On("UpdateStatus", ctx, int64(3), domain.FeedbackReviewed).Return(nil)
	repo.On("UpdateStatus", ctx, int64(404), domain.FeedbackResolved).Return(domain.ErrNotFound)

	require.NoError(t, svc.UpdateStatus(ctx, 3, domain.FeedbackReviewed))
	assert.ErrorIs(t, svc.UpdateStatus(ctx, 404, domain.FeedbackResolved), domain.ErrNotFound)

	err := svc.UpdateStatus(ctx, 3, "archived")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "UpdateStatus", ctx, int64(3), domain.FeedbackStatus("archived"))
}
