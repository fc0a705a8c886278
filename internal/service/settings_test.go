package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Rrens/jusoor-api/internal/domain"
)

func TestSettingsService_Get(t *testing.T) {
	ctx := context.Background()

	repo := new(MockSettingsRepository)
	svc := NewSettingsService(repo)

	stored := &domain.AccessibilitySettings{FontSize: "large", ContrastMode: "high"}
	repo.On("Get", ctx, int64(1)).Return(stored, nil)
	repo.On("Get", ctx, int64(2)).Return(nil, nil)

	got, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	got, err = svc.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAccessibilitySettings(), *got)
}

func TestSettingsService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("no changes", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		svc := NewSettingsService(repo)

		changed, err := svc.Update(ctx, 1, domain.AccessibilitySettingsUpdate{})
		require.NoError(t, err)
		assert.False(t, changed)
		repo.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("fixed assignments", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		svc := NewSettingsService(repo)

		dark, off := "dark", false
		repo.On("Apply", ctx, int64(1), []domain.SettingAssignment{
			{Field: domain.FieldColorTheme, Value: "dark"},
			{Field: domain.FieldKeyboardNavigationHints, Value: false},
		}).Return(nil)

		changed, err := svc.Update(ctx, 1, domain.AccessibilitySettingsUpdate{ColorTheme: &dark, KeyboardNavigationHints: &off})
		require.NoError(t, err)
		assert.True(t, changed)
		repo.AssertExpectations(t)
	})
}
