package service

import (
	"context"
	"fmt"

	"github.com/Rrens/jusoor-api/internal/domain"
)

// SettingsService reads and updates accessibility settings
type SettingsService struct {
	settingsRepo domain.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo domain.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// Get returns the user's settings, falling back to defaults
func (s *SettingsService) Get(ctx context.Context, userID int64) (*domain.AccessibilitySettings, error) {
	settings, err := s.settingsRepo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	if settings == nil {
		defaults := domain.DefaultAccessibilitySettings()
		return &defaults, nil
	}
	return settings, nil
}

// Update applies the present fields. It reports false when there was nothing to change.
func (s *SettingsService) Update(ctx context.Context, userID int64, update domain.AccessibilitySettingsUpdate) (bool, error) {
	assignments := update.Assignments()
	if len(assignments) == 0 {
		return false, nil
	}

	if err := s.settingsRepo.Apply(ctx, userID, assignments); err != nil {
		return false, fmt.Errorf("failed to update settings: %w", err)
	}
	return true, nil
}
