package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Rrens/jusoor-api/internal/domain"
)

// settingStatements maps each settable field to its fixed UPDATE statement.
var settingStatements = map[domain.SettingField]string{
	domain.FieldFontSize:                `UPDATE accessibility_settings SET font_size = ? WHERE user_id = ?`,
	domain.FieldContrastMode:            `UPDATE accessibility_settings SET contrast_mode = ? WHERE user_id = ?`,
	domain.FieldColorTheme:              `UPDATE accessibility_settings SET color_theme = ? WHERE user_id = ?`,
	domain.FieldColorblindMode:          `UPDATE accessibility_settings SET colorblind_mode = ? WHERE user_id = ?`,
	domain.FieldTextToSpeechEnabled:     `UPDATE accessibility_settings SET text_to_speech_enabled = ? WHERE user_id = ?`,
	domain.FieldKeyboardNavigationHints: `UPDATE accessibility_settings SET keyboard_navigation_hints = ? WHERE user_id = ?`,
	domain.FieldReducedMotion:           `UPDATE accessibility_settings SET reduced_motion = ? WHERE user_id = ?`,
}

// SettingsRepository handles accessibility settings data access
type SettingsRepository struct {
	db *DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the stored settings, or nil when the user has no row
func (r *SettingsRepository) Get(ctx context.Context, userID int64) (*domain.AccessibilitySettings, error) {
	var s domain.AccessibilitySettings
	err := r.db.reader().queryRow(ctx, `
		SELECT font_size, contrast_mode, color_theme, colorblind_mode,
			text_to_speech_enabled, keyboard_navigation_hints, reduced_motion
		FROM accessibility_settings
		WHERE user_id = ?`, userID,
	).Scan(
		&s.FontSize,
		&s.ContrastMode,
		&s.ColorTheme,
		&s.ColorblindMode,
		&s.TextToSpeechEnabled,
		&s.KeyboardNavigationHints,
		&s.ReducedMotion,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get settings", err)
	}
	return &s, nil
}

// Apply runs one fixed assignment per field inside a single transaction.
// A missing settings row is created with defaults first.
func (r *SettingsRepository) Apply(ctx context.Context, userID int64, assignments []domain.SettingAssignment) error {
	for _, a := range assignments {
		if _, ok := settingStatements[a.Field]; !ok {
			return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, a.Field)
		}
	}

	defaults := domain.DefaultAccessibilitySettings()
	err := r.db.withTx(ctx, func(ctx context.Context, h handle) error {
		var count int64
		if err := h.queryRow(ctx, `SELECT COUNT(*) FROM accessibility_settings WHERE user_id = ?`, userID).Scan(&count); err != nil {
			return err
		}
		if count == 0 {
			if _, err := h.exec(ctx, `
				INSERT INTO accessibility_settings (
					user_id, font_size, contrast_mode, color_theme, colorblind_mode,
					text_to_speech_enabled, keyboard_navigation_hints, reduced_motion
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				userID,
				defaults.FontSize,
				defaults.ContrastMode,
				defaults.ColorTheme,
				defaults.ColorblindMode,
				defaults.TextToSpeechEnabled,
				defaults.KeyboardNavigationHints,
				defaults.ReducedMotion,
			); err != nil {
				return err
			}
		}

		for _, a := range assignments {
			if _, err := h.exec(ctx, settingStatements[a.Field], a.Value, userID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return storeErr("update settings", err)
	}
	return nil
}
