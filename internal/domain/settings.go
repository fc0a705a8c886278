package domain

import "context"

// AccessibilitySettings holds per-user display preferences
type AccessibilitySettings struct {
	FontSize                string `json:"font_size"`
	ContrastMode            string `json:"contrast_mode"`
	ColorTheme              string `json:"color_theme"`
	ColorblindMode          string `json:"colorblind_mode"`
	TextToSpeechEnabled     bool   `json:"text_to_speech_enabled"`
	KeyboardNavigationHints bool   `json:"keyboard_navigation_hints"`
	ReducedMotion           bool   `json:"reduced_motion"`
}

// DefaultAccessibilitySettings returns the settings a new account starts with.
func DefaultAccessibilitySettings() AccessibilitySettings {
	return AccessibilitySettings{
		FontSize:                "medium",
		ContrastMode:            "normal",
		ColorTheme:              "light",
		ColorblindMode:          "none",
		TextToSpeechEnabled:     false,
		KeyboardNavigationHints: true,
		ReducedMotion:           false,
	}
}

// SettingField names one column of the accessibility settings.
type SettingField string

const (
	FieldFontSize                SettingField = "font_size"
	FieldContrastMode            SettingField = "contrast_mode"
	FieldColorTheme              SettingField = "color_theme"
	FieldColorblindMode          SettingField = "colorblind_mode"
	FieldTextToSpeechEnabled     SettingField = "text_to_speech_enabled"
	FieldKeyboardNavigationHints SettingField = "keyboard_navigation_hints"
	FieldReducedMotion           SettingField = "reduced_motion"
)

// SettingAssignment is a single field change.
type SettingAssignment struct {
	Field SettingField
	Value any
}

// AccessibilitySettingsUpdate is a partial update; nil fields are left untouched.
type AccessibilitySettingsUpdate struct {
	FontSize                *string `json:"font_size" validate:"omitempty,oneof=small medium large extra_large"`
	ContrastMode            *string `json:"contrast_mode" validate:"omitempty,oneof=normal high"`
	ColorTheme              *string `json:"color_theme" validate:"omitempty,oneof=light dark auto"`
	ColorblindMode          *string `json:"colorblind_mode" validate:"omitempty,oneof=none deuteranopia protanopia tritanopia"`
	TextToSpeechEnabled     *bool   `json:"text_to_speech_enabled"`
	KeyboardNavigationHints *bool   `json:"keyboard_navigation_hints"`
	ReducedMotion           *bool   `json:"reduced_motion"`
}

// Assignments lists the present fields in a stable order.
func (u AccessibilitySettingsUpdate) Assignments() []SettingAssignment {
	var out []SettingAssignment
	if u.FontSize != nil {
		out = append(out, SettingAssignment{FieldFontSize, *u.FontSize})
	}
	if u.ContrastMode != nil {
		out = append(out, SettingAssignment{FieldContrastMode, *u.ContrastMode})
	}
	if u.ColorTheme != nil {
		out = append(out, SettingAssignment{FieldColorTheme, *u.ColorTheme})
	}
	if u.ColorblindMode != nil {
		out = append(out, SettingAssignment{FieldColorblindMode, *u.ColorblindMode})
	}
	if u.TextToSpeechEnabled != nil {
		out = append(out, SettingAssignment{FieldTextToSpeechEnabled, *u.TextToSpeechEnabled})
	}
	if u.KeyboardNavigationHints != nil {
		out = append(out, SettingAssignment{FieldKeyboardNavigationHints, *u.KeyboardNavigationHints})
	}
	if u.ReducedMotion != nil {
		out = append(out, SettingAssignment{FieldReducedMotion, *u.ReducedMotion})
	}
	return out
}

// SettingsRepository defines the interface for accessibility settings storage
type SettingsRepository interface {
	Get(ctx context.Context, userID int64) (*AccessibilitySettings, error)
	Apply(ctx context.Context, userID int64, assignments []SettingAssignment) error
}
