package domain

import (
	"context"
	"time"
)

// MaxTranslationContent caps the stored input and output content of a record.
const MaxTranslationContent = 1000

// Translation is a persisted translation history record
type Translation struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"-"`
	InputType      string    `json:"input_type"`
	InputContent   string    `json:"input_content"`
	InputLanguage  string    `json:"input_language"`
	OutputType     string    `json:"output_type"`
	OutputContent  string    `json:"output_content"`
	OutputLanguage string    `json:"output_language"`
	Duration       float64   `json:"translation_duration"`
	CreatedAt      time.Time `json:"created_at"`
}

// TranslationRequest is the body of POST /api/translate
type TranslationRequest struct {
	InputType      string `json:"input_type" validate:"required"`
	InputContent   string `json:"input_content" validate:"required"`
	InputLanguage  string `json:"input_language"`
	OutputType     string `json:"output_type" validate:"required"`
	OutputLanguage string `json:"output_language"`
}

// TranslationResponse is returned after a successful translation
type TranslationResponse struct {
	TranslationID int64   `json:"translation_id"`
	Result        any     `json:"result"`
	OutputContent string  `json:"output_content"`
	Duration      float64 `json:"duration"`
}

// TranslationHistory is a page of a user's translations
type TranslationHistory struct {
	Translations []Translation `json:"translations"`
	Total        int64         `json:"total"`
	Limit        int           `json:"limit"`
	Offset       int           `json:"offset"`
}

// TranslationRepository defines the interface for translation history storage
type TranslationRepository interface {
	Create(ctx context.Context, t *Translation) error
	Get(ctx context.Context, id int64) (*Translation, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]Translation, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}
