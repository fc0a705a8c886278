package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Rrens/jusoor-api/internal/domain"
	"github.com/Rrens/jusoor-api/internal/translator"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 100
)

// TranslationService dispatches translations and keeps the history
type TranslationService struct {
	dispatcher      Dispatcher
	translationRepo domain.TranslationRepository
	now             func() time.Time
}

// NewTranslationService creates a new translation service
func NewTranslationService(dispatcher Dispatcher, translationRepo domain.TranslationRepository) *TranslationService {
	return &TranslationService{
		dispatcher:      dispatcher,
		translationRepo: translationRepo,
		now:             time.Now,
	}
}

// Translate dispatches the request and records it for the user.
// Nothing is stored when the dispatch fails.
func (s *TranslationService) Translate(ctx context.Context, userID int64, req domain.TranslationRequest) (*domain.TranslationResponse, error) {
	inputLanguage := req.InputLanguage
	if inputLanguage == "" {
		inputLanguage = defaultLanguage
	}
	outputLanguage := req.OutputLanguage
	if outputLanguage == "" {
		outputLanguage = defaultLanguage
	}

	result, err := s.dispatcher.Dispatch(ctx, translator.Request{
		InputKind:      translator.Kind(req.InputType),
		InputContent:   req.InputContent,
		InputLanguage:  inputLanguage,
		OutputKind:     translator.Kind(req.OutputType),
		OutputLanguage: outputLanguage,
	})
	if err != nil {
		return nil, err
	}

	record := &domain.Translation{
		UserID:         userID,
		InputType:      req.InputType,
		InputContent:   truncateRunes(req.InputContent, domain.MaxTranslationContent),
		InputLanguage:  inputLanguage,
		OutputType:     req.OutputType,
		OutputContent:  truncateRunes(result.OutputContent, domain.MaxTranslationContent),
		OutputLanguage: outputLanguage,
		Duration:       result.Duration.Seconds(),
		CreatedAt:      s.now().UTC(),
	}
	if err := s.translationRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record translation: %w", err)
	}

	log.Debug().
		Int64("user_id", userID).
		Int64("translation_id", record.ID).
		Str("pair", req.InputType+"->"+req.OutputType).
		Dur("duration", result.Duration).
		Msg("translation recorded")

	return &domain.TranslationResponse{
		TranslationID: record.ID,
		Result:        result.Output,
		OutputContent: result.OutputContent,
		Duration:      record.Duration,
	}, nil
}

// History returns a page of the user's translations, newest first
func (s *TranslationService) History(ctx context.Context, userID int64, limit, offset int) (*domain.TranslationHistory, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	translations, err := s.translationRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list translations: %w", err)
	}
	total, err := s.translationRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count translations: %w", err)
	}

	return &domain.TranslationHistory{
		Translations: translations,
		Total:        total,
		Limit:        limit,
		Offset:       offset,
	}, nil
}

// Delete removes a translation owned by the requester. Admins may delete any record.
func (s *TranslationService) Delete(ctx context.Context, requester *domain.User, translationID int64) error {
	t, err := s.translationRepo.Get(ctx, translationID)
	if err != nil {
		return fmt.Errorf("failed to get translation: %w", err)
	}
	if t == nil {
		return fmt.Errorf("%w: translation not found", domain.ErrNotFound)
	}
	if t.UserID != requester.ID && !requester.IsAdmin() {
		return domain.ErrForbidden
	}

	if err := s.translationRepo.Delete(ctx, translationID); err != nil {
		return fmt.Errorf("failed to delete translation: %w", err)
	}

	log.Info().
		Int64("translation_id", translationID).
		Int64("owner_id", t.UserID).
		Int64("requester_id", requester.ID).
		Msg("translation deleted")
	return nil
}
