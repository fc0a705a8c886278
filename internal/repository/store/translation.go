package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Rrens/jusoor-api/internal/domain"
)

// TranslationRepository handles translation history data access
type TranslationRepository struct {
	db *DB
}

// NewTranslationRepository creates a new translation repository
func NewTranslationRepository(db *DB) *TranslationRepository {
	return &TranslationRepository{db: db}
}

const translationColumns = `id, user_id, input_type, input_content, input_language,
	output_type, output_content, output_language, translation_duration, created_at`

// Create stores a translation record
func (r *TranslationRepository) Create(ctx context.Context, t *domain.Translation) error {
	err := r.db.withTx(ctx, func(ctx context.Context, h handle) error {
		id, err := h.insert(ctx, `
			INSERT INTO translation_history (
				user_id, input_type, input_content, input_language,
				output_type, output_content, output_language, translation_duration, created_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.UserID,
			t.InputType,
			t.InputContent,
			t.InputLanguage,
			t.OutputType,
			t.OutputContent,
			t.OutputLanguage,
			t.Duration,
			t.CreatedAt,
		)
		if err != nil {
			return err
		}
		t.ID = id
		return nil
	})
	if err != nil {
		return storeErr("create translation", err)
	}
	return nil
}

// Get retrieves a translation by ID
func (r *TranslationRepository) Get(ctx context.Context, id int64) (*domain.Translation, error) {
	t, err := scanTranslation(r.db.reader().queryRow(ctx,
		`SELECT `+translationColumns+` FROM translation_history WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get translation", err)
	}
	return t, nil
}

// ListByUser returns a page of the user's translations, newest first
func (r *TranslationRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Translation, error) {
	rows, err := r.db.reader().query(ctx, `
		SELECT `+translationColumns+`
		FROM translation_history
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, storeErr("list translations", err)
	}
	defer rows.Close()

	translations := make([]domain.Translation, 0)
	for rows.Next() {
		t, err := scanTranslation(rows)
		if err != nil {
			return nil, storeErr("scan translation", err)
		}
		translations = append(translations, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list translations", err)
	}

	return translations, nil
}

// CountByUser counts the user's translations
func (r *TranslationRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.reader().queryRow(ctx,
		`SELECT COUNT(*) FROM translation_history WHERE user_id = ?`, userID).Scan(&count)
	if err != nil {
		return 0, storeErr("count translations", err)
	}
	return count, nil
}

// Delete removes a translation
func (r *TranslationRepository) Delete(ctx context.Context, id int64) error {
	var affected int64
	err := r.db.withTx(ctx, func(ctx context.Context, h handle) error {
		n, err := h.exec(ctx, `DELETE FROM translation_history WHERE id = ?`, id)
		affected = n
		return err
	})
	if err != nil {
		return storeErr("delete translation", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: translation not found", domain.ErrNotFound)
	}
	return nil
}

func scanTranslation(s scanner) (*domain.Translation, error) {
	var t domain.Translation
	err := s.Scan(
		&t.ID,
		&t.UserID,
		&t.InputType,
		&t.InputContent,
		&t.InputLanguage,
		&t.OutputType,
		&t.OutputContent,
		&t.OutputLanguage,
		&t.Duration,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
