package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Rrens/jusoor-api/internal/domain"
)

// FeedbackRepository handles feedback data access
type FeedbackRepository struct {
	db *DB
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create stores a feedback item
func (r *FeedbackRepository) Create(ctx context.Context, f *domain.Feedback) error {
	err := r.db.withTx(ctx, func(ctx context.Context, h handle) error {
		id, err := h.insert(ctx, `
			INSERT INTO feedback (user_id, translation_id, session_id, feedback_type, rating, comment, status, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			f.UserID,
			nullInt64(f.TranslationID),
			nullInt64(f.SessionID),
			f.FeedbackType,
			nullInt(f.Rating),
			nullString(f.Comment),
			string(f.Status),
			f.CreatedAt,
		)
		if err != nil {
			return err
		}
		f.ID = id
		return nil
	})
	if err != nil {
		return storeErr("create feedback", err)
	}
	return nil
}

// ListByUser returns the user's feedback, newest first
func (r *FeedbackRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Feedback, error) {
	rows, err := r.db.reader().query(ctx, `
		SELECT id, user_id, translation_id, session_id, feedback_type, rating, comment, status, created_at
		FROM feedback
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC`, userID,
	)
	if err != nil {
		return nil, storeErr("list feedback", err)
	}
	defer rows.Close()

	items := make([]domain.Feedback, 0)
	for rows.Next() {
		f, err := scanFeedback(rows, false)
		if err != nil {
			return nil, storeErr("scan feedback", err)
		}
		items = append(items, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list feedback", err)
	}
	return items, nil
}

// ListAll returns every feedback item joined with its author, newest first
func (r *FeedbackRepository) ListAll(ctx context.Context) ([]domain.Feedback, error) {
	rows, err := r.db.reader().query(ctx, `
		SELECT f.id, f.user_id, f.translation_id, f.session_id, f.feedback_type, f.rating,
			f.comment, f.status, f.created_at, u.email, u.full_name
		FROM feedback f
		LEFT JOIN users u ON u.id = f.user_id
		ORDER BY f.created_at DESC, f.id DESC`,
	)
	if err != nil {
		return nil, storeErr("list all feedback", err)
	}
	defer rows.Close()

	items := make([]domain.Feedback, 0)
	for rows.Next() {
		f, err := scanFeedback(rows, true)
		if err != nil {
			return nil, storeErr("scan feedback", err)
		}
		items = append(items, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list all feedback", err)
	}
	return items, nil
}

// UpdateStatus sets the triage status of a feedback item
func (r *FeedbackRepository) UpdateStatus(ctx context.Context, id int64, status domain.FeedbackStatus) error {
	var affected int64
	err := r.db.withTx(ctx, func(ctx context.Context, h handle) error {
		n, err := h.exec(ctx, `UPDATE feedback SET status = ? WHERE id = ?`, string(status), id)
		affected = n
		return err
	})
	if err != nil {
		return storeErr("update feedback status", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: feedback not found", domain.ErrNotFound)
	}
	return nil
}

func scanFeedback(s scanner, withAuthor bool) (*domain.Feedback, error) {
	var (
		f             domain.Feedback
		translationID sql.NullInt64
		sessionID     sql.NullInt64
		rating        sql.NullInt64
		comment       sql.NullString
		status        string
		email         sql.NullString
		fullName      sql.NullString
	)

	dest := []any{
		&f.ID,
		&f.UserID,
		&translationID,
		&sessionID,
		&f.FeedbackType,
		&rating,
		&comment,
		&status,
		&f.CreatedAt,
	}
	if withAuthor {
		dest = append(dest, &email, &fullName)
	}
	if err := s.Scan(dest...); err != nil {
		return nil, err
	}

	f.Status = domain.FeedbackStatus(status)
	if translationID.Valid {
		f.TranslationID = &translationID.Int64
	}
	if sessionID.Valid {
		f.SessionID = &sessionID.Int64
	}
	if rating.Valid {
		v := int(rating.Int64)
		f.Rating = &v
	}
	if comment.Valid {
		f.Comment = &comment.String
	}
	if email.Valid {
		f.UserEmail = &email.String
	}
	if fullName.Valid {
		f.UserFullName = &fullName.String
	}
	return &f, nil
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}
