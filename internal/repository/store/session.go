package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Rrens/jusoor-api/internal/domain"
)

// SessionRepository handles live session data access
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new live session repository
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create opens a live session
func (r *SessionRepository) Create(ctx context.Context, session *domain.LiveSession) error {
	err := r.db.withTx(ctx, func(ctx context.Context, h handle) error {
		id, err := h.insert(ctx, `
			INSERT INTO live_sessions (user_id, session_token, session_name, start_time, is_active)
			VALUES (?, ?, ?, ?, ?)`,
			session.UserID,
			session.SessionToken,
			session.SessionName,
			session.StartTime,
			true,
		)
		if err != nil {
			return err
		}
		session.ID = id
		session.IsActive = true
		return nil
	})
	if err != nil {
		return storeErr("create session", err)
	}
	return nil
}

// Get retrieves a live session by ID
func (r *SessionRepository) Get(ctx context.Context, id int64) (*domain.LiveSession, error) {
	var (
		s       domain.LiveSession
		endTime sql.NullTime
	)
	err := r.db.reader().queryRow(ctx, `
		SELECT id, user_id, session_token, session_name, start_time, end_time,
			duration_seconds, messages_count, is_active
		FROM live_sessions
		WHERE id = ?`, id,
	).Scan(
		&s.ID,
		&s.UserID,
		&s.SessionToken,
		&s.SessionName,
		&s.StartTime,
		&endTime,
		&s.DurationSeconds,
		&s.MessagesCount,
		&s.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get session", err)
	}

	if endTime.Valid {
		t := endTime.Time
		s.EndTime = &t
	}
	return &s, nil
}

// AddMessage inserts the message and increments the session's message count in one transaction
func (r *SessionRepository) AddMessage(ctx context.Context, msg *domain.SessionMessage) error {
	err := r.db.withTx(ctx, func(ctx context.Context, h handle) error {
		id, err := h.insert(ctx, `
			INSERT INTO session_messages (session_id, message_type, original_content, translated_content, sent_at)
			VALUES (?, ?, ?, ?, ?)`,
			msg.SessionID,
			msg.MessageType,
			msg.OriginalContent,
			msg.TranslatedContent,
			msg.Timestamp,
		)
		if err != nil {
			return err
		}

		n, err := h.exec(ctx, `UPDATE live_sessions SET messages_count = messages_count + 1 WHERE id = ?`, msg.SessionID)
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: session not found", domain.ErrNotFound)
		}

		msg.ID = id
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return storeErr("add session message", err)
	}
	return nil
}

// End closes an active session. Ending an already closed session is a conflict.
func (r *SessionRepository) End(ctx context.Context, id int64, endTime time.Time, durationSeconds int64) error {
	err := r.db.withTx(ctx, func(ctx context.Context, h handle) error {
		n, err := h.exec(ctx, `
			UPDATE live_sessions
			SET end_time = ?, duration_seconds = ?, is_active = ?
			WHERE id = ? AND is_active = ?`,
			endTime, durationSeconds, false, id, true,
		)
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: session already ended", domain.ErrConflict)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return err
		}
		return storeErr("end session", err)
	}
	return nil
}

// ListMessages returns a session's messages in the order they were sent
func (r *SessionRepository) ListMessages(ctx context.Context, sessionID int64) ([]domain.SessionMessage, error) {
	rows, err := r.db.reader().query(ctx, `
		SELECT id, session_id, message_type, original_content, translated_content, sent_at
		FROM session_messages
		WHERE session_id = ?
		ORDER BY sent_at ASC, id ASC`, sessionID,
	)
	if err != nil {
		return nil, storeErr("list session messages", err)
	}
	defer rows.Close()

	messages := make([]domain.SessionMessage, 0)
	for rows.Next() {
		var m domain.SessionMessage
		if err := rows.Scan(
			&m.ID,
			&m.SessionID,
			&m.MessageType,
			&m.OriginalContent,
			&m.TranslatedContent,
			&m.Timestamp,
		); err != nil {
			return nil, storeErr("scan session message", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list session messages", err)
	}

	return messages, nil
}
