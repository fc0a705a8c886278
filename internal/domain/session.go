package domain

import (
	"context"
	"time"
)

// MaxSessionMessageContent caps stored live-session message content.
const MaxSessionMessageContent = 500

// LiveSession represents a live translation session
type LiveSession struct {
	ID              int64      `json:"id"`
	UserID          int64      `json:"user_id"`
	SessionToken    string     `json:"session_token"`
	SessionName     string     `json:"session_name"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationSeconds int64      `json:"duration_seconds"`
	MessagesCount   int64      `json:"messages_count"`
	IsActive        bool       `json:"is_active"`
}

// SessionMessage is a single exchange logged during a live session
type SessionMessage struct {
	ID                int64     `json:"id"`
	SessionID         int64     `json:"-"`
	MessageType       string    `json:"message_type"`
	OriginalContent   string    `json:"original_content"`
	TranslatedContent string    `json:"translated_content"`
	Timestamp         time.Time `json:"timestamp"`
}

// SessionMessageCreate is the body of POST /api/live-session/{id}/message
type SessionMessageCreate struct {
	MessageType       string `json:"message_type" validate:"required,max=50"`
	OriginalContent   string `json:"original_content" validate:"required"`
	TranslatedContent string `json:"translated_content"`
}

// SessionStarted is returned when a live session is opened
type SessionStarted struct {
	SessionID    int64  `json:"session_id"`
	SessionToken string `json:"session_token"`
}

// SessionRepository defines the interface for live session storage
type SessionRepository interface {
	Create(ctx context.Context, session *LiveSession) error
	Get(ctx context.Context, id int64) (*LiveSession, error)
	// AddMessage inserts the message and bumps the session's message count.
	AddMessage(ctx context.Context, msg *SessionMessage) error
	End(ctx context.Context, id int64, endTime time.Time, durationSeconds int64) error
	ListMessages(ctx context.Context, sessionID int64) ([]SessionMessage, error)
}
