package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Rrens/jusoor-api/internal/domain"
)

// SessionService manages live translation sessions
type SessionService struct {
	sessionRepo domain.SessionRepository
	now         func() time.Time
}

// NewSessionService creates a new live session service
func NewSessionService(sessionRepo domain.SessionRepository) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		now:         time.Now,
	}
}

// Start opens a new session for the user
func (s *SessionService) Start(ctx context.Context, userID int64) (*domain.SessionStarted, error) {
	now := s.now().UTC()
	session := &domain.LiveSession{
		UserID:       userID,
		SessionToken: uuid.NewString(),
		SessionName:  "Session " + now.Format("2006-01-02 15:04"),
		StartTime:    now,
		IsActive:     true,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &domain.SessionStarted{
		SessionID:    session.ID,
		SessionToken: session.SessionToken,
	}, nil
}

// AddMessage logs a message in one of the user's sessions
func (s *SessionService) AddMessage(ctx context.Context, userID, sessionID int64, input domain.SessionMessageCreate) (*domain.SessionMessage, error) {
	if _, err := s.ownedSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}

	msg := &domain.SessionMessage{
		SessionID:         sessionID,
		MessageType:       input.MessageType,
		OriginalContent:   truncateRunes(input.OriginalContent, domain.MaxSessionMessageContent),
		TranslatedContent: truncateRunes(input.TranslatedContent, domain.MaxSessionMessageContent),
		Timestamp:         s.now().UTC(),
	}
	if err := s.sessionRepo.AddMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to add message: %w", err)
	}

	return msg, nil
}

// End closes one of the user's sessions and returns its duration in seconds
func (s *SessionService) End(ctx context.Context, userID, sessionID int64) (int64, error) {
	session, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return 0, err
	}
	if !session.IsActive {
		return 0, fmt.Errorf("%w: session already ended", domain.ErrConflict)
	}

	end := s.now().UTC()
	duration := int64(end.Sub(session.StartTime).Seconds())
	if duration < 0 {
		duration = 0
	}

	if err := s.sessionRepo.End(ctx, sessionID, end, duration); err != nil {
		return 0, fmt.Errorf("failed to end session: %w", err)
	}

	return duration, nil
}

// Messages lists the messages of one of the user's sessions
func (s *SessionService) Messages(ctx context.Context, userID, sessionID int64) ([]domain.SessionMessage, error) {
	if _, err := s.ownedSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}

	messages, err := s.sessionRepo.ListMessages(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

func (s *SessionService) ownedSession(ctx context.Context, userID, sessionID int64) (*domain.LiveSession, error) {
	session, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, fmt.Errorf("%w: session not found", domain.ErrNotFound)
	}
	if session.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return session, nil
}
