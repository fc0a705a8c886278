package domain

import (
	"context"
	"time"
)

// Stats is the admin dashboard summary
type Stats struct {
	TotalUsers              int64 `json:"total_users"`
	TotalTranslations       int64 `json:"total_translations"`
	TotalSessions           int64 `json:"total_sessions"`
	TotalFeedback           int64 `json:"total_feedback"`
	RecentTranslations7Days int64 `json:"recent_translations_7days"`
}

// StatsRepository computes aggregate counts
type StatsRepository interface {
	Collect(ctx context.Context, recentSince time.Time) (*Stats, error)
}
