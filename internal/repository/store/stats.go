package store

import (
	"context"
	"time"

	"github.com/Rrens/jusoor-api/internal/domain"
)

// StatsRepository computes admin dashboard counts
type StatsRepository struct {
	db *DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Collect counts users, translations, sessions and feedback, plus translations since recentSince
func (r *StatsRepository) Collect(ctx context.Context, recentSince time.Time) (*domain.Stats, error) {
	h := r.db.reader()
	var stats domain.Stats

	counts := []struct {
		dest  *int64
		query string
		args  []any
	}{
		{&stats.TotalUsers, `SELECT COUNT(*) FROM users`, nil},
		{&stats.TotalTranslations, `SELECT COUNT(*) FROM translation_history`, nil},
		{&stats.TotalSessions, `SELECT COUNT(*) FROM live_sessions`, nil},
		{&stats.TotalFeedback, `SELECT COUNT(*) FROM feedback`, nil},
		{&stats.RecentTranslations7Days, `SELECT COUNT(*) FROM translation_history WHERE created_at >= ?`, []any{recentSince}},
	}

	for _, c := range counts {
		if err := h.queryRow(ctx, c.query, c.args...).Scan(c.dest); err != nil {
			return nil, storeErr("collect stats", err)
		}
	}

	return &stats, nil
}
