package service

import (
	"context"

	"github.com/Rrens/jusoor-api/internal/domain"
	"github.com/Rrens/jusoor-api/internal/translator"
)

// Dispatcher runs a translation. *translator.Dispatcher satisfies it.
type Dispatcher interface {
	Dispatch(ctx context.Context, req translator.Request) (*translator.Result, error)
}

// StatsCache stores admin stats for a short time. *redis.StatsCache satisfies it.
type StatsCache interface {
	Get(ctx context.Context) (*domain.Stats, error)
	Set(ctx context.Context, stats *domain.Stats) error
}

// truncateRunes cuts s to at most n characters without splitting a rune.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
