package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Rrens/jusoor-api/internal/domain"
)

const (
	statsCacheKey = "jusoor:admin:stats"
)

// StatsCache keeps the admin dashboard counts for a short TTL
type StatsCache struct {
	client *Client
	ttl    time.Duration
}

// NewStatsCache creates a new stats cache
func NewStatsCache(client *Client, ttl time.Duration) *StatsCache {
	return &StatsCache{client: client, ttl: ttl}
}

// Get returns the cached stats, or nil on a cache miss
func (c *StatsCache) Get(ctx context.Context) (*domain.Stats, error) {
	data, err := c.client.rdb.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read stats cache: %w", err)
	}

	var stats domain.Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stats: %w", err)
	}

	return &stats, nil
}

// Set caches the stats
func (c *StatsCache) Set(ctx context.Context, stats *domain.Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	return c.client.rdb.Set(ctx, statsCacheKey, data, c.ttl).Err()
}

// Invalidate drops the cached stats
func (c *StatsCache) Invalidate(ctx context.Context) error {
	return c.client.rdb.Del(ctx, statsCacheKey).Err()
}
