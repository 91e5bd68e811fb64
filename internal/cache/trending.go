package cache

import (
	"context"
	"encoding/json"
	"time"

	"parchelector/internal/http-api/dto"

	"github.com/redis/go-redis/v9"
)

const trendingKey = "books:trending"

// TrendingCache keeps the trending shelf in Redis so the aggregate query
// does not run on every hit. A nil client disables caching: every call is
// a miss and writes are dropped.
type TrendingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTrendingCache(client *redis.Client, ttl time.Duration) *TrendingCache {
	return &TrendingCache{client: client, ttl: ttl}
}

// Get returns the cached shelf, or (nil, false) on a miss. Redis errors
// count as misses; the caller falls through to the database.
func (c *TrendingCache) Get(ctx context.Context) ([]dto.BookResponse, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, trendingKey).Bytes()
	if err != nil {
		return nil, false
	}

	var books []dto.BookResponse
	if err := json.Unmarshal(raw, &books); err != nil {
		return nil, false
	}
	return books, true
}

// Set stores the shelf with the configured TTL. Failures are ignored; the
// cache is best effort.
func (c *TrendingCache) Set(ctx context.Context, books []dto.BookResponse) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(books)
	if err != nil {
		return
	}
	c.client.Set(ctx, trendingKey, raw, c.ttl)
}
