package knowledge

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CachingSearcher wraps a searcher with a Redis read-through cache.
// Cache failures are logged and degrade to the inner searcher, never
// surfaced to the caller.
type CachingSearcher struct {
	inner  RequirementSearcher
	redis  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachingSearcher creates a caching layer over the given searcher
func NewCachingSearcher(inner RequirementSearcher, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachingSearcher {
	return &CachingSearcher{
		inner:  inner,
		redis:  client,
		ttl:    ttl,
		logger: logger,
	}
}

// Search returns the cached results for the query, or runs the inner
// searcher and caches its answer.
func (c *CachingSearcher) Search(ctx context.Context, query Query) ([]SearchResult, error) {
	key := cacheKey(query)

	data, err := c.redis.Get(ctx, key).Result()
	if err == nil {
		var results []SearchResult
		if err := json.Unmarshal([]byte(data), &results); err == nil {
			return results, nil
		}
		c.logger.Warn("Discarding undecodable search cache entry", zap.String("key", key))
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("Search cache read failed", zap.String("key", key), zap.Error(err))
	}

	results, err := c.inner.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(results); err == nil {
		if err := c.redis.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.logger.Warn("Search cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return results, nil
}

// Private methods

func cacheKey(query Query) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d",
		query.Text, strings.Join(query.Collections, ","), query.TopK)))
	return "kb:search:" + hex.EncodeToString(sum[:8])
}
