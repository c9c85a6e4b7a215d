package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/bimcat/catalog-api/internal/models"
)

const catalogCacheKey = "catalog:cursos"

// CatalogCache is an optional Redis-backed snapshot of the course list. It is
// purely an accelerator: every mutation invalidates it and a miss falls
// through to the flat file. A nil *CatalogCache is a disabled cache.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCatalogCache wraps the Redis client; returns nil when client is nil.
func NewCatalogCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *CatalogCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached snapshot and whether it was a hit.
func (c *CatalogCache) Get(ctx context.Context) ([]models.Curso, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, catalogCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("catalog cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var cursos []models.Curso
	if err := json.Unmarshal(raw, &cursos); err != nil {
		c.logger.Warn("catalog cache entry corrupt, dropping", zap.Error(err))
		_ = c.client.Del(ctx, catalogCacheKey).Err()
		return nil, false
	}
	return cursos, true
}

// Set stores a fresh snapshot. Failures are logged, never surfaced.
func (c *CatalogCache) Set(ctx context.Context, cursos []models.Curso) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(cursos)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, catalogCacheKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("catalog cache write failed", zap.Error(err))
	}
}

// Invalidate drops the snapshot after a mutation.
func (c *CatalogCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, catalogCacheKey).Err(); err != nil {
		c.logger.Warn("catalog cache invalidation failed", zap.Error(err))
	}
}
