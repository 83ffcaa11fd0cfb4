// internal/domain/product/cache.go
package product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const notFoundMarker = "notfound"

// CachedRepository keeps single-product lookups in Redis. Lists go straight to the wrapped repository.
// Redis failures degrade to the wrapped repository.
type CachedRepository struct {
	Repository
	redis  *redis.Client
	ttl    time.Duration
	logger *logrus.Logger
}

// NewCachedRepository wraps repo with a read-through Redis cache
func NewCachedRepository(repo Repository, client *redis.Client, ttl time.Duration, logger *logrus.Logger) *CachedRepository {
	return &CachedRepository{
		Repository: repo,
		redis:      client,
		ttl:        ttl,
		logger:     logger,
	}
}

func cacheKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

// FindByID returns the cached product, loading and caching it on a miss
func (c *CachedRepository) FindByID(ctx context.Context, id uint) (*Product, error) {
	key := cacheKey(id)

	data, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if string(data) == notFoundMarker {
			return nil, ErrProductNotFound
		}
		var product Product
		if err := json.Unmarshal(data, &product); err == nil {
			return &product, nil
		}
		c.logger.WithField("key", key).Warn("Discarding undecodable cached product")
	case errors.Is(err, redis.Nil):
	default:
		c.logger.WithError(err).Warn("Product cache unavailable, reading from database")
	}

	product, err := c.Repository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			if setErr := c.redis.Set(ctx, key, notFoundMarker, time.Minute).Err(); setErr != nil {
				c.logger.WithError(setErr).Warn("Failed to cache missing product")
			}
		}
		return nil, err
	}

	payload, err := json.Marshal(product)
	if err != nil {
		return product, nil
	}
	if err := c.redis.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.WithError(err).Warn("Failed to cache product")
	}

	return product, nil
}

// Invalidate drops the cached entry for id
func (c *CachedRepository) Invalidate(ctx context.Context, id uint) error {
	return c.redis.Del(ctx, cacheKey(id)).Err()
}
