// Package rediscache is a [cache.Cache] shared through Redis.
//
// Concurrent misses for the same key inside one process are collapsed with
// singleflight, so a burst of identical tool calls computes once. A failed
// write is logged and the computed value is still returned.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/leofalp/calcagent/providers/cache"
	"github.com/leofalp/calcagent/providers/observability"
)

// Name is the backend name reported by [Cache.Name].
const Name = "redis"

// Client is the subset of *redis.Client used by the cache.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Options configures a connection created by [New].
type Options struct {
	Addr     string
	Password string
	DB       int
	// TTL of stored entries; zero keeps them until evicted by Redis.
	TTL time.Duration
}

// Cache stores results in Redis.
type Cache struct {
	client Client
	ttl    time.Duration
	group  singleflight.Group
	logger observability.Logger
}

var _ cache.Cache = (*Cache)(nil)

// Option customizes a Cache.
type Option func(*Cache)

// WithLogger reports write failures to logger.
func WithLogger(logger observability.Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

// New connects to Redis and verifies the connection with PING. The returned
// close function releases the connection pool.
func New(ctx context.Context, opts Options, options ...Option) (*Cache, func() error, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("rediscache: ping %s: %w", opts.Addr, err)
	}
	return NewWithClient(rdb, opts.TTL, options...), rdb.Close, nil
}

// NewWithClient builds a cache on an existing client.
func NewWithClient(client Client, ttl time.Duration, options ...Option) *Cache {
	c := &Cache{client: client, ttl: ttl}
	for _, option := range options {
		option(c)
	}
	return c
}

// Name implements cache.Cache.
func (c *Cache) Name() string { return Name }

// GetOrCompute implements cache.Cache. A Redis read error other than a miss
// is returned without computing.
func (c *Cache) GetOrCompute(ctx context.Context, key string, compute cache.ComputeFunc) (string, bool, error) {
	value, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		return value, true, nil
	case !errors.Is(err, redis.Nil):
		return "", false, fmt.Errorf("rediscache: get %s: %w", key, err)
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		computed, err := compute(ctx)
		if err != nil {
			return "", err
		}
		if setErr := c.client.Set(ctx, key, computed, c.ttl).Err(); setErr != nil && c.logger != nil {
			c.logger.Warn(ctx, "failed to store cached result",
				observability.String(observability.AttrCacheKey, key),
				observability.Error(setErr),
			)
		}
		return computed, nil
	})
	if err != nil {
		return "", false, err
	}
	return v.(string), false, nil
}
