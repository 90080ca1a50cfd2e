// Package memcache is an in-process [cache.Cache] backed by mapcache.
package memcache

import (
	"context"
	"fmt"
	"time"

	"github.com/omniaura/mapcache"

	"github.com/leofalp/calcagent/providers/cache"
)

// Name is the backend name reported by [Cache.Name].
const Name = "memory"

// DefaultTTL is used when New is given a non-positive TTL.
const DefaultTTL = 10 * time.Minute

// Cache stores results in memory until their TTL expires.
type Cache struct {
	entries *mapcache.MapCache[string, string]
}

var _ cache.Cache = (*Cache)(nil)

// New creates a cache whose entries live for ttl. Expired entries are swept
// in the background until ctx is cancelled.
func New(ctx context.Context, ttl time.Duration) (*Cache, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	entries, err := mapcache.New[string, string](
		mapcache.WithTTL(ttl),
		mapcache.WithCleanup(ctx, ttl),
	)
	if err != nil {
		return nil, fmt.Errorf("memcache: %w", err)
	}
	return &Cache{entries: entries}, nil
}

// Name implements cache.Cache.
func (c *Cache) Name() string { return Name }

// GetOrCompute implements cache.Cache.
func (c *Cache) GetOrCompute(ctx context.Context, key string, compute cache.ComputeFunc) (string, bool, error) {
	computed := false
	value, err := c.entries.Get(key, func() (string, error) {
		computed = true
		return compute(ctx)
	})
	if err != nil {
		return "", false, err
	}
	return value, !computed, nil
}
