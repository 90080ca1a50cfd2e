// Package container wires calcagent services using go.uber.org/dig.
package container

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"go.uber.org/dig"

	"github.com/leofalp/calcagent/core/report"
	"github.com/leofalp/calcagent/internal/config"
	"github.com/leofalp/calcagent/providers/cache"
	"github.com/leofalp/calcagent/providers/cache/memcache"
	"github.com/leofalp/calcagent/providers/cache/rediscache"
	"github.com/leofalp/calcagent/providers/observability"
	"github.com/leofalp/calcagent/providers/observability/slogobs"
	"github.com/leofalp/calcagent/providers/tool"
	"github.com/leofalp/calcagent/providers/tool/toolset"
)

// Container holds the resolved services.
// Callers use the typed getter methods; they never need to import dig directly.
type Container struct {
	cfg      *config.Config
	observer *slogobs.Observer
	backend  cacheBackend
	catalog  *tool.Catalog
	cancel   context.CancelFunc
}

func (c *Container) Config() *config.Config      { return c.cfg }
func (c *Container) Observer() *slogobs.Observer { return c.observer }
func (c *Container) Catalog() *tool.Catalog      { return c.catalog }
func (c *Container) CacheName() string           { return c.backend.name() }

// ReportFormat returns the configured render format, text when unset.
func (c *Container) ReportFormat() report.Format {
	f, err := report.ParseFormat(c.cfg.Report.Format)
	if err != nil {
		return report.FormatText
	}
	return f
}

// Close releases the cache backend.
func (c *Container) Close() error {
	c.cancel()
	if c.backend.close != nil {
		return c.backend.close()
	}
	return nil
}

// cacheBackend carries the optional cache; a nil Cache means caching is off.
type cacheBackend struct {
	cache cache.Cache
	close func() error
}

func (b cacheBackend) name() string {
	if b.cache == nil {
		return config.CacheNone
	}
	return b.cache.Name()
}

// New builds and wires all services from cfg. ctx bounds background work such
// as expired-entry cleanup; it is cancelled by Close.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	ctx, cancel := context.WithCancel(ctx)
	d := dig.New()

	for _, constructor := range []any{
		func() context.Context { return ctx },
		func() *config.Config { return cfg },
		newObserver,
		newCacheBackend,
		newCatalog,
	} {
		if err := d.Provide(constructor); err != nil {
			cancel()
			return nil, err
		}
	}

	var result *Container
	err := d.Invoke(func(observer *slogobs.Observer, backend cacheBackend, catalog *tool.Catalog) {
		result = &Container{
			cfg:      cfg,
			observer: observer,
			backend:  backend,
			catalog:  catalog,
			cancel:   cancel,
		}
	})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("wire container: %w", err)
	}
	return result, nil
}

func newObserver(cfg *config.Config) (*slogobs.Observer, error) {
	level, err := slogobs.ParseLogLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	return slogobs.New(
		slogobs.WithLevel(level),
		slogobs.WithFormat(slogobs.ParseFormat(cfg.Log.Format)),
		slogobs.WithOutput(os.Stderr),
		slogobs.WithAttrs(slog.String("service", "calcagent"), slog.String("cache", cfg.Cache.Backend)),
	), nil
}

func newCacheBackend(ctx context.Context, cfg *config.Config, observer *slogobs.Observer) (cacheBackend, error) {
	switch cfg.Cache.Backend {
	case config.CacheMemory:
		c, err := memcache.New(ctx, cfg.Cache.TTL)
		if err != nil {
			return cacheBackend{}, err
		}
		return cacheBackend{cache: c}, nil

	case config.CacheRedis:
		c, closeFn, err := rediscache.New(ctx, rediscache.Options{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			TTL:      cfg.Cache.TTL,
		}, rediscache.WithLogger(observer))
		if err != nil {
			return cacheBackend{}, err
		}
		observer.Debug(ctx, "redis cache connected",
			observability.String(observability.AttrCacheBackend, c.Name()))
		return cacheBackend{cache: c, close: closeFn}, nil

	default:
		return cacheBackend{}, nil
	}
}

func newCatalog(ctx context.Context, observer *slogobs.Observer, backend cacheBackend) *tool.Catalog {
	opts := []toolset.Option{toolset.WithObserver(observer)}
	if backend.cache != nil {
		opts = append(opts, toolset.WithCache(backend.cache))
	}
	catalog := toolset.NewCatalog(opts...)
	for _, warning := range catalog.Validate() {
		observer.Warn(ctx, warning)
	}
	observer.Debug(ctx, "tool catalog ready",
		observability.Int("tools", catalog.Size()),
		observability.String("cache", backend.name()),
	)
	return catalog
}
