package tool

import (
	"context"

	"github.com/leofalp/calcagent/core/report"
	"github.com/leofalp/calcagent/providers/cache"
	"github.com/leofalp/calcagent/providers/observability"
)

type cachedTool struct {
	GenericTool
	cache cache.Cache
}

// Cache wraps t so that identical calls are answered from c. The key covers
// the tool name, the render format carried by ctx and the canonical form of
// the arguments. A nil cache returns t unchanged.
func Cache(t GenericTool, c cache.Cache) GenericTool {
	if c == nil {
		return t
	}
	return &cachedTool{GenericTool: t, cache: c}
}

func (c *cachedTool) Call(ctx context.Context, inputJson string) (string, error) {
	name := c.ToolInfo().Name
	key, err := cache.Key(name, string(report.FormatFromContext(ctx)), inputJson)
	if err != nil {
		// Arguments that cannot be canonicalized are left to the tool to reject.
		return c.GenericTool.Call(ctx, inputJson)
	}

	out, hit, err := c.cache.GetOrCompute(ctx, key, func(ctx context.Context) (string, error) {
		return c.GenericTool.Call(ctx, inputJson)
	})

	event := observability.EventCacheMiss
	if hit {
		event = observability.EventCacheHit
	}
	observability.AddEvent(ctx, event,
		observability.String(observability.AttrCacheBackend, c.cache.Name()),
		observability.String(observability.AttrCacheKey, key),
	)
	observability.SetAttributes(ctx, observability.Bool(observability.AttrCacheHit, hit))
	return out, err
}
