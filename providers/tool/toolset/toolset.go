// Package toolset assembles the calculator tools into a catalog.
package toolset

import (
	"github.com/leofalp/calcagent/providers/cache"
	"github.com/leofalp/calcagent/providers/observability"
	"github.com/leofalp/calcagent/providers/tool"
	"github.com/leofalp/calcagent/providers/tool/bmi"
	"github.com/leofalp/calcagent/providers/tool/calories"
	"github.com/leofalp/calcagent/providers/tool/compound"
	"github.com/leofalp/calcagent/providers/tool/portfolio"
	"github.com/leofalp/calcagent/providers/tool/workout"
)

type options struct {
	observer observability.Provider
	cache    cache.Cache
}

// Option configures [NewCatalog].
type Option func(*options)

// WithObserver instruments every tool with spans, metrics and logs.
func WithObserver(p observability.Provider) Option {
	return func(o *options) {
		o.observer = p
	}
}

// WithCache memoizes tool results in c.
func WithCache(c cache.Cache) Option {
	return func(o *options) {
		o.cache = c
	}
}

// Tools returns the five calculator tools, undecorated.
func Tools() []tool.GenericTool {
	return []tool.GenericTool{
		bmi.NewBMITool(),
		calories.NewCaloriesTool(),
		workout.NewWorkoutTool(),
		compound.NewCompoundTool(),
		portfolio.NewPortfolioTool(),
	}
}

// NewCatalog returns a catalog holding every calculator tool. With both
// options set, the observer wraps the cache so cache hits are visible on the
// tool span.
func NewCatalog(opts ...Option) *tool.Catalog {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	catalog := tool.NewCatalog()
	for _, t := range Tools() {
		catalog.AddTools(tool.Observe(tool.Cache(t, o.cache), o.observer))
	}
	return catalog
}
