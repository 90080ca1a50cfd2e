package observability

// Semantic conventions for observability attributes, spans, events and metrics.

// --- Tool Execution Attributes ---

const (
	AttrToolName     = "tool.name"
	AttrToolInput    = "tool.input"
	AttrToolOutput   = "tool.output"
	AttrToolDuration = "tool.duration"
	AttrToolError    = "tool.error"

	// AttrToolStatus is the Result status, "success" or "error".
	AttrToolStatus = "tool.status"

	// AttrToolErrorKind is the Result error kind, "validation" or "computation".
	AttrToolErrorKind = "tool.error.kind"
)

// --- Cache Attributes ---

const (
	AttrCacheBackend = "cache.backend"
	AttrCacheKey     = "cache.key"
	AttrCacheHit     = "cache.hit"
)

// --- General Attributes ---

const (
	AttrError             = "error"
	AttrDuration          = "duration"
	AttrStatus            = "status"
	AttrStatusDescription = "status_description"
)

// --- Span Names ---

const (
	SpanToolExecution = "tool.execution"
)

// --- Event Names ---

const (
	EventToolExecutionStart = "tool.execution.start"
	EventToolExecutionEnd   = "tool.execution.end"
	EventCacheHit           = "cache.hit"
	EventCacheMiss          = "cache.miss"
)

// --- Metric Names ---

const (
	MetricToolCallCount    = "calcagent.tool.call.count"
	MetricToolCallErrors   = "calcagent.tool.call.errors"
	MetricToolCallDuration = "calcagent.tool.call.duration"
	MetricCacheHits        = "calcagent.cache.hits"
	MetricCacheMisses      = "calcagent.cache.misses"
)
