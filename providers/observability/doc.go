// Package observability defines the provider-agnostic tracing, metrics and
// logging interfaces used around tool execution.
//
// A [Provider] bundles a [Tracer], [Metrics] and a [Logger]. Tools look up the
// active [Span] with [SpanFromContext] and annotate it with [Attribute] values
// named after the constants in semconv.go. A nil provider means no
// observability and costs nothing; see the slogobs subpackage for an
// implementation backed by log/slog.
package observability
