// Package slogobs provides an observability.Provider implementation backed by
// Go's standard library log/slog package.
// It supports span logging, in-memory counters and histograms, and levelled
// logging through either a compact single-line handler or slog's JSON handler.
// The main entry point is [New]; output can be tuned with [WithFormat],
// [WithLevel], [WithOutput] and [WithLogger].
package slogobs
