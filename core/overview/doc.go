// Package overview tracks the tool calls made during a single run.
// It collects per-tool call and failure counts, accumulated cost and time
// spent in each tool. Use [OverviewFromContext] to obtain or create an
// instance bound to a [context.Context]; [tool.Catalog.Call] records into
// whatever Overview the context carries. [Overview.Summary] returns the
// aggregated view once the run completes.
package overview
