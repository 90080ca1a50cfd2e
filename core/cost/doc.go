// Package cost describes what executing a tool costs, so an agent layer can
// surface or weigh it when choosing between tools.
//
// The main type is [ToolMetrics]: per-call price plus optional accuracy and
// latency hints.
package cost
