package overview

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/leofalp/calcagent/core/cost"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// overviewContextKey is the key used to store Overview in context.
const overviewContextKey contextKey = "overview"

// Overview aggregates tool call statistics for a single execution lifecycle.
// All methods are safe for concurrent use.
type Overview struct {
	mu sync.Mutex

	ToolCallStats  map[string]int           `json:"tool_calls,omitempty"`
	ToolErrorStats map[string]int           `json:"tool_errors,omitempty"`
	ToolCosts      map[string]float64       `json:"tool_costs,omitempty"`
	ToolDurations  map[string]time.Duration `json:"tool_durations,omitempty"`

	// ExecutionStartTime marks when the execution started
	ExecutionStartTime time.Time `json:"execution_start_time,omitempty"`
	// ExecutionEndTime marks when the execution ended
	ExecutionEndTime time.Time `json:"execution_end_time,omitempty"`
}

// OverviewFromContext retrieves the Overview from the context, creating one if
// it does not already exist. The context pointer is updated in-place when a new
// Overview is created so callers see the enriched context.
func OverviewFromContext(ctx *context.Context) *Overview {
	if *ctx == nil {
		*ctx = context.Background()
	}
	overviewVal := (*ctx).Value(overviewContextKey)
	if overviewVal == nil {
		overview := &Overview{}
		*ctx = overview.ToContext(*ctx)
		return overview
	}

	overview, ok := overviewVal.(*Overview)
	if !ok {
		return nil
	}
	return overview
}

// FromContext returns the Overview stored in ctx, or nil when there is none.
func FromContext(ctx context.Context) *Overview {
	if ctx == nil {
		return nil
	}
	overview, _ := ctx.Value(overviewContextKey).(*Overview)
	return overview
}

// ToContext stores the Overview in the given context and returns the enriched context.
func (overview *Overview) ToContext(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, overviewContextKey, overview)
}

// AddToolCall records one invocation of toolName. failed marks calls that
// returned an error result or a Go error.
func (overview *Overview) AddToolCall(toolName string, toolMetrics *cost.ToolMetrics, elapsed time.Duration, failed bool) {
	overview.mu.Lock()
	defer overview.mu.Unlock()

	if overview.ToolCallStats == nil {
		overview.ToolCallStats = make(map[string]int)
		overview.ToolErrorStats = make(map[string]int)
		overview.ToolCosts = make(map[string]float64)
		overview.ToolDurations = make(map[string]time.Duration)
	}

	overview.ToolCallStats[toolName]++
	overview.ToolDurations[toolName] += elapsed
	if failed {
		overview.ToolErrorStats[toolName]++
	}
	if toolMetrics != nil {
		overview.ToolCosts[toolName] += toolMetrics.Amount
	}
}

// StartExecution marks the start of execution.
func (overview *Overview) StartExecution() {
	overview.mu.Lock()
	overview.ExecutionStartTime = time.Now()
	overview.mu.Unlock()
}

// EndExecution marks the end of execution.
func (overview *Overview) EndExecution() {
	overview.mu.Lock()
	overview.ExecutionEndTime = time.Now()
	overview.mu.Unlock()
}

// ExecutionDuration returns the total execution duration.
// Returns 0 if execution hasn't started or ended.
func (overview *Overview) ExecutionDuration() time.Duration {
	overview.mu.Lock()
	defer overview.mu.Unlock()
	return overview.executionDuration()
}

func (overview *Overview) executionDuration() time.Duration {
	if overview.ExecutionStartTime.IsZero() || overview.ExecutionEndTime.IsZero() {
		return 0
	}
	return overview.ExecutionEndTime.Sub(overview.ExecutionStartTime)
}

// Summary is a point-in-time copy of the counters held by an Overview.
type Summary struct {
	TotalCalls         int                `json:"total_calls"`
	TotalErrors        int                `json:"total_errors"`
	TotalToolCost      float64            `json:"total_tool_cost"`
	Currency           string             `json:"currency"`
	ToolExecutionCount map[string]int     `json:"tool_execution_count"`
	ToolErrorCount     map[string]int     `json:"tool_error_count"`
	ToolCosts          map[string]float64 `json:"tool_costs"`
	ExecutionDuration  time.Duration      `json:"execution_duration"`
}

// Summary returns the aggregated statistics recorded so far.
func (overview *Overview) Summary() Summary {
	overview.mu.Lock()
	defer overview.mu.Unlock()

	summary := Summary{
		Currency:           "USD",
		ToolExecutionCount: make(map[string]int, len(overview.ToolCallStats)),
		ToolErrorCount:     make(map[string]int, len(overview.ToolErrorStats)),
		ToolCosts:          make(map[string]float64, len(overview.ToolCosts)),
		ExecutionDuration:  overview.executionDuration(),
	}

	for toolName, count := range overview.ToolCallStats {
		summary.ToolExecutionCount[toolName] = count
		summary.TotalCalls += count
	}
	for toolName, count := range overview.ToolErrorStats {
		if count == 0 {
			continue
		}
		summary.ToolErrorCount[toolName] = count
		summary.TotalErrors += count
	}
	for toolName, amount := range overview.ToolCosts {
		summary.ToolCosts[toolName] = amount
		summary.TotalToolCost += amount
	}

	return summary
}

// String renders the summary as one line per tool, sorted by name, followed by a total line.
func (s Summary) String() string {
	names := make([]string, 0, len(s.ToolExecutionCount))
	for name := range s.ToolExecutionCount {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s: %d call(s), %d error(s), %.6f %s\n",
			name, s.ToolExecutionCount[name], s.ToolErrorCount[name], s.ToolCosts[name], s.Currency)
	}
	fmt.Fprintf(&b, "total: %d call(s), %d error(s), %.6f %s in %s",
		s.TotalCalls, s.TotalErrors, s.TotalToolCost, s.Currency, s.ExecutionDuration.Round(time.Millisecond))
	return b.String()
}
