package tool

import (
	"context"
	"encoding/json"
	"time"

	"github.com/leofalp/calcagent/core/result"
	"github.com/leofalp/calcagent/providers/observability"
)

type observedTool struct {
	GenericTool
	provider observability.Provider
}

// Observe wraps t so that every call runs inside a span and updates the call,
// error and duration metrics of provider. A nil provider returns t unchanged.
func Observe(t GenericTool, provider observability.Provider) GenericTool {
	if provider == nil {
		return t
	}
	return &observedTool{GenericTool: t, provider: provider}
}

func (o *observedTool) Call(ctx context.Context, inputJson string) (string, error) {
	name := o.ToolInfo().Name
	nameAttr := observability.String(observability.AttrToolName, name)

	ctx, span := o.provider.StartSpan(ctx, observability.SpanToolExecution, nameAttr)
	defer span.End()

	start := time.Now()
	out, err := o.GenericTool.Call(ctx, inputJson)
	elapsed := time.Since(start)

	o.provider.Counter(observability.MetricToolCallCount).Add(ctx, 1, nameAttr)
	o.provider.Histogram(observability.MetricToolCallDuration).Record(ctx, float64(elapsed.Microseconds())/1000, nameAttr)

	if err != nil {
		o.provider.Counter(observability.MetricToolCallErrors).Add(ctx, 1, nameAttr)
		span.RecordError(err)
		span.SetStatus(observability.StatusError, err.Error())
		o.provider.Error(ctx, "tool call failed", nameAttr, observability.Error(err))
		return out, err
	}

	var r result.Result
	if decodeErr := json.Unmarshal([]byte(out), &r); decodeErr == nil && !r.IsSuccess() {
		o.provider.Counter(observability.MetricToolCallErrors).Add(ctx, 1, nameAttr)
		span.SetStatus(observability.StatusError, r.ErrorMessage())
		o.provider.Info(ctx, "tool returned error result", nameAttr,
			observability.String(observability.AttrToolError, r.ErrorMessage()))
		return out, nil
	}

	span.SetStatus(observability.StatusOK, "")
	o.provider.Debug(ctx, "tool call succeeded", nameAttr, observability.Duration(observability.AttrToolDuration, elapsed))
	return out, nil
}
