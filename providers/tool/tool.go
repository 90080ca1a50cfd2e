package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/leofalp/calcagent/core/cost"
	"github.com/leofalp/calcagent/core/parse"
	"github.com/leofalp/calcagent/core/result"
	"github.com/leofalp/calcagent/internal/jsonschema"
	"github.com/leofalp/calcagent/providers/observability"
)

// ToolDescription is what an agent layer needs to advertise a tool to a model.
type ToolDescription struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Parameters  *jsonschema.Schema `json:"parameters,omitempty"`
	Metrics     *cost.ToolMetrics  `json:"metrics,omitempty"`
}

// GenericTool is the provider-agnostic interface for all tools.
type GenericTool interface {
	// ToolInfo returns the metadata used to advertise this tool.
	ToolInfo() ToolDescription

	// Call invokes the tool with JSON-encoded arguments and returns a
	// JSON-encoded result.Result.
	Call(ctx context.Context, inputJson string) (string, error)

	// GetMetrics returns the cost metrics of this tool, or nil.
	GetMetrics() *cost.ToolMetrics
}

// Tool binds a name and description to a strongly-typed function.
// Use [NewTool] to construct one.
type Tool[I, O any] struct {
	Name        string
	Description string
	Parameters  *jsonschema.Schema
	Function    func(ctx context.Context, input I) (O, error)
	Metrics     *cost.ToolMetrics
}

type funcToolOptions struct {
	Description string
	Metrics     *cost.ToolMetrics
}

// WithDescription sets the description surfaced to the language model.
func WithDescription(description string) func(tool *funcToolOptions) {
	return func(s *funcToolOptions) {
		s.Description = description
	}
}

// WithMetrics sets the cost metrics for executing this tool.
func WithMetrics(toolMetrics cost.ToolMetrics) func(tool *funcToolOptions) {
	return func(s *funcToolOptions) {
		s.Metrics = &toolMetrics
	}
}

// NewTool constructs a [Tool] with the given name and handler. The parameter
// schema is derived from I; it panics if I carries a malformed jsonschema tag,
// which is a programming error in the tool definition.
//
// Example:
//
//	bmiTool := tool.NewTool("calculate_bmi", bmi.Calc,
//	    tool.WithDescription("Calculates body mass index."),
//	    tool.WithMetrics(cost.LocalComputation),
//	)
func NewTool[I, O any](name string, function func(ctx context.Context, input I) (O, error), options ...func(tool *funcToolOptions)) *Tool[I, O] {
	toolOptions := &funcToolOptions{}
	for _, option := range options {
		option(toolOptions)
	}

	return &Tool[I, O]{
		Name:        name,
		Description: toolOptions.Description,
		Parameters:  jsonschema.MustGenerateJSONSchema[I](),
		Function:    function,
		Metrics:     toolOptions.Metrics,
	}
}

// ToolInfo returns the [ToolDescription] of the tool.
func (t *Tool[I, O]) ToolInfo() ToolDescription {
	return ToolDescription{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  t.Parameters,
		Metrics:     t.Metrics,
	}
}

// Call parses inputJson into I, runs the function and encodes its output.
// Unparseable arguments become a validation error result, a non-nil error or
// a panic from the function becomes a computation error result. Span events
// are emitted when a span is present in ctx.
func (t *Tool[I, O]) Call(ctx context.Context, inputJson string) (out string, err error) {
	span := observability.SpanFromContext(ctx)
	if span != nil {
		span.AddEvent(observability.EventToolExecutionStart,
			observability.String(observability.AttrToolName, t.Name),
			observability.String(observability.AttrToolInput, observability.TruncateString(inputJson, 0)),
		)
		defer span.AddEvent(observability.EventToolExecutionEnd)
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			out, err = t.encode(span, start, result.ComputeFailed(t.Name, fmt.Errorf("panic: %v", r)))
		}
	}()

	parsedInput, parseErr := parse.ParseArguments[I](inputJson)
	if parseErr != nil {
		return t.encode(span, start, result.Invalid("Invalid arguments for %s: %v", t.Name, parseErr))
	}

	output, fnErr := t.Function(ctx, parsedInput)
	if fnErr != nil {
		return t.encode(span, start, result.ComputeFailed(t.Name, fnErr))
	}
	return t.encode(span, start, output)
}

// encode marshals v and records output attributes on the span.
func (t *Tool[I, O]) encode(span observability.Span, start time.Time, v any) (string, error) {
	outputBytes, err := json.Marshal(v)
	if err != nil {
		if span != nil {
			span.RecordError(err)
		}
		return "", fmt.Errorf("failed to encode %s output: %w", t.Name, err)
	}

	if span != nil {
		attrs := []observability.Attribute{
			observability.String(observability.AttrToolOutput, observability.TruncateString(string(outputBytes), 0)),
			observability.Duration(observability.AttrToolDuration, time.Since(start)),
		}
		if r, ok := v.(result.Result); ok {
			attrs = append(attrs, observability.String(observability.AttrToolStatus, string(r.Status())))
			if !r.IsSuccess() {
				attrs = append(attrs,
					observability.String(observability.AttrToolError, r.ErrorMessage()),
					observability.String(observability.AttrToolErrorKind, r.Kind().String()),
				)
			}
		}
		span.SetAttributes(attrs...)
	}

	return string(outputBytes), nil
}

// GetMetrics returns the cost metrics of this tool, if any.
func (t *Tool[I, O]) GetMetrics() *cost.ToolMetrics {
	return t.Metrics
}
