package slogobs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/leofalp/calcagent/providers/observability"
)

func newDebugObserver(buf *bytes.Buffer, format Format) *Observer {
	return New(WithOutput(buf), WithLevel(slog.LevelDebug), WithFormat(format))
}

func TestSlogObserver_Implements_Provider(t *testing.T) {
	var _ observability.Provider = (*Observer)(nil)
}

func TestSlogObserver_StartSpan_AttachesSpanToContext(t *testing.T) {
	var buf bytes.Buffer
	obs := newDebugObserver(&buf, FormatCompact)

	ctx, span := obs.StartSpan(context.Background(), "test-span", observability.String("key", "value"))
	if span == nil {
		t.Fatal("StartSpan returned nil span")
	}
	if observability.SpanFromContext(ctx) != span {
		t.Error("expected returned context to carry the span")
	}

	output := buf.String()
	if !strings.Contains(output, "test-span") || !strings.Contains(output, "span.start") {
		t.Errorf("Expected span start in output, got: %s", output)
	}
	if !strings.Contains(output, `"key":"value"`) {
		t.Errorf("Expected attributes in output, got: %s", output)
	}
}

func TestSlogObserver_Span_End(t *testing.T) {
	var buf bytes.Buffer
	obs := newDebugObserver(&buf, FormatCompact)

	_, span := obs.StartSpan(context.Background(), "test-span")
	span.SetAttributes(observability.Int("attr", 7))
	span.SetStatus(observability.StatusOK, "fine")
	buf.Reset()

	span.End()

	output := buf.String()
	for _, want := range []string{"span.end", "duration", `"attr":7`, `"status":"ok"`, "fine"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}
}

func TestSlogObserver_Span_ErrorRaisesEndLevel(t *testing.T) {
	var buf bytes.Buffer
	obs := New(WithOutput(&buf), WithLevel(slog.LevelWarn), WithFormat(FormatCompact))

	_, span := obs.StartSpan(context.Background(), "failing")
	span.RecordError(errors.New("boom"))
	span.End()

	output := buf.String()
	if !strings.Contains(output, "Span error") {
		t.Errorf("Expected error log, got: %s", output)
	}
	if !strings.Contains(output, "Span ended") {
		t.Errorf("Expected span end at warn level, got: %s", output)
	}
}

func TestSlogObserver_RecordNilError(t *testing.T) {
	var buf bytes.Buffer
	obs := newDebugObserver(&buf, FormatCompact)

	_, span := obs.StartSpan(context.Background(), "s")
	buf.Reset()
	span.RecordError(nil)
	if buf.Len() != 0 {
		t.Errorf("Expected no output for nil error, got: %s", buf.String())
	}
}

func TestSlogObserver_Counter(t *testing.T) {
	var buf bytes.Buffer
	obs := newDebugObserver(&buf, FormatCompact)
	ctx := context.Background()

	obs.Counter("calls").Add(ctx, 2)
	obs.Counter("calls").Add(ctx, 3)

	if got := obs.CounterValue("calls"); got != 5 {
		t.Errorf("Expected counter value 5, got %d", got)
	}
	if got := obs.CounterValue("missing"); got != 0 {
		t.Errorf("Expected 0 for unknown counter, got %d", got)
	}
	if !strings.Contains(buf.String(), `"delta":3`) {
		t.Errorf("Expected delta in output, got: %s", buf.String())
	}
}

func TestSlogObserver_Histogram(t *testing.T) {
	var buf bytes.Buffer
	obs := newDebugObserver(&buf, FormatCompact)

	obs.Histogram("latency").Record(context.Background(), 1.5)
	if !strings.Contains(buf.String(), "latency") || !strings.Contains(buf.String(), "1.5") {
		t.Errorf("Expected histogram in output, got: %s", buf.String())
	}
}

func TestSlogObserver_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	obs := New(WithOutput(&buf), WithLevel(slog.LevelWarn), WithFormat(FormatCompact))
	ctx := context.Background()

	obs.Debug(ctx, "debug message")
	obs.Info(ctx, "info message")
	obs.Warn(ctx, "warn message")
	obs.Error(ctx, "error message", observability.String("k", "v"))

	output := buf.String()
	if strings.Contains(output, "debug message") || strings.Contains(output, "info message") {
		t.Errorf("Expected debug/info to be filtered, got: %s", output)
	}
	if !strings.Contains(output, "warn message") || !strings.Contains(output, "error message") {
		t.Errorf("Expected warn/error in output, got: %s", output)
	}
}

func TestSlogObserver_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	obs := newDebugObserver(&buf, FormatJSON)

	obs.Info(context.Background(), "hello", observability.String("tool.name", "calculate_bmi"))

	var line map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("Expected JSON line, got %q: %v", buf.String(), err)
	}
	if line["msg"] != "hello" || line["tool.name"] != "calculate_bmi" {
		t.Errorf("Unexpected JSON record: %v", line)
	}
}

func TestSlogObserver_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	obs := New(WithLogger(logger))

	if obs.Logger() != logger {
		t.Error("Expected the provided logger to be used")
	}
	obs.Info(context.Background(), "via text handler")
	if !strings.Contains(buf.String(), "msg=\"via text handler\"") {
		t.Errorf("Expected text handler output, got: %s", buf.String())
	}
}

func TestCompactHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newCompactHandler(&buf, slog.LevelDebug)).With("component", "cache").WithGroup("redis")

	logger.Info("connected", "addr", "localhost:6379")

	output := buf.String()
	if !strings.Contains(output, `"component":"cache"`) || !strings.Contains(output, `"redis.addr":"localhost:6379"`) {
		t.Errorf("Unexpected compact output: %s", output)
	}
}

func TestOptions_WithAttrs(t *testing.T) {
	for _, format := range []Format{FormatCompact, FormatJSON} {
		t.Run(format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			obs := New(WithOutput(&buf), WithLevel(slog.LevelInfo), WithFormat(format),
				WithAttrs(slog.String("service", "calcagent")))

			obs.Info(context.Background(), "hello")

			if !strings.Contains(buf.String(), `"service":"calcagent"`) {
				t.Errorf("expected base attribute in output, got: %s", buf.String())
			}
		})
	}
}

func TestOptions_LevelOverridesEnv(t *testing.T) {
	t.Setenv("CALCAGENT_LOG_LEVEL", "error")

	var buf bytes.Buffer
	obs := New(WithOutput(&buf), WithLevel(slog.LevelDebug))
	obs.Debug(context.Background(), "visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("WithLevel should override the environment, got: %q", buf.String())
	}

	buf.Reset()
	obs = New(WithOutput(&buf))
	obs.Warn(context.Background(), "hidden")
	if buf.Len() != 0 {
		t.Errorf("expected env level error to drop warnings, got: %q", buf.String())
	}
}

func TestOptions_WithLoggerKeepsAttrs(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	obs := New(WithLogger(base), WithAttrs(slog.String("cache", "memory")))
	obs.Info(context.Background(), "hello")

	if !strings.Contains(buf.String(), `"cache":"memory"`) {
		t.Errorf("expected attribute on wrapped logger, got: %s", buf.String())
	}
}
