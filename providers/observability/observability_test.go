package observability

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type recordingSpan struct {
	events []string
	attrs  []Attribute
}

func (s *recordingSpan) End()                                          {}
func (s *recordingSpan) SetStatus(code StatusCode, description string) {}
func (s *recordingSpan) RecordError(err error)                         {}

func (s *recordingSpan) SetAttributes(attrs ...Attribute) {
	s.attrs = append(s.attrs, attrs...)
}

func (s *recordingSpan) AddEvent(name string, attrs ...Attribute) {
	s.events = append(s.events, name)
}

func TestAttributeConstructors(t *testing.T) {
	tests := []struct {
		name     string
		attr     Attribute
		key      string
		expected any
	}{
		{"string", String("k", "v"), "k", "v"},
		{"int", Int("k", 3), "k", 3},
		{"bool", Bool("k", true), "k", true},
		{"duration", Duration("k", time.Second), "k", time.Second},
		{"error", Error(errors.New("boom")), AttrError, "boom"},
		{"nil error", Error(nil), AttrError, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.attr.Key != tc.key {
				t.Errorf("expected key %q, got %q", tc.key, tc.attr.Key)
			}
			if tc.attr.Value != tc.expected {
				t.Errorf("expected value %v, got %v", tc.expected, tc.attr.Value)
			}
		})
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("short", 10); got != "short" {
		t.Errorf("expected unchanged string, got %q", got)
	}

	got := TruncateString("abcdefghij", 4)
	if !strings.HasPrefix(got, "abcd...") || !strings.Contains(got, "total: 10 chars") {
		t.Errorf("unexpected truncation %q", got)
	}

	long := strings.Repeat("x", DefaultMaxStringLength+1)
	if got := TruncateString(long, 0); !strings.Contains(got, "truncated") {
		t.Errorf("expected default truncation, got length %d", len(got))
	}
}

func TestTruncateString_RuneBoundary(t *testing.T) {
	// "é" is two bytes; cutting at 2 would split it.
	got := TruncateString("aé-bcdef", 2)
	if !strings.HasPrefix(got, "a... ") {
		t.Errorf("expected cut before the multi-byte rune, got %q", got)
	}
}

func TestContextHelpers(t *testing.T) {
	// No span: must not panic.
	AddEvent(context.Background(), "ignored")
	SetAttributes(context.Background(), String("k", "v"))

	span := &recordingSpan{}
	ctx := ContextWithSpan(context.Background(), span)
	AddEvent(ctx, "cache.hit")
	SetAttributes(ctx, Bool("cache.hit", true))

	if len(span.events) != 1 || span.events[0] != "cache.hit" {
		t.Errorf("expected one cache.hit event, got %v", span.events)
	}
	if len(span.attrs) != 1 || span.attrs[0].Key != "cache.hit" {
		t.Errorf("expected one attribute, got %v", span.attrs)
	}
}

func TestSpanContextRoundTrip(t *testing.T) {
	if SpanFromContext(context.Background()) != nil {
		t.Error("expected no span in empty context")
	}

	span := &recordingSpan{}
	ctx := ContextWithSpan(context.Background(), span)
	got := SpanFromContext(ctx)
	if got == nil {
		t.Fatal("expected span from context")
	}
	got.AddEvent("ping")
	if len(span.events) != 1 || span.events[0] != "ping" {
		t.Errorf("expected the same span instance, events=%v", span.events)
	}
}

func TestContextWithSpan_NilContext(t *testing.T) {
	//lint:ignore SA1012 exercising the nil guard
	ctx := ContextWithSpan(nil, &recordingSpan{})
	if SpanFromContext(ctx) == nil {
		t.Error("expected span attached to a fresh context")
	}
}
