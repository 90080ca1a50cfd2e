package slogobs

import (
	"io"
	"log/slog"
	"os"
)

// Option configures an Observer built by [New].
type Option func(*settings)

// settings collects the options passed to New. Level and format fall back to
// the environment only when no option set them.
type settings struct {
	format    *Format
	level     *slog.Level
	output    io.Writer
	logger    *slog.Logger
	baseAttrs []any
}

// WithFormat sets the log output format.
func WithFormat(format Format) Option {
	return func(s *settings) {
		s.format = &format
	}
}

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(s *settings) {
		s.level = &level
	}
}

// WithOutput sets the writer logs go to. Default: stderr.
func WithOutput(output io.Writer) Option {
	return func(s *settings) {
		s.output = output
	}
}

// WithLogger uses an existing slog.Logger instead of building a handler.
// Format, level and output are ignored; attributes from [WithAttrs] still apply.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithAttrs adds attributes to every record, e.g. the service name or the
// active cache backend.
func WithAttrs(attrs ...slog.Attr) Option {
	return func(s *settings) {
		for _, a := range attrs {
			s.baseAttrs = append(s.baseAttrs, a)
		}
	}
}

func applyOptions(opts ...Option) *settings {
	s := &settings{output: os.Stderr}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *settings) resolvedFormat() Format {
	if s.format != nil {
		return *s.format
	}
	return GetFormatFromEnv()
}

func (s *settings) resolvedLevel() slog.Level {
	if s.level != nil {
		return *s.level
	}
	return GetLogLevelFromEnv()
}

// build returns the logger described by s.
func (s *settings) build() *slog.Logger {
	logger := s.logger
	if logger == nil {
		level := s.resolvedLevel()
		var handler slog.Handler
		if s.resolvedFormat() == FormatJSON {
			handler = slog.NewJSONHandler(s.output, &slog.HandlerOptions{Level: level})
		} else {
			handler = newCompactHandler(s.output, level)
		}
		logger = slog.New(handler)
	}
	if len(s.baseAttrs) > 0 {
		logger = logger.With(s.baseAttrs...)
	}
	return logger
}
