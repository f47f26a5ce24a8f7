// Package logging defines the structured logging interface used across uu.
//
// The core algorithms are silent by default: every component that accepts a
// [Logger] falls back to [NopLogger] when none is configured. The CLI wires a
// charmbracelet terminal logger through [NewTerminal].
package logging

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// Logger is the structured logging surface used by walker, serializer and the
// commands. attrs are alternating key-value pairs, as with log/slog:
//
//	logger.Debug("bounded serialization trimmed output", "trimmed_strings", 3)
type Logger interface {
	Debug(msg string, attrs ...any)
	Info(msg string, attrs ...any)
	Warn(msg string, attrs ...any)
	Error(msg string, attrs ...any)
	// With returns a Logger that prepends attrs to every record.
	With(attrs ...any) Logger
}

// ComponentKey is the attribute under which [ForComponent] tags records.
const ComponentKey = "component"

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any)  {}
func (NopLogger) Warn(string, ...any)  {}
func (NopLogger) Error(string, ...any) {}

// With returns the receiver; there is nothing to annotate.
func (n NopLogger) With(...any) Logger { return n }

// SlogAdapter exposes a *slog.Logger as a Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps logger, falling back to slog.Default() when it is nil.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

func (s *SlogAdapter) Debug(msg string, attrs ...any) { s.logger.Debug(msg, attrs...) }
func (s *SlogAdapter) Info(msg string, attrs ...any)  { s.logger.Info(msg, attrs...) }
func (s *SlogAdapter) Warn(msg string, attrs ...any)  { s.logger.Warn(msg, attrs...) }
func (s *SlogAdapter) Error(msg string, attrs ...any) { s.logger.Error(msg, attrs...) }

func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

// Slog returns the wrapped *slog.Logger.
func (s *SlogAdapter) Slog() *slog.Logger { return s.logger }

var (
	_ Logger = NopLogger{}
	_ Logger = (*SlogAdapter)(nil)
)

// NewTerminal builds a human-readable logger writing to w. Records carry a
// short timestamp; debug records are emitted only when verbose is set.
func NewTerminal(w io.Writer, verbose bool) *SlogAdapter {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
	return NewSlogAdapter(slog.New(handler))
}

// ForComponent tags l with the component name. A nil l yields NopLogger.
func ForComponent(l Logger, name string) Logger {
	if l == nil {
		return NopLogger{}
	}
	if _, ok := l.(NopLogger); ok {
		return l
	}
	return l.With(ComponentKey, name)
}
