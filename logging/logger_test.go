package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	l.Debug("ignored", "k", 1)
	l.Info("ignored")
	l.Warn("ignored")
	l.Error("ignored")
	assert.Equal(t, NopLogger{}, l.With("k", "v"))
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	l := NewSlogAdapter(slog.New(handler)).With("doc", "a.yaml")

	l.Debug("trimmed", "strings", 2)
	l.Warn("careful")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "msg=trimmed")
	assert.Contains(t, out, "doc=a.yaml")
	assert.Contains(t, out, "strings=2")
	assert.Contains(t, out, "level=WARN")
}

func TestNewSlogAdapter_NilUsesDefault(t *testing.T) {
	a := NewSlogAdapter(nil)
	assert.Same(t, slog.Default(), a.Slog())
}

func TestNewTerminal(t *testing.T) {
	var buf bytes.Buffer
	NewTerminal(&buf, false).Debug("hidden")
	assert.Zero(t, buf.Len(), "debug should be filtered at info level")

	NewTerminal(&buf, false).Info("shown", "k", "v")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "k=v")

	buf.Reset()
	NewTerminal(&buf, true).Debug("verbose")
	assert.Contains(t, buf.String(), "verbose")
}

func TestForComponent(t *testing.T) {
	assert.Equal(t, NopLogger{}, ForComponent(nil, "walker"))
	assert.Equal(t, NopLogger{}, ForComponent(NopLogger{}, "walker"))

	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, nil)
	ForComponent(NewSlogAdapter(slog.New(handler)), "serializer").Info("done")
	assert.Contains(t, buf.String(), ComponentKey+"=serializer")
}
