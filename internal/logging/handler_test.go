package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, Options{Level: slog.LevelInfo})
	log := slog.New(h)

	log.Debug("hidden")
	log.Info("shown", "archive", "svc-1.2.3.tar.gz")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "svc-1.2.3.tar.gz")
}

func TestSetLevelAppliesToDerivedHandlers(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, Options{Level: slog.LevelWarn})
	derived := slog.New(h).With("run", "abc")

	derived.Info("before")
	h.SetLevel(slog.LevelDebug)
	derived.Debug("after")

	assert.NotContains(t, buf.String(), "before")
	assert.Contains(t, buf.String(), "after")
	assert.Equal(t, slog.LevelDebug, h.Level())

	_, ok := derived.Handler().(*Handler)
	require.True(t, ok)
}

func TestHandlerName(t *testing.T) {
	var buf bytes.Buffer
	slog.New(NewHandler(&buf, Options{Name: "relpack"})).Warn("careful")
	assert.Contains(t, buf.String(), "relpack")
}

func TestZapLevel(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want slog.Level
	}{
		{slog.LevelDebug, slog.LevelDebug},
		{slog.LevelDebug + 2, slog.LevelDebug},
		{slog.LevelInfo, slog.LevelInfo},
		{slog.LevelWarn, slog.LevelWarn},
		{slog.LevelError, slog.LevelError},
		{slog.LevelError + 4, slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			h := NewHandler(&bytes.Buffer{}, Options{Level: tt.in})
			assert.Equal(t, tt.want, h.Level())
		})
	}
}
