package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	prev := defaultLogger
	t.Cleanup(func() { defaultLogger = prev })

	var buf bytes.Buffer
	defaultLogger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level}))
	return &buf
}

func TestDatabaseCall(t *testing.T) {
	buf := captureOutput(t, slog.LevelDebug)

	DatabaseCall("SELECT", "organisation_applications", "id", "app-1")

	out := buf.String()
	assert.Contains(t, out, "Database call")
	assert.Contains(t, out, "operation=SELECT")
	assert.Contains(t, out, "query=organisation_applications")
	assert.Contains(t, out, "id=app-1")
}

func TestDatabaseResult(t *testing.T) {
	t.Run("success logs at debug", func(t *testing.T) {
		buf := captureOutput(t, slog.LevelDebug)

		DatabaseResult("INSERT", 3, nil, "table", "media_items")

		out := buf.String()
		assert.Contains(t, out, "Database call succeeded")
		assert.Contains(t, out, "rows_affected=3")
	})

	t.Run("failure logs at error", func(t *testing.T) {
		buf := captureOutput(t, slog.LevelError)

		DatabaseResult("UPDATE", 0, errors.New("connection reset"), "id", "x")

		out := buf.String()
		assert.Contains(t, out, "Database call failed")
		assert.Contains(t, out, "connection reset")
	})

	t.Run("debug detail is suppressed above debug level", func(t *testing.T) {
		buf := captureOutput(t, slog.LevelInfo)

		DatabaseCall("SELECT", "team_members")
		DatabaseResult("SELECT", 1, nil)

		assert.Empty(t, buf.String())
	})
}

func TestInitialize_LevelParsing(t *testing.T) {
	prev := defaultLogger
	t.Cleanup(func() { defaultLogger = prev })

	Initialize("debug", "text")
	assert.True(t, Get().Enabled(nil, slog.LevelDebug))

	Initialize("error", "json")
	assert.False(t, Get().Enabled(nil, slog.LevelInfo))

	Initialize("nonsense", "text")
	assert.True(t, Get().Enabled(nil, slog.LevelInfo), "unknown levels default to info")
}
