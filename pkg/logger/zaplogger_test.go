package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestNewZapLogger_WritesJSONWithIdentity(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewZapLogger(Options{AppName: "test-app", AppEnv: "test"}, &buf)
	require.NoError(t, err)

	l.Info("archive request", map[string]any{"start_date": "2025-07-18"})
	require.NoError(t, l.Stop())

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "archive request", entries[0]["msg"])
	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, "test-app", entries[0]["app_name"])
	assert.Equal(t, "test", entries[0]["app_zone"])
	assert.Equal(t, l.RunID(), entries[0]["run_id"])
	assert.Equal(t, "2025-07-18", entries[0]["start_date"])
	assert.Contains(t, entries[0]["caller_file"], "zaplogger_test.go")
}

func TestNewZapLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewZapLogger(Options{AppName: "test-app", Level: "warn"}, &buf)
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warning("shown")
	l.Error(errors.New("boom"), map[string]any{"kind": "timeout"})

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "shown", entries[0]["msg"])
	assert.Equal(t, "boom", entries[1]["error"])
	assert.Equal(t, "timeout", entries[1]["kind"])
}

func TestNewZapLogger_InvalidOptions(t *testing.T) {
	_, err := NewZapLogger(Options{Level: "loud"})
	assert.Error(t, err)

	_, err = NewZapLogger(Options{Format: "xml"})
	assert.Error(t, err)
}

func TestNewZapLogger_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewZapLogger(Options{AppName: "test-app", Format: FormatConsole}, &buf)
	require.NoError(t, err)

	l.Info("console entry")
	assert.Contains(t, buf.String(), "console entry")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestNewZapLogger_UniqueRunIDs(t *testing.T) {
	a, err := NewZapLogger(Options{}, &bytes.Buffer{})
	require.NoError(t, err)
	b, err := NewZapLogger(Options{}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.NotEmpty(t, a.RunID())
	assert.NotEqual(t, a.RunID(), b.RunID())
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("ignored")
	l.Error(errors.New("ignored"))
	assert.NoError(t, l.Stop())
}
