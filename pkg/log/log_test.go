package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "line %q", line)
		entries = append(entries, entry)
	}
	return entries
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    LogLevel
		wantErr bool
	}{
		{input: "error", want: LogLevelError},
		{input: "warn", want: LogLevelWarn},
		{input: "info", want: LogLevelInfo},
		{input: "debug", want: LogLevelDebug},
		{input: "trace", want: LogLevelTrace},
		{input: "verbose", want: LogLevelError, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLogLevel(tt.input)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.input, got.String())
			}
		})
	}
}

func TestLogger_FiltersByLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, FormatJSON, LogLevelInfo)

	logger.Error("error %d", 1)
	logger.Warn("warn %d", 2)
	logger.Info("info %d", 3)
	logger.Debug("debug %d", 4)
	logger.Trace("trace %d", 5)

	entries := decodeLines(t, buf)
	require.Len(t, entries, 3)
	assert.Equal(t, "error", entries[0]["level"])
	assert.Equal(t, "error 1", entries[0]["msg"])
	assert.Equal(t, "warn", entries[1]["level"])
	assert.Equal(t, "info 3", entries[2]["msg"])
}

func TestLogger_TraceLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, FormatJSON, LogLevelDebug)
	logger.Trace("hidden")
	assert.Empty(t, buf.String())

	logger.SetLevel(LogLevelTrace)
	logger.Trace("shown %s", "now")
	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "trace", entries[0]["level"])
	assert.Equal(t, "shown now", entries[0]["msg"])
}

func TestSetDefaultLogger(t *testing.T) {
	previous := defaultLogger
	defer SetDefaultLogger(previous)

	buf := &bytes.Buffer{}
	SetDefaultLogger(New(buf, FormatConsole, LogLevelWarn))
	Info("dropped")
	Warn("kept %s", "warning")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept warning")
	assert.Contains(t, out, "warn")
}
