package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		m := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestZerologLogger_LevelsAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", "two")
	log.Warn(ctx, "wrn")
	log.Error(ctx, "err", "d", true)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 4)
	assert.Equal(t, "debug", lines[0]["level"])
	assert.Equal(t, float64(1), lines[0]["a"])
	assert.Equal(t, "inf", lines[1]["message"])
	assert.Equal(t, "two", lines[1]["b"])
	assert.Equal(t, "warn", lines[2]["level"])
	assert.Equal(t, true, lines[3]["d"])
}

func TestZerologLogger_WithAndOddArgs(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf)).With("module", "grpc_server")
	log.Info(context.Background(), "hello", "dangling")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "grpc_server", lines[0]["module"])
	assert.Equal(t, "dangling", lines[0]["!BADKEY"])
}

func TestNew_SelectsBackend(t *testing.T) {
	var buf bytes.Buffer

	_, ok := New("zerolog", "warn", &buf).(*ZerologLogger)
	assert.True(t, ok)

	_, ok = New("slog", "debug", &buf).(*SlogLogger)
	assert.True(t, ok)

	_, ok = New("", "", &buf).(*SlogLogger)
	assert.True(t, ok)
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("zerolog", "warn", &buf)
	log.Info(context.Background(), "hidden")
	log.Warn(context.Background(), "shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")

	buf.Reset()
	log = New("slog", "error", &buf)
	log.Warn(context.Background(), "hidden")
	log.Error(context.Background(), "shown")
	out = buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestZerologLogger_RequestIDFromContext(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf))

	log.Info(ContextWithRequestID(context.Background(), "req-7"), "rpc handled", "method", "SignIn")
	log.Info(context.Background(), "no id")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "req-7", lines[0][RequestIDKey])
	assert.Equal(t, "SignIn", lines[0]["method"])
	assert.NotContains(t, lines[1], RequestIDKey)
}

func TestZerologLogger_RequestIDSurvivesDanglingKey(t *testing.T) {
	var buf bytes.Buffer
	NewZerologLogger(zerolog.New(&buf)).Warn(ContextWithRequestID(context.Background(), "req-8"), "odd", "dangling")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "req-8", lines[0][RequestIDKey])
	assert.Equal(t, "dangling", lines[0]["!BADKEY"])
}
