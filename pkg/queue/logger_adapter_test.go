package queue

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	return entry
}

func TestLoggerAdapter_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		event func(l *LoggerAdapter) LogEvent
		level string
	}{
		{name: "info", event: (*LoggerAdapter).Info, level: "info"},
		{name: "warn", event: (*LoggerAdapter).Warn, level: "warn"},
		{name: "error", event: (*LoggerAdapter).Error, level: "error"},
		{name: "debug", event: (*LoggerAdapter).Debug, level: "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			adapter := NewLoggerAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel))

			tt.event(adapter).Msg("hello")

			entry := decodeLine(t, &buf)
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, "hello", entry["message"])
			assert.Equal(t, "amqp_publisher", entry["component"])
		})
	}
}

func TestLogEventAdapter_Fields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	adapter := NewLoggerAdapter(zerolog.New(&buf))

	adapter.Warn().
		Err(errors.New("boom")).
		Str("exchange", "logmsg").
		Int("reply_code", 312).
		Msg("message returned by broker")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "logmsg", entry["exchange"])
	assert.EqualValues(t, 312, entry["reply_code"])
}

func TestLogEventAdapter_DisabledLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	adapter := NewLoggerAdapter(zerolog.New(&buf).Level(zerolog.ErrorLevel))

	assert.NotPanics(t, func() {
		adapter.Debug().Str("k", "v").Int("n", 1).Err(errors.New("x")).Msg("dropped")
	})
	assert.Zero(t, buf.Len())
}
