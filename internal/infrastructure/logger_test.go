package infrastructure

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architeacher/svc-log-forwarder/internal/config"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		cfg         config.LoggingConfig
		logDebug    bool
		wantJSON    bool
		wantWritten bool
	}{
		{
			name:        "json at info drops debug",
			cfg:         config.LoggingConfig{Level: "info", Format: logFormatJSON},
			logDebug:    true,
			wantWritten: false,
		},
		{
			name:        "json at debug keeps debug",
			cfg:         config.LoggingConfig{Level: "DEBUG", Format: logFormatJSON},
			logDebug:    true,
			wantJSON:    true,
			wantWritten: true,
		},
		{
			name:        "unknown level falls back to info",
			cfg:         config.LoggingConfig{Level: "verbose", Format: logFormatJSON},
			wantJSON:    true,
			wantWritten: true,
		},
		{
			name:        "console format",
			cfg:         config.LoggingConfig{Level: "info", Format: logFormatConsole},
			wantWritten: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := newLogger(&buf, tt.cfg).Component("relay")

			if tt.logDebug {
				logger.Debug().Msg("line forwarded")
			} else {
				logger.Info().Msg("line forwarded")
			}

			if !tt.wantWritten {
				assert.Zero(t, buf.Len())

				return
			}

			require.NotZero(t, buf.Len())
			assert.Contains(t, buf.String(), "line forwarded")

			if tt.wantJSON {
				var entry map[string]any
				require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
				assert.Equal(t, "relay", entry["component"])
				assert.Contains(t, entry, "time")
			}
		})
	}
}

func TestNewTestLogger(t *testing.T) {
	t.Parallel()

	logger := NewTestLogger()

	assert.NotPanics(t, func() {
		logger.Error().Str("k", "v").Msg("discarded")
	})
}
