package infrastructure

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/architeacher/svc-log-forwarder/internal/config"
)

const (
	logFormatConsole = "console"
	logFormatJSON    = "json"
)

// Logger is the service-wide structured logger.
type Logger struct {
	zerolog.Logger
}

// New builds a logger writing to stderr. Stdout is left to the configuration dump.
func New(cfg config.LoggingConfig) Logger {
	return newLogger(os.Stderr, cfg)
}

// NewTestLogger returns a logger that discards everything.
func NewTestLogger() Logger {
	return Logger{Logger: zerolog.Nop()}
}

func newLogger(out io.Writer, cfg config.LoggingConfig) Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if strings.EqualFold(cfg.Format, logFormatConsole) {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return Logger{
		Logger: zerolog.New(out).
			Level(level).
			With().
			Timestamp().
			Logger(),
	}
}

// Component returns a child logger tagged with the component name.
func (l Logger) Component(name string) Logger {
	return Logger{Logger: l.With().Str("component", name).Logger()}
}
