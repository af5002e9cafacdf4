package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

type contextKey string

const (
	skipAccessLogKey contextKey = "skip_access_log"
)

type AccessLogger struct {
	logger zerolog.Logger
}

func NewAccessLogger(logger zerolog.Logger) *AccessLogger {
	return &AccessLogger{
		logger: logger.With().Str("component", "http_access").Logger(),
	}
}

func (a *AccessLogger) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if skipAccessLog(r.Context()) {
			next.ServeHTTP(w, r)

			return
		}

		startTime := time.Now()
		recorder := NewResponseRecorder(w)

		next.ServeHTTP(recorder, r)

		duration := time.Since(startTime)

		var logEvent *zerolog.Event

		switch status := recorder.StatusCode(); {
		case status >= http.StatusInternalServerError:
			logEvent = a.logger.Error()
		case status >= http.StatusBadRequest:
			logEvent = a.logger.Warn()
		default:
			logEvent = a.logger.Info()
		}

		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote_addr", r.RemoteAddr).
			Str("user_agent", r.UserAgent()).
			Int("status_code", recorder.StatusCode()).
			Int64("response_size_bytes", recorder.BytesWritten()).
			Dur("duration", duration)

		if requestID := r.Header.Get("X-Request-ID"); requestID != "" {
			logEvent.Str("request_id", requestID)
		}

		logEvent.Msg("HTTP request completed")
	})
}

func skipAccessLog(ctx context.Context) bool {
	skip, ok := ctx.Value(skipAccessLogKey).(bool)

	return ok && skip
}
