package infrastructure

import (
	"context"
	"net/http"
	"time"
)

type NoOpMetrics struct{}

func (n *NoOpMetrics) RecordLine(_ context.Context, _ string) {
}

func (n *NoOpMetrics) RecordForward(_ context.Context, _ time.Duration, _ bool, _ string) {
}

func (n *NoOpMetrics) RecordRetry(_ context.Context, _ int) {
}

func (n *NoOpMetrics) RecordConnectionEvent(_ context.Context, _ string) {
}

func (n *NoOpMetrics) RecordBreakerStateChange(_ context.Context, _, _ string) {
}

func (n *NoOpMetrics) Handler() http.Handler {
	return http.NotFoundHandler()
}

func (n *NoOpMetrics) Shutdown(_ context.Context) error {
	return nil
}
