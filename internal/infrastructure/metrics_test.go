package infrastructure

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/architeacher/svc-log-forwarder/internal/config"
)

func newTestMetrics(t *testing.T) (*OTELMetrics, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	m, err := newOTELMetrics(provider, "test", NewTestLogger())
	require.NoError(t, err)

	t.Cleanup(func() { _ = m.Shutdown(context.Background()) })

	return m, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Aggregation {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := make(map[string]metricdata.Aggregation)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m.Data
		}
	}

	return out
}

func counterTotal(t *testing.T, data metricdata.Aggregation) int64 {
	t.Helper()

	sum, ok := data.(metricdata.Sum[int64])
	require.True(t, ok, "expected an int64 sum, got %T", data)

	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}

	return total
}

func TestNewMetrics_DisabledReturnsNoOp(t *testing.T) {
	t.Parallel()

	m, err := NewMetrics(context.Background(), config.ServiceConfig{}, NewTestLogger())

	require.NoError(t, err)
	assert.IsType(t, &NoOpMetrics{}, m)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NoError(t, m.Shutdown(context.Background()))
}

func TestOTELMetrics_Records(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m, reader := newTestMetrics(t)

	m.RecordLine(ctx, "forwarded")
	m.RecordLine(ctx, "rejected")
	m.RecordForward(ctx, 20*time.Millisecond, true, "")
	m.RecordForward(ctx, 40*time.Millisecond, false, "connect_timeout")
	m.RecordRetry(ctx, 1)
	m.RecordConnectionEvent(ctx, "connected")
	m.RecordBreakerStateChange(ctx, "closed", "open")

	data := collect(t, reader)

	assert.EqualValues(t, 2, counterTotal(t, data["lines_total"]))
	assert.EqualValues(t, 2, counterTotal(t, data["forward_requests_total"]))
	assert.EqualValues(t, 1, counterTotal(t, data["forward_errors_total"]))
	assert.EqualValues(t, 1, counterTotal(t, data["forward_retries_total"]))
	assert.EqualValues(t, 1, counterTotal(t, data["broker_connection_events_total"]))
	assert.EqualValues(t, 1, counterTotal(t, data["circuit_breaker_transitions_total"]))

	hist, ok := data["forward_duration_seconds"].(metricdata.Histogram[float64])
	require.True(t, ok)

	var count uint64
	for _, dp := range hist.DataPoints {
		count += dp.Count
	}

	assert.EqualValues(t, 2, count)
}

func TestOTELMetrics_FailedForwardWithoutKind(t *testing.T) {
	t.Parallel()

	m, reader := newTestMetrics(t)

	m.RecordForward(context.Background(), time.Millisecond, false, "")

	data := collect(t, reader)
	assert.EqualValues(t, 1, counterTotal(t, data["forward_requests_total"]))
	if errs, ok := data["forward_errors_total"]; ok {
		assert.Zero(t, counterTotal(t, errs))
	}
}

func TestNewSampler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ratio float64
		want  string
	}{
		{ratio: 1, want: "ParentBased{root:AlwaysOnSampler"},
		{ratio: 0, want: "ParentBased{root:AlwaysOffSampler"},
		{ratio: 0.25, want: "ParentBased{root:TraceIDRatioBased{0.25}"},
	}

	for _, tt := range tests {
		assert.Contains(t, newSampler(tt.ratio).Description(), tt.want)
	}
}

func TestNewSpanExporter_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := newSpanExporter(context.Background(), config.Telemetry{ExporterType: "zipkin"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "zipkin")
}
