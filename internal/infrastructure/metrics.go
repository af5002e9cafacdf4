//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package infrastructure

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/architeacher/svc-log-forwarder/internal/config"
)

const (
	metricsNamespace = "log_forwarder"
)

type (
	//counterfeiter:generate -o ../mocks/metrics.go . Metrics

	Metrics interface {
		RecordLine(ctx context.Context, outcome string)
		RecordForward(ctx context.Context, duration time.Duration, success bool, errorKind string)
		RecordRetry(ctx context.Context, attempt int)
		RecordConnectionEvent(ctx context.Context, event string)
		RecordBreakerStateChange(ctx context.Context, from, to string)
		Handler() http.Handler
		Shutdown(ctx context.Context) error
	}

	OTELMetrics struct {
		meterProvider *sdkmetric.MeterProvider
		meter         metric.Meter
		logger        Logger

		linesTotal            metric.Int64Counter
		forwardTotal          metric.Int64Counter
		forwardDuration       metric.Float64Histogram
		forwardErrorTotal     metric.Int64Counter
		retryTotal            metric.Int64Counter
		connectionEventsTotal metric.Int64Counter
		breakerTransitions    metric.Int64Counter
	}
)

func NewMetrics(ctx context.Context, cfg config.ServiceConfig, logger Logger) (Metrics, error) {
	if !cfg.Telemetry.Metrics.Enabled {
		logger.Info().Msg("metrics disabled, using NoOp implementation")

		return &NoOpMetrics{}, nil
	}

	return NewOTELMetrics(ctx, cfg, logger)
}

func NewOTELMetrics(ctx context.Context, cfg config.ServiceConfig, logger Logger) (*OTELMetrics, error) {
	endpoint := fmt.Sprintf("%s:%s", cfg.Telemetry.OtelGRPCHost, cfg.Telemetry.OtelGRPCPort)

	conn, err := grpc.NewClient(
		endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection to OTEL collector: %w", err)
	}

	exporter, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP metric exporter: %w", err)
	}

	res, err := newResource(ctx, cfg.AppConfig)
	if err != nil {
		return nil, err
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(meterProvider)

	provider, err := newOTELMetrics(meterProvider, cfg.AppConfig.ServiceVersion, logger.Component("metrics"))
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("otel_endpoint", endpoint).
		Msg("OTEL metrics provider initialized successfully")

	return provider, nil
}

func newOTELMetrics(meterProvider *sdkmetric.MeterProvider, version string, logger Logger) (*OTELMetrics, error) {
	provider := &OTELMetrics{
		meterProvider: meterProvider,
		meter: meterProvider.Meter(
			metricsNamespace,
			metric.WithInstrumentationVersion(version),
		),
		logger: logger,
	}

	if err := provider.initializeMetrics(); err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	return provider, nil
}

func newResource(ctx context.Context, app config.AppConfig) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(app.ServiceName),
			semconv.ServiceVersionKey.String(app.ServiceVersion),
			semconv.ServiceInstanceIDKey.String(app.CommitSHA),
			semconv.DeploymentEnvironmentKey.String(app.Env),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	return res, nil
}

func (om *OTELMetrics) initializeMetrics() error {
	var err error

	om.linesTotal, err = om.meter.Int64Counter(
		"lines_total",
		metric.WithDescription("Total number of input lines read, by outcome"),
		metric.WithUnit("{line}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create lines_total counter: %w", err)
	}

	om.forwardTotal, err = om.meter.Int64Counter(
		"forward_requests_total",
		metric.WithDescription("Total number of log messages handed to the broker"),
		metric.WithUnit("{message}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create forward_requests_total counter: %w", err)
	}

	om.forwardDuration, err = om.meter.Float64Histogram(
		"forward_duration_seconds",
		metric.WithDescription("Time spent forwarding one message, retries included"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("failed to create forward_duration_seconds histogram: %w", err)
	}

	om.forwardErrorTotal, err = om.meter.Int64Counter(
		"forward_errors_total",
		metric.WithDescription("Total number of messages that could not be forwarded"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create forward_errors_total counter: %w", err)
	}

	om.retryTotal, err = om.meter.Int64Counter(
		"forward_retries_total",
		metric.WithDescription("Total number of send retries"),
		metric.WithUnit("{retry}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create forward_retries_total counter: %w", err)
	}

	om.connectionEventsTotal, err = om.meter.Int64Counter(
		"broker_connection_events_total",
		metric.WithDescription("Total number of broker connection state changes"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create broker_connection_events_total counter: %w", err)
	}

	om.breakerTransitions, err = om.meter.Int64Counter(
		"circuit_breaker_transitions_total",
		metric.WithDescription("Total number of circuit breaker state transitions"),
		metric.WithUnit("{transition}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create circuit_breaker_transitions_total counter: %w", err)
	}

	return nil
}

func (om *OTELMetrics) RecordLine(ctx context.Context, outcome string) {
	om.linesTotal.Add(ctx, 1,
		metric.WithAttributes(
			OutcomeAttr(outcome),
		),
	)
}

func (om *OTELMetrics) RecordForward(ctx context.Context, duration time.Duration, success bool, errorKind string) {
	status := "success"
	if !success {
		status = "error"
	}

	om.forwardTotal.Add(ctx, 1,
		metric.WithAttributes(
			StatusAttr(status),
		),
	)

	om.forwardDuration.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			StatusAttr(status),
		),
	)

	if !success && errorKind != "" {
		om.forwardErrorTotal.Add(ctx, 1,
			metric.WithAttributes(
				ErrorKindAttr(errorKind),
			),
		)
	}
}

func (om *OTELMetrics) RecordRetry(ctx context.Context, attempt int) {
	om.retryTotal.Add(ctx, 1,
		metric.WithAttributes(
			AttemptAttr(attempt),
		),
	)
}

func (om *OTELMetrics) RecordConnectionEvent(ctx context.Context, event string) {
	om.connectionEventsTotal.Add(ctx, 1,
		metric.WithAttributes(
			ConnectionEventAttr(event),
		),
	)
}

func (om *OTELMetrics) RecordBreakerStateChange(ctx context.Context, from, to string) {
	om.breakerTransitions.Add(ctx, 1,
		metric.WithAttributes(
			BreakerFromAttr(from),
			BreakerToAttr(to),
		),
	)
}

func (om *OTELMetrics) Handler() http.Handler {
	return promhttp.Handler()
}

func (om *OTELMetrics) Shutdown(ctx context.Context) error {
	if err := om.meterProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown meter provider: %w", err)
	}

	return nil
}
