package infrastructure

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/architeacher/svc-log-forwarder/internal/config"
)

const (
	exporterGRPC   = "grpc"
	exporterStdout = "stdout"
)

type TracerShutdownFunc func(ctx context.Context) error

// InitGlobalTracer installs a tracer provider and the W3C propagators globally.
func InitGlobalTracer(ctx context.Context, telemetry config.Telemetry, app config.AppConfig) (TracerShutdownFunc, error) {
	exporter, err := newSpanExporter(ctx, telemetry)
	if err != nil {
		return nil, err
	}

	res, err := newResource(ctx, app)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(newSampler(telemetry.Traces.SamplerRatio)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

func newSpanExporter(ctx context.Context, telemetry config.Telemetry) (sdktrace.SpanExporter, error) {
	switch strings.ToLower(telemetry.ExporterType) {
	case exporterGRPC, "":
		exp, err := otlptrace.New(ctx, otlptracegrpc.NewClient(
			otlptracegrpc.WithEndpoint(fmt.Sprintf("%s:%s", telemetry.OtelGRPCHost, telemetry.OtelGRPCPort)),
			otlptracegrpc.WithInsecure(),
		))
		if err != nil {
			return nil, fmt.Errorf("failed to create otlp trace exporter: %w", err)
		}

		return exp, nil

	case exporterStdout:
		exp, err := stdouttrace.New(stdouttrace.WithWriter(os.Stderr))
		if err != nil {
			return nil, fmt.Errorf("failed to create stdout trace exporter: %w", err)
		}

		return exp, nil

	default:
		return nil, fmt.Errorf("unsupported trace exporter %q", telemetry.ExporterType)
	}
}

func newSampler(ratio float64) sdktrace.Sampler {
	switch {
	case ratio >= 1:
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	case ratio <= 0:
		return sdktrace.ParentBased(sdktrace.NeverSample())
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
	}
}
