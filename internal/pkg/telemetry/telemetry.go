// Package telemetry provides helpers to initialize OpenTelemetry metrics and
// tracing. By default it exports over OTLP/gRPC, configured through the
// standard OTEL_EXPORTER_OTLP_* environment variables. It creates a unified
// Resource for the service, registers global providers, and exposes a
// ShutdownFunc to cleanly flush and stop all telemetry pipelines.
package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// config holds the optional exporter overrides.
type config struct {
	metricReader  sdkmetric.Reader      // nil means a periodic OTLP/gRPC reader
	traceExporter sdktrace.SpanExporter // nil means an OTLP/gRPC exporter
}

// Option customizes Init.
type Option func(*config)

// WithMetricReader replaces the default OTLP/gRPC metric pipeline with r.
func WithMetricReader(r sdkmetric.Reader) Option {
	return func(c *config) {
		c.metricReader = r
	}
}

// WithTraceExporter replaces the default OTLP/gRPC span exporter with e.
// Spans are exported synchronously when an exporter is supplied this way.
func WithTraceExporter(e sdktrace.SpanExporter) Option {
	return func(c *config) {
		c.traceExporter = e
	}
}

// initMeterProvider sets up a MeterProvider using the configured reader, or
// a periodic OTLP/gRPC reader, and the given Resource. It also registers the
// provider as the global MeterProvider.
func initMeterProvider(ctx context.Context, res *sdkresource.Resource, reader sdkmetric.Reader) (*sdkmetric.MeterProvider, error) {
	if reader == nil {
		exporter, err := otlpmetricgrpc.New(ctx)
		if err != nil {
			return nil, err
		}

		reader = sdkmetric.NewPeriodicReader(exporter)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)
	return mp, nil
}

// initTracerProvider sets up a TracerProvider using the configured exporter,
// or a batched OTLP/gRPC exporter, and the given Resource. It also registers
// the provider as the global TracerProvider.
func initTracerProvider(ctx context.Context, res *sdkresource.Resource, exporter sdktrace.SpanExporter) (*sdktrace.TracerProvider, error) {
	var processor sdktrace.SpanProcessor
	if exporter != nil {
		processor = sdktrace.NewSimpleSpanProcessor(exporter)
	} else {
		otlpExporter, err := otlptracegrpc.New(ctx)
		if err != nil {
			return nil, err
		}

		processor = sdktrace.NewBatchSpanProcessor(otlpExporter)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(processor),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	return tp, nil
}

// newResource constructs an OpenTelemetry Resource by merging the default
// system resource with a ServiceName attribute for the given service.
func newResource(serviceName string) (*sdkresource.Resource, error) {
	return sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

// ShutdownFunc defines a callback to flush and stop all telemetry providers.
// Call this function at application shutdown to ensure all telemetry is sent.
type ShutdownFunc func(ctx context.Context) error

// Noop is a ShutdownFunc for when telemetry is disabled.
func Noop(context.Context) error {
	return nil
}

// Init configures OpenTelemetry for metrics and traces and registers the
// global providers used by otel.Tracer and otel.Meter.
//
// The returned ShutdownFunc flushes and stops both providers. Until Init is
// called, the global providers are no-ops.
func Init(ctx context.Context, serviceName string, opts ...Option) (ShutdownFunc, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	mp, err := initMeterProvider(ctx, res, cfg.metricReader)
	if err != nil {
		return nil, err
	}

	tp, err := initTracerProvider(ctx, res, cfg.traceExporter)
	if err != nil {
		return nil, errors.Join(err, mp.Shutdown(ctx))
	}

	return func(ctx context.Context) error {
		errs := []error{
			mp.Shutdown(ctx),
			tp.Shutdown(ctx),
		}
		return errors.Join(errs...)
	}, nil
}
