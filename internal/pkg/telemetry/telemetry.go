// Package telemetry wires OpenTelemetry metrics and traces for txharvest.
//
// Exporters speak OTLP over gRPC and are configured through the standard
// OTEL_EXPORTER_OTLP_* environment variables. Providers are registered
// globally, so instrumented packages only depend on the otel API.
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

// ShutdownFunc flushes and stops every telemetry provider started by Init.
type ShutdownFunc func(ctx context.Context) error

// provider is the shutdown surface shared by the SDK meter and tracer providers.
type provider interface {
	Shutdown(ctx context.Context) error
}

// newResource describes the running batch job: the SDK defaults plus its service name.
func newResource(serviceName string) (*sdkresource.Resource, error) {
	return sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

// initMeterProvider registers a global MeterProvider exporting periodically over OTLP/gRPC.
func initMeterProvider(ctx context.Context, res *sdkresource.Resource) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)
	return mp, nil
}

// initTracerProvider registers a global TracerProvider batching spans over OTLP/gRPC.
func initTracerProvider(ctx context.Context, res *sdkresource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	return tp, nil
}

// shutdownAll returns a ShutdownFunc stopping every provider and joining their errors.
func shutdownAll(providers ...provider) ShutdownFunc {
	return func(ctx context.Context) error {
		errs := make([]error, 0, len(providers))
		for _, p := range providers {
			errs = append(errs, p.Shutdown(ctx))
		}

		return errors.Join(errs...)
	}
}

// Init starts metric and trace export for the given service name and registers
// the providers globally.
//
// The returned ShutdownFunc must be called before the process exits; otherwise
// the last batch of spans and the final metric collection are lost.
func Init(ctx context.Context, serviceName string) (ShutdownFunc, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	mp, err := initMeterProvider(ctx, res)
	if err != nil {
		return nil, err
	}

	tp, err := initTracerProvider(ctx, res)
	if err != nil {
		return nil, errors.Join(err, mp.Shutdown(ctx))
	}

	return shutdownAll(mp, tp), nil
}
