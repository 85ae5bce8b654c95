// Package telemetry configures OpenTelemetry tracing for doodles.
//
// Tracing is off unless an OTLP endpoint (or an exporter) is given to
// [Setup]. Packages that create spans use the global provider through
// [otel.Tracer], so they work the same with or without it.
package telemetry

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/macropower/doodles/pkg/version"
)

const serviceName = "doodles"

// ShutdownFunc flushes pending spans and releases the exporter.
type ShutdownFunc func(context.Context) error

type options struct {
	exporter sdktrace.SpanExporter
	insecure bool
	sync     bool
}

// Opt configures [Setup].
type Opt func(*options)

// WithExporter uses exp instead of an OTLP gRPC exporter.
func WithExporter(exp sdktrace.SpanExporter) Opt {
	return func(o *options) {
		o.exporter = exp
	}
}

// WithInsecure disables TLS for the OTLP gRPC connection.
func WithInsecure(insecure bool) Opt {
	return func(o *options) {
		o.insecure = insecure
	}
}

// WithSyncExport exports every span as soon as it ends.
func WithSyncExport() Opt {
	return func(o *options) {
		o.sync = true
	}
}

// Setup installs a global tracer provider that exports to endpoint.
// With an empty endpoint and no exporter it does nothing, and the returned
// [ShutdownFunc] is a no-op.
func Setup(ctx context.Context, endpoint string, opts ...Opt) (ShutdownFunc, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if endpoint == "" && o.exporter == nil {
		return func(context.Context) error { return nil }, nil
	}

	exp := o.exporter
	if exp == nil {
		grpcOpts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(endpoint)}
		if o.insecure {
			grpcOpts = append(grpcOpts, otlptracegrpc.WithInsecure())
		}

		var err error

		exp, err = otlptracegrpc.New(ctx, grpcOpts...)
		if err != nil {
			return nil, fmt.Errorf("create otlp exporter: %w", err)
		}
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", serviceName),
		attribute.String("service.version", version.GetVersion()),
	)

	spanProcessor := sdktrace.WithBatcher(exp)
	if o.sync {
		spanProcessor = sdktrace.WithSyncer(exp)
	}

	tp := sdktrace.NewTracerProvider(spanProcessor, sdktrace.WithResource(res))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)

	return func(ctx context.Context) error {
		otel.SetTracerProvider(prev)

		err := tp.Shutdown(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("shutdown tracer provider: %w", err)
		}

		return nil
	}, nil
}
