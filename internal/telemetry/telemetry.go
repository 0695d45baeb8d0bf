// Package telemetry records navigations as OpenTelemetry spans.
package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const tracerName = "techsphere/ui"

// Span attribute keys.
const (
	AttrFrom = attribute.Key("techsphere.page.from")
	AttrTo   = attribute.Key("techsphere.page.to")
	AttrView = attribute.Key("techsphere.view.kind")
)

// Recorder exports navigation spans. A nil *Recorder is valid and records
// nothing.
type Recorder struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewOTLPRecorder creates a recorder exporting to endpoint over OTLP/HTTP.
// endpoint is a base URL such as "http://localhost:4318", as in
// OTEL_EXPORTER_OTLP_ENDPOINT; its scheme decides whether TLS is used and
// spans are posted to /v1/traces under it. Returns nil when endpoint is
// empty (disabled).
//
// Export errors are logged through slog instead of the otel default, which
// writes to stderr underneath the terminal UI.
func NewOTLPRecorder(ctx context.Context, endpoint, serviceName string) (*Recorder, error) {
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(tracesURL(endpoint)),
	)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}
	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		slog.Warn("telemetry export failed", "error", err)
	}))

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return NewRecorder(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)), nil
}

// tracesURL appends the OTLP traces path to a base endpoint URL. A URL that
// already names a path is used as is.
func tracesURL(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || (u.Path != "" && u.Path != "/") {
		return endpoint
	}
	u.Path = "/v1/traces"
	return u.String()
}

// NewRecorder wraps an existing tracer provider.
func NewRecorder(provider *sdktrace.TracerProvider) *Recorder {
	return &Recorder{
		provider: provider,
		tracer:   provider.Tracer(tracerName),
	}
}

// RecordNavigation records a single "navigate" span.
func (r *Recorder) RecordNavigation(ctx context.Context, from, to, view string) {
	if r == nil {
		return
	}
	_, span := r.tracer.Start(ctx, "navigate",
		oteltrace.WithSpanKind(oteltrace.SpanKindInternal),
		oteltrace.WithAttributes(
			AttrFrom.String(from),
			AttrTo.String(to),
			AttrView.String(view),
		),
	)
	span.End()
}

// Shutdown flushes pending spans and stops the provider.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}
	return r.provider.Shutdown(ctx)
}
