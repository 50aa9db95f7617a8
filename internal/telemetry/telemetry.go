// Package telemetry records a dashboard session as an OpenTelemetry trace.
// Disabled unless OTEL_EXPORTER_OTLP_ENDPOINT is set; every method is safe
// to call on a nil *Session so callers never need to branch.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Session is one root span covering the dashboard's lifetime, with span
// events for the interactions worth seeing on a trace timeline.
type Session struct {
	provider *sdktrace.TracerProvider
	span     oteltrace.Span
}

// Start creates a session if OTEL_EXPORTER_OTLP_ENDPOINT is configured.
// Returns nil if the endpoint is not set (telemetry disabled).
func Start(ctx context.Context) (*Session, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // For local dev; make configurable
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "procview"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	_, span := provider.Tracer("procview").Start(ctx, "dashboard.session")
	return &Session{
		provider: provider,
		span:     span,
	}, nil
}

// RecordColorToggle marks a gauge color change on the session span.
func (s *Session) RecordColorToggle(color string) {
	if s == nil {
		return
	}
	s.span.AddEvent("gauge.color_toggle",
		oteltrace.WithAttributes(attribute.String("procview.gauge.color", color)))
}

// RecordComplete marks the gauge first reaching full.
func (s *Session) RecordComplete() {
	if s == nil {
		return
	}
	s.span.AddEvent("gauge.complete")
}

// End closes the session span (recording err if the session died on one)
// and flushes the exporter. Must be called before process exit or the
// batcher may drop the trace.
func (s *Session) End(ctx context.Context, err error) error {
	if s == nil {
		return nil
	}
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	}
	s.span.End()
	return s.provider.Shutdown(ctx)
}
