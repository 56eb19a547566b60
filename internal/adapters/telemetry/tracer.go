// Package telemetry implements the tracing adapter using OpenTelemetry.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/macroscope/internal/core/ports"
)

// InstrumentationName identifies macroscope spans in exported traces.
const InstrumentationName = "go.trai.ch/macroscope"

// OTelTracer implements ports.Tracer on the global OpenTelemetry tracer
// provider.
type OTelTracer struct {
	tracer trace.Tracer
}

// NewOTelTracer creates a tracer with the given instrumentation name.
func NewOTelTracer(name string) *OTelTracer {
	return &OTelTracer{tracer: otel.Tracer(name)}
}

// Start begins a span. The traced operations are synchronous and carry no
// caller context, so spans root at the background context.
func (t *OTelTracer) Start(name string) ports.Span {
	_, span := t.tracer.Start(context.Background(), name)
	return &otelSpan{span: span}
}

type otelSpan struct {
	span trace.Span
}

func (s *otelSpan) End() {
	s.span.End()
}

func (s *otelSpan) RecordError(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

func (s *otelSpan) SetAttr(key, value string) {
	s.span.SetAttributes(attribute.String(key, value))
}
