package telemetry

import "go.trai.ch/macroscope/internal/core/ports"

// Noop implements ports.Tracer without recording anything. Used by library
// hosts that do not configure telemetry, and by tests.
type Noop struct{}

// NewNoop creates a no-op tracer.
func NewNoop() *Noop {
	return &Noop{}
}

// Start returns a span that does nothing.
func (*Noop) Start(string) ports.Span {
	return noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End()                 {}
func (noopSpan) RecordError(error)    {}
func (noopSpan) SetAttr(_, _ string)  {}
