package ports

// Span represents a single traced operation.
type Span interface {
	// End completes the span.
	End()
	// RecordError attaches an error to the span.
	RecordError(err error)
	// SetAttr attaches a string attribute to the span.
	SetAttr(key, value string)
}

// Tracer starts spans around config discovery and manifest loads.
type Tracer interface {
	// Start begins a span with the given name.
	Start(name string) Span
}
