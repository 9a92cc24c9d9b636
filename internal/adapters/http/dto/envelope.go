// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import "time"

// Envelope is the uniform response wrapper applied to every endpoint,
// success and failure alike.
type Envelope struct {
	// Success reports whether the request was handled without error.
	Success bool `json:"success"`

	// Message is a human-readable summary.
	Message string `json:"message"`

	// Data carries the response payload when present.
	Data any `json:"data,omitempty"`

	// Errors lists individual failure messages, used for accumulated
	// validation violations.
	Errors []string `json:"errors,omitempty"`

	// Timestamp is when the response was produced, RFC 3339 / UTC.
	Timestamp time.Time `json:"timestamp"`

	// TraceID links the response to a distributed trace when tracing
	// is enabled.
	TraceID string `json:"traceId,omitempty"`
}

// OK creates a success envelope.
func OK(message string, data any) *Envelope {
	return &Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}

// Fail creates a failure envelope with optional detail messages.
func Fail(message string, errs ...string) *Envelope {
	return &Envelope{
		Success:   false,
		Message:   message,
		Errors:    errs,
		Timestamp: time.Now().UTC(),
	}
}

// WithTraceID attaches a trace ID to the envelope.
func (e *Envelope) WithTraceID(traceID string) *Envelope {
	e.TraceID = traceID
	return e
}
