// Package context carries per-request values used for log correlation.
package context

import (
	stdctx "context"

	"github.com/google/uuid"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	assistantKey
)

// NewRequestID generates a new unique request ID
func NewRequestID() string {
	return uuid.New().String()
}

// WithRequestID adds a request ID to the context
func WithRequestID(parent stdctx.Context, requestID string) stdctx.Context {
	return stdctx.WithValue(parent, requestIDKey, requestID)
}

// RequestIDFromContext extracts the request ID from the context
func RequestIDFromContext(ctx stdctx.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// WithAssistant records which assistant mode is serving the request.
func WithAssistant(parent stdctx.Context, mode string) stdctx.Context {
	return stdctx.WithValue(parent, assistantKey, mode)
}

// AssistantFromContext returns the assistant mode, or "" when unset.
func AssistantFromContext(ctx stdctx.Context) string {
	if ctx == nil {
		return ""
	}
	if mode, ok := ctx.Value(assistantKey).(string); ok {
		return mode
	}
	return ""
}
