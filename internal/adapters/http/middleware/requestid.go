package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/petlink/petlink-api/internal/platform/logging"
)

const (
	// HeaderRequestID is the header carrying the per-request identifier.
	HeaderRequestID = "X-Request-ID"

	// ContextKeyRequestID is the gin context key for the request ID.
	ContextKeyRequestID = "request_id"
)

// RequestID returns middleware that assigns every request an identifier.
// A client-supplied X-Request-ID is honoured; otherwise a UUID is generated.
// The ID is echoed on the response and attached to the request context so
// log lines for the same request can be tied together.
func RequestID() gin.HandlerFunc {
	return createIDMiddleware(idMiddlewareConfig{
		headerName:      HeaderRequestID,
		contextKey:      ContextKeyRequestID,
		contextEnricher: logging.WithRequestID,
	})
}

// GetRequestID returns the request ID from the gin context, or "".
func GetRequestID(c *gin.Context) string {
	return getIDFromContext(c, ContextKeyRequestID)
}

// MustGetRequestID is GetRequestID with an "unknown" fallback for use in
// log fields that must never be empty.
func MustGetRequestID(c *gin.Context) string {
	if id := GetRequestID(c); id != "" {
		return id
	}

	return "unknown"
}
