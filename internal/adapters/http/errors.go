package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/petlink/petlink-api/internal/adapters/http/dto"
	"github.com/petlink/petlink-api/internal/domain"
	"github.com/petlink/petlink-api/internal/platform/logging"
)

// ctxKeyDevMode marks requests served by a development profile. When set,
// 500 responses include the underlying error detail.
const ctxKeyDevMode = "dev_mode"

// DevelopmentMode returns middleware that flags every request as served in
// development mode. Register it only for development profiles.
func DevelopmentMode() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxKeyDevMode, true)
		c.Next()
	}
}

// MapDomainError maps a domain error to an HTTP status code and response
// envelope. This is the single translation point from the error taxonomy to
// transport status codes:
//
//	validation    -> 400 (all accumulated messages in errors)
//	business rule -> 400
//	unauthorized  -> 401
//	not found     -> 404
//	conflict      -> 409
//	anything else -> 500, detail only when includeDetail is set
func MapDomainError(err error, includeDetail bool) (int, *dto.Envelope) {
	if err == nil {
		return http.StatusOK, nil
	}

	switch {
	case domain.IsValidation(err):
		return http.StatusBadRequest, dto.Fail("Validation failed", domain.ValidationMessages(err)...)

	case domain.IsBusinessRule(err):
		return http.StatusBadRequest, dto.Fail(err.Error())

	case domain.IsUnauthorized(err):
		return http.StatusUnauthorized, dto.Fail(err.Error())

	case domain.IsNotFound(err):
		return http.StatusNotFound, dto.Fail(err.Error())

	case domain.IsConflict(err):
		message := err.Error()

		var conflictErr *domain.ConflictError
		if errors.As(err, &conflictErr) {
			message = conflictErr.Reason
		}

		return http.StatusConflict, dto.Fail(message)

	default:
		// Unknown errors get a generic message to avoid leaking internals.
		env := dto.Fail("An internal error occurred")
		if includeDetail {
			env.Errors = []string{err.Error()}
		}

		return http.StatusInternalServerError, env
	}
}

// RespondWithError writes an error response to the gin.Context.
// It maps domain errors to HTTP responses and includes the trace ID if available.
func RespondWithError(c *gin.Context, err error) {
	status, env := MapDomainError(err, c.GetBool(ctxKeyDevMode))
	attachTraceID(c, env)

	// Log internal errors with full details; the client only sees the
	// generic message.
	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).Error("internal error",
			slog.String("error", err.Error()),
			slog.String("trace_id", env.TraceID),
		)
	}

	c.JSON(status, env)
}

// RespondWithBindingError writes a 400 response for request binding or
// shape validation failures.
func RespondWithBindingError(c *gin.Context, err error) {
	env := dto.Fail("Validation failed", dto.ValidationMessages(err)...)
	attachTraceID(c, env)

	c.JSON(http.StatusBadRequest, env)
}

// AbortWithError aborts the request chain and writes an error response.
// Use this in middleware to stop further processing.
func AbortWithError(c *gin.Context, err error) {
	status, env := MapDomainError(err, c.GetBool(ctxKeyDevMode))
	attachTraceID(c, env)

	c.AbortWithStatusJSON(status, env)
}

// attachTraceID copies the OpenTelemetry trace ID into the envelope when a
// recording span is present.
func attachTraceID(c *gin.Context, env *dto.Envelope) {
	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		env.TraceID = span.SpanContext().TraceID().String()
	}
}
