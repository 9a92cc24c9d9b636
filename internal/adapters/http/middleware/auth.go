package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/petlink/petlink-api/internal/adapters/http/dto"
	"github.com/petlink/petlink-api/internal/platform/logging"
)

const (
	// ContextKeyUsername is the gin context key for the authenticated
	// subject.
	ContextKeyUsername = "username"

	bearerPrefix = "Bearer "
)

// TokenVerifier checks a bearer token and returns its subject.
// The platform token.Manager satisfies this.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// RequireAuth returns middleware that requires a valid bearer token in the
// Authorization header. On success the subject is stored in the context
// and added to the context logger; otherwise the request is aborted with
// 401 and the uniform envelope.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			abortUnauthorized(c, "Authentication required")
			return
		}

		subject, err := verifier.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(ContextKeyUsername, subject)

		ctx := logging.WithUsername(c.Request.Context(), subject)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetUsername extracts the authenticated username from the gin.Context.
// Returns empty string if the request was not authenticated.
func GetUsername(c *gin.Context) string {
	return getIDFromContext(c, ContextKeyUsername)
}

// abortUnauthorized stops the chain with a 401 envelope.
func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail(message))
}
