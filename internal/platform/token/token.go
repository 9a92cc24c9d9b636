// Package token issues and verifies the bearer tokens used by the API.
// Tokens are HMAC-SHA256 signed JWTs carrying the username as both the
// subject and name claims.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the token lifetime when not configured.
const DefaultTTL = time.Hour

// ErrInvalidToken is returned for any token that fails verification:
// bad signature, malformed, or expired. Callers get a single error so the
// response cannot be used to probe why verification failed.
var ErrInvalidToken = errors.New("invalid token")

// Config holds the signing settings.
type Config struct {
	// Secret is the HMAC signing key. The default in configuration is a
	// development placeholder; production deployments must supply their
	// own via config or environment.
	Secret string

	// TTL is how long issued tokens remain valid.
	TTL time.Duration
}

// Manager issues and verifies tokens. Issue and Verify are pure
// computations and safe for concurrent use.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// claims is the JWT payload for issued tokens.
type claims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// NewManager creates a token manager from config, applying DefaultTTL if
// none is set.
func NewManager(cfg Config) *Manager {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Manager{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
	}
}

// Issue creates a signed token for the username and returns it with its
// expiry time.
func (m *Manager) Issue(username string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(m.ttl)

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Name: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify checks the signature and expiry of a token and returns its
// subject. Any failure maps to ErrInvalidToken.
func (m *Manager) Verify(tokenStr string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || c.Subject == "" {
		return "", ErrInvalidToken
	}

	return c.Subject, nil
}
