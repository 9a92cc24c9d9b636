package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petlink/petlink-api/internal/adapters/store/memory"
	"github.com/petlink/petlink-api/internal/domain"
	"github.com/petlink/petlink-api/internal/platform/token"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	seed, err := memory.SeedUsers()
	require.NoError(t, err)

	return NewAuthService(AuthServiceConfig{
		Repo:   memory.NewUserStore(domain.DefaultMessages(), seed),
		Tokens: token.NewManager(token.Config{Secret: "test-secret-at-least-16-chars", TTL: time.Hour}),
		Limits: domain.DefaultLimits(),
		Msgs:   domain.DefaultMessages(),
	})
}

func TestNewAuthService_RequiresDependencies(t *testing.T) {
	assert.Panics(t, func() {
		NewAuthService(AuthServiceConfig{})
	})

	seed, err := memory.SeedUsers()
	require.NoError(t, err)

	assert.Panics(t, func() {
		NewAuthService(AuthServiceConfig{
			Repo: memory.NewUserStore(domain.DefaultMessages(), seed),
		})
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	s := newAuthService(t)

	session, err := s.Authenticate(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "admin", session.Username)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, 5*time.Second)
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	s := newAuthService(t)

	_, err := s.Authenticate(context.Background(), "admin", "wrong-password")
	require.Error(t, err)
	assert.True(t, domain.IsUnauthorized(err))
	assert.Equal(t, "Invalid username or password", err.Error())
}

func TestAuthService_Authenticate_UnknownUser(t *testing.T) {
	s := newAuthService(t)

	_, err := s.Authenticate(context.Background(), "nobody", "admin123")
	require.Error(t, err)
	assert.True(t, domain.IsUnauthorized(err))

	// Same message as a wrong password, so accounts cannot be enumerated.
	_, pwErr := s.Authenticate(context.Background(), "admin", "wrong-password")
	assert.Equal(t, pwErr.Error(), err.Error())
}

func TestAuthService_Authenticate_MissingFields(t *testing.T) {
	s := newAuthService(t)

	_, err := s.Authenticate(context.Background(), "", "")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Len(t, domain.ValidationMessages(err), 2)
}

func TestAuthService_Register(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	user, err := s.Register(ctx, "alice_1", "password9", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice_1", user.Username)
	assert.NotEqual(t, "password9", user.PasswordHash)

	// The new account can log in right away.
	session, err := s.Authenticate(ctx, "alice_1", "password9")
	require.NoError(t, err)
	assert.Equal(t, "alice_1", session.Username)
}

func TestAuthService_Register_WithoutEmail(t *testing.T) {
	s := newAuthService(t)

	_, err := s.Register(context.Background(), "bob_2", "password9", "")
	assert.NoError(t, err)
}

func TestAuthService_Register_Invalid(t *testing.T) {
	s := newAuthService(t)

	_, err := s.Register(context.Background(), "ab", "123", "bad-email")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Len(t, domain.ValidationMessages(err), 3)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	s := newAuthService(t)

	_, err := s.Register(context.Background(), "admin", "password9", "")
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	s := newAuthService(t)

	_, err := s.Register(context.Background(), "fresh_name", "password9", "admin@petlink.local")
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
}

func TestAuthService_RefreshToken(t *testing.T) {
	s := newAuthService(t)
	ctx := context.Background()

	session, err := s.Authenticate(ctx, "admin", "admin123")
	require.NoError(t, err)

	refreshed, err := s.RefreshToken(ctx, session.Token)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.Token)
	assert.Equal(t, "admin", refreshed.Username)
}

func TestAuthService_RefreshToken_Invalid(t *testing.T) {
	s := newAuthService(t)

	_, err := s.RefreshToken(context.Background(), "not-a-token")
	require.Error(t, err)
	assert.True(t, domain.IsUnauthorized(err))
	assert.Equal(t, "Invalid or expired token", err.Error())
}

func TestAuthService_RefreshToken_WrongSecret(t *testing.T) {
	s := newAuthService(t)

	other := token.NewManager(token.Config{Secret: "another-secret-entirely-here", TTL: time.Hour})
	tok, _, err := other.Issue("admin")
	require.NoError(t, err)

	_, err = s.RefreshToken(context.Background(), tok)
	require.Error(t, err)
	assert.True(t, domain.IsUnauthorized(err))
}
