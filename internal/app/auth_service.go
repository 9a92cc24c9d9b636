package app

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/petlink/petlink-api/internal/domain"
	"github.com/petlink/petlink-api/internal/platform/logging"
	"github.com/petlink/petlink-api/internal/platform/token"
	"github.com/petlink/petlink-api/internal/ports"
)

// Session is the result of a successful login or refresh. It is ephemeral
// and never persisted.
type Session struct {
	Token     string
	ExpiresAt time.Time
	Username  string
}

// AuthService owns credential checks, registration and token lifecycle.
type AuthService struct {
	repo   ports.UserRepository
	tokens *token.Manager
	limits domain.Limits
	msgs   domain.Messages
	now    Clock
	logger *slog.Logger
}

// AuthServiceConfig contains the auth service dependencies.
type AuthServiceConfig struct {
	Repo   ports.UserRepository
	Tokens *token.Manager
	Limits domain.Limits
	Msgs   domain.Messages
	Now    Clock
	Logger *slog.Logger
}

// NewAuthService creates an auth service with the provided dependencies.
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	if cfg.Repo == nil {
		panic("app: AuthService requires a repository")
	}

	if cfg.Tokens == nil {
		panic("app: AuthService requires a token manager")
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthService{
		repo:   cfg.Repo,
		tokens: cfg.Tokens,
		limits: cfg.Limits,
		msgs:   cfg.Msgs,
		now:    now,
		logger: logger.With(slog.String("component", "app.AuthService")),
	}
}

// Authenticate checks credentials and issues a session token. The error
// message is identical for an unknown username and a wrong password so the
// endpoint cannot be used to enumerate accounts.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (Session, error) {
	if err := s.limits.ValidateLogin(username, password); err != nil {
		return Session{}, err
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return Session{}, domain.NewUnauthorizedError(s.msgs.InvalidCredentials)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return Session{}, domain.NewUnauthorizedError(s.msgs.InvalidCredentials)
	}

	return s.issueSession(ctx, user.Username)
}

// Register validates the request, hashes the password and stores the
// user. Duplicate usernames and emails surface as conflicts from the
// repository.
func (s *AuthService) Register(ctx context.Context, username, password, email string) (domain.User, error) {
	if err := s.limits.ValidateRegister(username, password, email); err != nil {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return domain.User{}, err
	}

	logging.FromContext(ctx).Info("user registered", slog.String("username", username))

	return user, nil
}

// RefreshToken verifies the old token and issues a fresh session for the
// same subject. There is no revocation list; the old token stays valid
// until its own expiry.
func (s *AuthService) RefreshToken(ctx context.Context, oldToken string) (Session, error) {
	subject, err := s.tokens.Verify(oldToken)
	if err != nil {
		return Session{}, domain.NewUnauthorizedError(s.msgs.InvalidToken)
	}

	return s.issueSession(ctx, subject)
}

// issueSession builds a session from a freshly signed token.
func (s *AuthService) issueSession(ctx context.Context, username string) (Session, error) {
	signed, expiresAt, err := s.tokens.Issue(username)
	if err != nil {
		return Session{}, err
	}

	logging.FromContext(ctx).Info("token issued",
		slog.String("username", username),
		slog.Time("expires_at", expiresAt),
	)

	return Session{
		Token:     signed,
		ExpiresAt: expiresAt,
		Username:  username,
	}, nil
}
