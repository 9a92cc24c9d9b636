package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/petlink/petlink-api/internal/domain"
)

// UserStore is a mutex-guarded in-memory user collection.
// Usernames and emails are indexed lowercased so uniqueness is
// case-insensitive.
type UserStore struct {
	mu         sync.RWMutex
	byUsername map[string]domain.User
	emails     map[string]struct{}
	msgs       domain.Messages
}

// NewUserStore creates a user store seeded with the given users.
func NewUserStore(msgs domain.Messages, seed []domain.User) *UserStore {
	s := &UserStore{
		byUsername: make(map[string]domain.User, len(seed)),
		emails:     make(map[string]struct{}, len(seed)),
		msgs:       msgs,
	}

	for _, u := range seed {
		s.byUsername[strings.ToLower(u.Username)] = u
		if u.Email != "" {
			s.emails[strings.ToLower(u.Email)] = struct{}{}
		}
	}

	return s
}

// GetByUsername looks up a user case-insensitively.
func (s *UserStore) GetByUsername(_ context.Context, username string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byUsername[strings.ToLower(username)]
	if !ok {
		return domain.User{}, domain.NewNotFoundError("user", 0)
	}

	return u, nil
}

// Create stores a user. Duplicate checks and the insert happen under one
// write lock.
func (s *UserStore) Create(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byUsername[strings.ToLower(user.Username)]; exists {
		return domain.NewConflictError("user", s.msgs.DuplicateUsername)
	}

	if user.Email != "" {
		if _, exists := s.emails[strings.ToLower(user.Email)]; exists {
			return domain.NewConflictError("user", s.msgs.DuplicateEmail)
		}
	}

	s.byUsername[strings.ToLower(user.Username)] = user
	if user.Email != "" {
		s.emails[strings.ToLower(user.Email)] = struct{}{}
	}

	return nil
}

// Name implements ports.HealthChecker.
func (s *UserStore) Name() string {
	return "user-store"
}

// Check implements ports.HealthChecker.
func (s *UserStore) Check(_ context.Context) error {
	return nil
}
