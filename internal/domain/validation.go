package domain

import (
	"fmt"
	"regexp"
)

// Validation bound defaults. Every bound has a compiled-in fallback so the
// service stays functional even if configuration fails to load.
const (
	DefaultNameMinLen        = 2
	DefaultNameMaxLen        = 50
	DefaultTypeMinLen        = 2
	DefaultTypeMaxLen        = 30
	DefaultDescriptionMaxLen = 500
	DefaultMinAge            = 0
	DefaultMaxAge            = 50
	DefaultUsernameMinLen    = 3
	DefaultUsernameMaxLen    = 30
	DefaultPasswordMinLen    = 6
	DefaultPasswordMaxLen    = 100
	DefaultPageSize          = 10
	DefaultMaxPageSize       = 100
)

var (
	// petTypePattern restricts pet types to letters and spaces.
	petTypePattern = regexp.MustCompile(`^[A-Za-z ]+$`)

	// usernamePattern restricts usernames to letters, digits and underscore.
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

	// emailPattern is a syntactic check only, not full RFC 5322.
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Limits holds the configurable validation bounds. Zero values are not
// meaningful; construct with DefaultLimits and override from configuration.
type Limits struct {
	NameMinLen        int
	NameMaxLen        int
	TypeMinLen        int
	TypeMaxLen        int
	DescriptionMaxLen int
	MinAge            int
	MaxAge            int
	UsernameMinLen    int
	UsernameMaxLen    int
	PasswordMinLen    int
	PasswordMaxLen    int
	PageSize          int
	MaxPageSize       int
}

// DefaultLimits returns the compiled-in validation bounds.
func DefaultLimits() Limits {
	return Limits{
		NameMinLen:        DefaultNameMinLen,
		NameMaxLen:        DefaultNameMaxLen,
		TypeMinLen:        DefaultTypeMinLen,
		TypeMaxLen:        DefaultTypeMaxLen,
		DescriptionMaxLen: DefaultDescriptionMaxLen,
		MinAge:            DefaultMinAge,
		MaxAge:            DefaultMaxAge,
		UsernameMinLen:    DefaultUsernameMinLen,
		UsernameMaxLen:    DefaultUsernameMaxLen,
		PasswordMinLen:    DefaultPasswordMinLen,
		PasswordMaxLen:    DefaultPasswordMaxLen,
		PageSize:          DefaultPageSize,
		MaxPageSize:       DefaultMaxPageSize,
	}
}

// ValidateID checks that an identifier is positive.
func (l Limits) ValidateID(id int64, label string) error {
	if id <= 0 {
		return NewValidationError(fmt.Sprintf("%s must be a positive integer", label))
	}

	return nil
}

// ValidatePagination checks page and pageSize against the configured bounds.
func (l Limits) ValidatePagination(page, pageSize int) error {
	var msgs []string

	if page < 1 {
		msgs = append(msgs, "page must be at least 1")
	}

	if pageSize < 1 || pageSize > l.MaxPageSize {
		msgs = append(msgs, fmt.Sprintf("pageSize must be between 1 and %d", l.MaxPageSize))
	}

	if len(msgs) > 0 {
		return NewValidationError(msgs...)
	}

	return nil
}

// ValidatePetAttrs checks the caller-settable pet fields. All failing
// checks are reported together.
func (l Limits) ValidatePetAttrs(attrs PetAttrs) error {
	var msgs []string

	if n := len(attrs.Name); n < l.NameMinLen || n > l.NameMaxLen {
		msgs = append(msgs, fmt.Sprintf("name must be between %d and %d characters", l.NameMinLen, l.NameMaxLen))
	}

	switch n := len(attrs.Type); {
	case n < l.TypeMinLen || n > l.TypeMaxLen:
		msgs = append(msgs, fmt.Sprintf("type must be between %d and %d characters", l.TypeMinLen, l.TypeMaxLen))
	case !petTypePattern.MatchString(attrs.Type):
		msgs = append(msgs, "type must contain only letters and spaces")
	}

	if len(attrs.Description) > l.DescriptionMaxLen {
		msgs = append(msgs, fmt.Sprintf("description must be at most %d characters", l.DescriptionMaxLen))
	}

	if attrs.Age != nil && (*attrs.Age < l.MinAge || *attrs.Age > l.MaxAge) {
		msgs = append(msgs, fmt.Sprintf("age must be between %d and %d", l.MinAge, l.MaxAge))
	}

	if len(msgs) > 0 {
		return NewValidationError(msgs...)
	}

	return nil
}

// ValidateLogin checks the credential fields for a login attempt.
// Only presence is checked; format rules apply at registration.
func (l Limits) ValidateLogin(username, password string) error {
	var msgs []string

	if username == "" {
		msgs = append(msgs, "username is required")
	}

	if password == "" {
		msgs = append(msgs, "password is required")
	}

	if len(msgs) > 0 {
		return NewValidationError(msgs...)
	}

	return nil
}

// ValidateRegister checks the fields for a registration request.
func (l Limits) ValidateRegister(username, password, email string) error {
	var msgs []string

	switch n := len(username); {
	case n < l.UsernameMinLen || n > l.UsernameMaxLen:
		msgs = append(msgs, fmt.Sprintf("username must be between %d and %d characters", l.UsernameMinLen, l.UsernameMaxLen))
	case !usernamePattern.MatchString(username):
		msgs = append(msgs, "username must contain only letters, digits and underscores")
	}

	if n := len(password); n < l.PasswordMinLen || n > l.PasswordMaxLen {
		msgs = append(msgs, fmt.Sprintf("password must be between %d and %d characters", l.PasswordMinLen, l.PasswordMaxLen))
	}

	if email != "" && !emailPattern.MatchString(email) {
		msgs = append(msgs, "email must be a valid email address")
	}

	if len(msgs) > 0 {
		return NewValidationError(msgs...)
	}

	return nil
}
