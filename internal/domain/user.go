package domain

import "time"

// User is a registered account in the registry.
type User struct {
	// Username is unique case-insensitively.
	Username string

	// PasswordHash is the bcrypt hash of the user's password.
	// The plaintext password is never stored.
	PasswordHash string

	// Email is optional and, when present, unique case-insensitively.
	Email string

	// CreatedAt is when the account was registered.
	CreatedAt time.Time
}
