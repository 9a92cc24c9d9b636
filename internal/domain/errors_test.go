package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("pet", 42)

	assert.Equal(t, "pet with id 42 not found", err.Error())
	assert.True(t, IsNotFound(err))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, IsConflict(err))
}

func TestNotFoundError_NoID(t *testing.T) {
	err := NewNotFoundError("user", 0)

	assert.Equal(t, "user not found", err.Error())
	assert.True(t, IsNotFound(err))
}

func TestConflictError(t *testing.T) {
	err := NewConflictError("pet", "a pet with this name already exists")

	assert.Contains(t, err.Error(), "pet conflict")
	assert.True(t, IsConflict(err))
	assert.False(t, IsNotFound(err))

	var ce *ConflictError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "pet", ce.Entity)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("name is too short", "age must be between 0 and 50")

	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "name is too short")
	assert.Contains(t, err.Error(), "age must be between 0 and 50")
}

func TestValidationError_NoMessages(t *testing.T) {
	err := NewValidationError()

	assert.True(t, IsValidation(err))
	assert.Equal(t, "validation failed", err.Error())
}

func TestUnauthorizedError(t *testing.T) {
	err := NewUnauthorizedError("Invalid username or password")

	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, "Invalid username or password", err.Error())
}

func TestUnauthorizedError_EmptyMessage(t *testing.T) {
	err := &UnauthorizedError{}

	assert.Equal(t, "unauthorized", err.Error())
}

func TestBusinessRuleError(t *testing.T) {
	err := NewBusinessRuleError("Pet is already adopted")

	assert.True(t, IsBusinessRule(err))
	assert.Equal(t, "Pet is already adopted", err.Error())
	assert.False(t, IsValidation(err))
}

func TestErrorChecks_WrappedErrors(t *testing.T) {
	// Checks must see through fmt.Errorf wrapping.
	wrapped := fmt.Errorf("lookup failed: %w", NewNotFoundError("pet", 7))

	assert.True(t, IsNotFound(wrapped))

	var nfe *NotFoundError
	require.True(t, errors.As(wrapped, &nfe))
	assert.Equal(t, int64(7), nfe.ID)
}

func TestErrorChecks_NilAndPlainErrors(t *testing.T) {
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsValidation(errors.New("boom")))
	assert.False(t, IsUnauthorized(errors.New("boom")))
}

func TestValidationMessages(t *testing.T) {
	t.Run("accumulated messages", func(t *testing.T) {
		err := NewValidationError("first", "second")
		assert.Equal(t, []string{"first", "second"}, ValidationMessages(err))
	})

	t.Run("plain error falls back to its string", func(t *testing.T) {
		err := errors.New("something else")
		assert.Equal(t, []string{"something else"}, ValidationMessages(err))
	})

	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, ValidationMessages(nil))
	})

	t.Run("wrapped validation error", func(t *testing.T) {
		err := fmt.Errorf("checking input: %w", NewValidationError("bad name"))
		assert.Equal(t, []string{"bad name"}, ValidationMessages(err))
	})
}
