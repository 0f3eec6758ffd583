package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "coverage"}
		assert.Equal(t, "coverage not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "coverage"}
		err2 := &NotFoundError{Entity: "coverage"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "coverage"}
		err2 := &NotFoundError{Entity: "token"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("lookup failed: %w", ErrCoverageNotFound)
		assert.True(t, errors.Is(wrapped, ErrCoverageNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrCoverageNotFound))
		assert.False(t, IsNotFound(ErrTokenMissing))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "per_page", Message: "must not exceed 255"}
		assert.Equal(t, "validation error: per_page - must not exceed 255", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(ErrPerPageExceedsCap))
		assert.True(t, IsValidation(ErrConfirmationMissing))
		assert.False(t, IsValidation(ErrCoverageNotFound))
	})
}

func TestAuthenticationError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "API token is required", ErrTokenMissing.Error())
		assert.Equal(t, "invalid API token", ErrTokenInvalid.Error())
	})

	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrTokenMissing))
		assert.True(t, IsAuthentication(ErrTokenInvalid))
		assert.False(t, IsAuthentication(ErrPerPageExceedsCap))
	})
}

func TestConfigurationError(t *testing.T) {
	t.Run("IsConfiguration helper", func(t *testing.T) {
		assert.True(t, IsConfiguration(ErrAPITokenNotSet))
		assert.False(t, IsConfiguration(ErrTokenMissing))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("field", "message")
		assert.Equal(t, "validation error: field - message", err.Error())
		assert.True(t, IsValidation(err))
	})

	t.Run("NewAuthenticationError", func(t *testing.T) {
		err := NewAuthenticationError("no credentials")
		assert.Equal(t, "no credentials", err.Error())
		assert.True(t, IsAuthentication(err))
	})

	t.Run("helpers see through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("listing failed: %w", ErrPerPageExceedsCap)
		assert.True(t, IsValidation(wrapped))
	})
}
