package errors

import (
	"net/http"
	"testing"

	"shopscore/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrInvalidInput.WithDetails("latitude out of range")

	assert.True(t, errors.Is(detailed, ErrInvalidInput))
	assert.False(t, errors.Is(detailed, ErrOutOfRange))
	assert.Equal(t, "Invalid input: latitude out of range", detailed.Error())
	assert.Equal(t, http.StatusBadRequest, detailed.HTTPCode())
}

func TestBaseError_WrapMessage(t *testing.T) {
	wrapped := ErrCooldownActive.WrapMessage("customer a@b.c, shop shop_1")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "COOLDOWN_ACTIVE", appErr.ErrorCode())
	assert.True(t, errors.Is(wrapped, ErrCooldownActive))
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseExecuteError(cause, "append rating")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "append rating", err.Details())
	assert.True(t, errors.Is(err, cause))
}
