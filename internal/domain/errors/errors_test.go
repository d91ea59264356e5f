package errors

import (
	"net/http"
	"testing"

	"magichat/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestPredefinedErrors(t *testing.T) {
	tests := []struct {
		err      *BaseError
		httpCode int
		code     string
	}{
		{ErrSteamUserNotFound, http.StatusNotFound, "STEAM_USER_NOT_FOUND"},
		{ErrSteamProfileNotFound, http.StatusBadRequest, "STEAM_PROFILE_NOT_FOUND"},
		{ErrSteamGameNotFound, http.StatusNotFound, "STEAM_GAME_NOT_FOUND"},
		{ErrSteamGameAlreadyExists, http.StatusConflict, "STEAM_GAME_ALREADY_EXISTS"},
		{ErrOwnedGameNotFound, http.StatusNotFound, "OWNED_GAME_NOT_FOUND"},
		{ErrOwnedGameAlreadyExists, http.StatusConflict, "OWNED_GAME_ALREADY_EXISTS"},
		{ErrOwnedGameReference, http.StatusBadRequest, "OWNED_GAME_INVALID_REFERENCE"},
		{ErrSteamUpstream, http.StatusBadGateway, "STEAM_UPSTREAM_ERROR"},
		{ErrValidationFailed, http.StatusBadRequest, "VALIDATION_FAILED"},
	}

	seen := make(map[string]bool, len(tests))
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.httpCode, tt.err.HTTPCode())
			assert.Equal(t, tt.code, tt.err.ErrorCode())
			assert.False(t, seen[tt.code], "duplicate error code")
			seen[tt.code] = true

			wrapped := errors.Wrap(tt.err.WithDetails("extra"), "context")
			assert.True(t, errors.Is(wrapped, tt.err))

			var appErr AppError
			assert.True(t, errors.As(wrapped, &appErr))
			assert.Equal(t, "extra", appErr.Details())
		})
	}
}

func TestDatabaseExecuteError(t *testing.T) {
	err := NewDatabaseExecuteError(errors.New("connection reset"), "insert steam_games")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "insert steam_games", err.Details())
	assert.Contains(t, err.Error(), "connection reset")
}
