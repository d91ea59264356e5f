package errors

import (
	"net/http"

	"magichat/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is reports whether target carries the same business error code, so copies made
// by WithDetails still match the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Steam user errors
	ErrSteamUserNotFound = NewBaseError(
		http.StatusNotFound,
		"STEAM_USER_NOT_FOUND",
		"Steam user not found",
		"",
	)

	// ErrSteamProfileNotFound means the platform knows no player with the requested id
	ErrSteamProfileNotFound = NewBaseError(
		http.StatusBadRequest,
		"STEAM_PROFILE_NOT_FOUND",
		"No Steam profile exists for this steam id",
		"",
	)

	// Steam game errors
	ErrSteamGameNotFound = NewBaseError(
		http.StatusNotFound,
		"STEAM_GAME_NOT_FOUND",
		"Steam game not found",
		"",
	)

	ErrSteamGameAlreadyExists = NewBaseError(
		http.StatusConflict,
		"STEAM_GAME_ALREADY_EXISTS",
		"A game with this app id already exists",
		"",
	)

	// Ownership errors
	ErrOwnedGameNotFound = NewBaseError(
		http.StatusNotFound,
		"OWNED_GAME_NOT_FOUND",
		"Owned game not found",
		"",
	)

	ErrOwnedGameAlreadyExists = NewBaseError(
		http.StatusConflict,
		"OWNED_GAME_ALREADY_EXISTS",
		"This user already owns this game",
		"",
	)

	ErrOwnedGameReference = NewBaseError(
		http.StatusBadRequest,
		"OWNED_GAME_INVALID_REFERENCE",
		"The referenced user or game does not exist",
		"",
	)

	// Upstream errors
	ErrSteamUpstream = NewBaseError(
		http.StatusBadGateway,
		"STEAM_UPSTREAM_ERROR",
		"Steam Web API request failed",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
