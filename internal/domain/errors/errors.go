package errors

import (
	"net/http"

	"sugarrush/internal/errors"
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is lets WithDetails copies match the predefined value they came from.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.httpCode == t.httpCode && e.errorCode == t.errorCode && e.message == t.message
}

// Predefined error types
var (
	// Session verification
	ErrAuthorizationMissing = NewBaseError(
		http.StatusUnauthorized,
		"AUTHORIZATION_MISSING",
		"Authorization header missing. Access denied.",
		"",
	)

	ErrTokenBlacklisted = NewBaseError(
		http.StatusForbidden,
		"TOKEN_BLACKLISTED",
		"Token is blacklisted. Access denied.",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusForbidden,
		"INVALID_TOKEN",
		"Invalid token. Access denied.",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Forbidden: Insufficient permissions",
		"",
	)

	// Logout
	ErrLogoutAuthorizationMissing = NewBaseError(
		http.StatusBadRequest,
		"AUTHORIZATION_MISSING",
		"Authorization header missing.",
		"",
	)

	ErrInvalidJWT = NewBaseError(
		http.StatusBadRequest,
		"INVALID_JWT",
		"Invalid JWT provided.",
		"",
	)

	ErrLogoutFailed = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error logging out.",
		"",
	)

	// Login
	ErrLoginFailed = NewBaseError(
		http.StatusInternalServerError,
		"LOGIN_FAILED",
		"Login failed",
		"",
	)

	ErrOAuthStateInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_STATE_INVALID",
		"Invalid or expired OAuth state",
		"",
	)

	ErrOAuthCodeInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_CODE_INVALID",
		"Authorization code missing",
		"",
	)

	ErrOAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_FAILED",
		"Google authentication failed",
		"",
	)

	// User management
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrNoMatchingUsers = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"No matching users found",
		"",
	)

	ErrViewUserForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Only the user or an admin can view this user",
		"",
	)

	ErrRoleUpdateForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Only admins can update user roles",
		"",
	)

	ErrUpdateUserForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Only the user or an admin can update this information",
		"",
	)

	ErrDeleteUserForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Only the user or an admin can delete this account",
		"",
	)

	ErrInvalidUserID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_USER_ID",
		"Invalid user id",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
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

// Unwrap exposes the driver error to errors.Is.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
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
	return "Internal server error"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
