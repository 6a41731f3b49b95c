// Package errors defines the application errors surfaced to callers, each
// carrying an HTTP status and a stable business code.
package errors

import (
	"net/http"

	"profile/internal/errors"
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

// Is matches any BaseError with the same business code, so copies made by
// WithDetails still satisfy errors.Is against the predefined values.
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

// Profile lookup and dispatch errors
var (
	ErrInvalidProfileKind = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PROFILE_KIND",
		"Invalid profile type",
		"",
	)

	ErrInvalidProfileID = NewBaseError(
		http.StatusNotFound,
		"INVALID_PROFILE_ID",
		"Profile not found",
		"",
	)

	ErrInvalidPagination = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PAGINATION",
		"Page must be zero or greater and size must be positive",
		"",
	)
)

// Registration and update errors
var (
	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_ALREADY_REGISTERED",
		"Email is already registered",
		"",
	)

	ErrProfileIDMismatch = NewBaseError(
		http.StatusBadRequest,
		"PROFILE_ID_MISMATCH",
		"Profile ID mismatch",
		"",
	)

	ErrProfileNameImmutable = NewBaseError(
		http.StatusBadRequest,
		"PROFILE_NAME_IMMUTABLE",
		"Name shouldn't be changed",
		"",
	)

	ErrEmailImmutable = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_IMMUTABLE",
		"Email shouldn't be changed",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)
)

// Coordinate resolution errors
var (
	// ErrCoordinatesNotFound means the location service has no data for the pincode.
	ErrCoordinatesNotFound = NewBaseError(
		http.StatusBadRequest,
		"COORDINATES_NOT_FOUND",
		"Coordinates not found for pincode",
		"",
	)

	// ErrLocationService means the location service could not be reached or failed.
	ErrLocationService = NewBaseError(
		http.StatusServiceUnavailable,
		"LOCATION_SERVICE_ERROR",
		"Error contacting location service",
		"",
	)
)

// Storage boundary errors
var (
	ErrEncryptionFailed = NewBaseError(
		http.StatusInternalServerError,
		"ENCRYPTION_ERROR",
		"Encryption/decryption error",
		"",
	)

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

// Unwrap exposes the driver error.
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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
