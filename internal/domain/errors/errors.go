package errors

import (
	"net/http"

	"lastseen/internal/errors"
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

// Is matches any BaseError carrying the same business error code, so copies
// made by WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
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
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_UPDATE_FAILED",
		"Failed to update user",
		"",
	)

	// Authentication-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Authentication required",
		"",
	)

	// Location-related errors
	ErrLocationWriteFailed = NewBaseError(
		http.StatusBadGateway,
		"LOCATION_WRITE_FAILED",
		"Failed to transmit location",
		"",
	)

	ErrLocationDeleteFailed = NewBaseError(
		http.StatusBadGateway,
		"LOCATION_DELETE_FAILED",
		"Failed to remove location data",
		"",
	)

	ErrNotSharing = NewBaseError(
		http.StatusConflict,
		"NOT_SHARING",
		"You are not sharing a location",
		"",
	)

	ErrVisibilityNotAllowed = NewBaseError(
		http.StatusBadRequest,
		"VISIBILITY_NOT_ALLOWED",
		"This visibility mode is not available",
		"",
	)

	ErrInvalidExpiry = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EXPIRY",
		"Expiry is out of range",
		"",
	)

	// Geolocation sensor errors
	ErrPermissionDenied = NewBaseError(
		http.StatusUnprocessableEntity,
		"GEOLOCATION_DENIED",
		"Location access denied, please enable location services",
		"",
	)

	ErrPositionUnavailable = NewBaseError(
		http.StatusUnprocessableEntity,
		"GEOLOCATION_UNAVAILABLE",
		"Location is not available on this device",
		"",
	)

	// Session errors
	ErrSessionClosed = NewBaseError(
		http.StatusConflict,
		"SESSION_CLOSED",
		"The circle session was closed",
		"",
	)

	// Map errors
	ErrMarkerNotFound = NewBaseError(
		http.StatusNotFound,
		"MARKER_NOT_FOUND",
		"This member is not on the map",
		"",
	)

	// Public share errors. Unknown, revoked and malformed tokens share one error
	// so responses cannot be used to enumerate tokens.
	ErrShareUnavailable = NewBaseError(
		http.StatusNotFound,
		"SHARE_UNAVAILABLE",
		"This location share is no longer active or private",
		"",
	)

	// Connection errors
	ErrSelfConnection = NewBaseError(
		http.StatusBadRequest,
		"SELF_CONNECTION",
		"You cannot connect with yourself",
		"",
	)

	ErrAlreadyConnected = NewBaseError(
		http.StatusConflict,
		"ALREADY_CONNECTED",
		"This user is already in your connections",
		"",
	)

	ErrInviteRequired = NewBaseError(
		http.StatusNotFound,
		"INVITE_REQUIRED",
		"This e-mail is not registered yet",
		"",
	)

	ErrConnectionNotFound = NewBaseError(
		http.StatusNotFound,
		"CONNECTION_NOT_FOUND",
		"Connection not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Rate limiting
	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_REQUESTS",
		"Too many requests",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
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
