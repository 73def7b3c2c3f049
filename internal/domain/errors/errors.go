package errors

import "net/http"

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	cause     error
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}

	return e.message
}

// Unwrap exposes the underlying cause, if any
func (e *BaseError) Unwrap() error {
	return e.cause
}

// Is matches errors sharing the same business code, so wrapped copies
// still compare equal to the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WithCause returns a copy of the error carrying the underlying cause.
// The cause is for logs only and is never sent to clients.
func (e *BaseError) WithCause(cause error) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		cause:     cause,
	}
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

// Predefined error types
var (
	// Brand-related errors
	ErrBrandNotFound = NewBaseError(
		http.StatusNotFound,
		"BRAND_NOT_FOUND",
		"Brand not found",
	)

	ErrBrandsFetchFailed = NewBaseError(
		http.StatusInternalServerError,
		"BRANDS_FETCH_FAILED",
		"Failed to fetch brands",
	)

	ErrBrandFetchFailed = NewBaseError(
		http.StatusInternalServerError,
		"BRAND_FETCH_FAILED",
		"Failed to fetch brand",
	)

	// Agent-related errors
	ErrAgentsFetchFailed = NewBaseError(
		http.StatusInternalServerError,
		"AGENTS_FETCH_FAILED",
		"Failed to fetch agents",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
	)

	// ErrNotFound answers requests that match no route
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
	)
)
