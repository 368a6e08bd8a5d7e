package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUpstream indicates that the external rate provider failed or returned an error status.
var ErrUpstream = errors.New("upstream provider error")

// AppError carries an HTTP-ish status code and a human readable message
// alongside the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the cause so errors.Is matches the sentinels above.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError wrapping ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationError creates an AppError wrapping ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewUpstreamError creates an AppError wrapping ErrUpstream together with the underlying cause.
func NewUpstreamError(message string, cause error) *AppError {
	if cause == nil {
		return &AppError{Code: http.StatusBadGateway, Message: message, Err: ErrUpstream}
	}
	return &AppError{Code: http.StatusBadGateway, Message: message, Err: fmt.Errorf("%w: %w", ErrUpstream, cause)}
}

// Message returns the user facing message of err if it is an AppError,
// otherwise err.Error().
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
