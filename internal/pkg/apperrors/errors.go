package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidEmail     = errors.New("invalid email format")

	// Authentication errors
	ErrUnauthorized       = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Upstream errors
	ErrUpstreamFailure = errors.New("upstream service failure")
)

// CustomError carries a sentinel error plus a request-facing message.
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails attaches context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewNotFoundError creates a not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewMissingFieldError creates the validation error for the first
// missing required field. Exactly one field is reported per request.
func NewMissingFieldError(field string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: fmt.Sprintf("Missing required field: %s", field),
	}
}

// NewInvalidEmailError creates the validation error for a malformed
// email value, distinct from missing-field errors.
func NewInvalidEmailError(field string) error {
	return &CustomError{
		Err:     ErrInvalidEmail,
		Message: fmt.Sprintf("Invalid email format: %s", field),
	}
}

// NewUpstreamError creates a generic upstream failure whose message is
// safe to show to clients. The cause is only ever logged server-side.
func NewUpstreamError(message string) error {
	return &CustomError{Err: ErrUpstreamFailure, Message: message}
}
