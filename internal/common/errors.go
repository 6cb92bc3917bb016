package common

import (
	"errors"
	"fmt"
)

// Common error types
var (
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput indicates invalid input parameters
	ErrInvalidInput = errors.New("invalid input parameter")

	// ErrTimeout indicates an operation timed out
	ErrTimeout = errors.New("operation timed out")
)

// IsNotFound checks if err is or wraps ErrNotFound
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidInput checks if err is or wraps ErrInvalidInput
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsTimeout checks if err is or wraps ErrTimeout
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// NotFoundError returns a wrapped not found error with context
func NotFoundError(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

// InvalidInputError returns a wrapped invalid input error with context
func InvalidInputError(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidInput)
}

// TimeoutError returns a wrapped timeout error with context
func TimeoutError(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrTimeout)
}

// ConfigError represents missing or invalid startup configuration.
// It is fatal: the process must not start with an incomplete credential set.
type ConfigError struct {
	Field  string
	Reason string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration for %s: %s", e.Field, e.Reason)
}

// NewConfigError creates a new configuration error
func NewConfigError(field, reason string) error {
	return ConfigError{Field: field, Reason: reason}
}

// AuthError represents a failed token issuance. It is surfaced to the
// caller; the pipeline never retries issuance beyond its single
// 401-triggered re-issuance.
type AuthError struct {
	Message string
	Err     error
}

func (e AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("token generation failed: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("token generation failed: %s", e.Message)
}

func (e AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new authentication error
func NewAuthError(message string, err error) error {
	return AuthError{Message: message, Err: err}
}

// RequestError represents a non-auth HTTP failure or a malformed response
// body. It carries the remote status and body text and is never retried.
type RequestError struct {
	StatusCode int
	Body       string
}

func (e RequestError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Body)
}

// NewRequestError creates a new request error
func NewRequestError(statusCode int, body string) error {
	return RequestError{StatusCode: statusCode, Body: body}
}

// IsConfigError Error type checking helpers
func IsConfigError(err error) bool {
	var configErr ConfigError
	ok := errors.As(err, &configErr)
	return ok
}

func IsAuthError(err error) bool {
	var authErr AuthError
	ok := errors.As(err, &authErr)
	return ok
}

func IsRequestError(err error) bool {
	var requestErr RequestError
	ok := errors.As(err, &requestErr)
	return ok
}
