// Package errors provides domain-specific error types for quick-nav.
//
// Every failure of a request against the navigation API falls into one of
// three kinds: the request never completed (transport), the server answered
// with a non-2xx status, or the payload could not be decoded. Callers treat
// all three the same way (skip the refresh, log, move on) but the codes make
// it possible to tell them apart in logs and tests.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeConfig indicates a configuration-related error.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeTransport indicates that the HTTP request did not complete.
	ErrCodeTransport ErrorCode = "TRANSPORT_ERROR"

	// ErrCodeStatus indicates a response with a status outside of 2xx.
	ErrCodeStatus ErrorCode = "STATUS_ERROR"

	// ErrCodeDecode indicates a malformed JSON payload.
	ErrCodeDecode ErrorCode = "DECODE_ERROR"

	// ErrCodeValidation indicates a request or response body that failed schema validation.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// ErrCodeNotFound indicates that a category or site is not known locally.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// StatusError is the cause attached to ErrCodeStatus errors.
type StatusError struct {
	StatusCode int
	// Body is the server's error message, if it sent one.
	Body string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("status %d", e.StatusCode)
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

// NewTransportError creates a new error for a request that did not complete.
func NewTransportError(message string, cause error) *Error {
	return Wrap(ErrCodeTransport, message, cause)
}

// NewStatusError creates a new error for a non-2xx response.
func NewStatusError(message string, statusCode int, body string) *Error {
	return Wrap(ErrCodeStatus, message, &StatusError{StatusCode: statusCode, Body: body})
}

// NewDecodeError creates a new error for a malformed payload.
func NewDecodeError(message string, cause error) *Error {
	return Wrap(ErrCodeDecode, message, cause)
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, cause error) *Error {
	return Wrap(ErrCodeValidation, message, cause)
}

// NewNotFoundError creates a new error for an unknown category or site.
func NewNotFoundError(message string) *Error {
	return New(ErrCodeNotFound, message)
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, cause error) *Error {
	return Wrap(ErrCodeInternal, message, cause)
}

// HasCode reports whether err or any error it wraps is an *Error with the given code.
func HasCode(err error, code ErrorCode) bool {
	return stderrors.Is(err, &Error{Code: code})
}

// StatusCode returns the HTTP status carried by err, or 0 if there is none.
func StatusCode(err error) int {
	var se *StatusError
	if stderrors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
