// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-ring.

package api

import "fmt"

// Common errors used across the library.
//
// ErrFull and ErrEmpty are recoverable flow-control signals: the caller
// decides whether to back off, drop, or retry. Nothing in the library
// retries or logs on their behalf.
var (
	ErrFull            = fmt.Errorf("ring buffer is full")
	ErrEmpty           = fmt.Errorf("ring buffer is empty")
	ErrReleased        = fmt.Errorf("ring buffer has been released")
	ErrInvalidCapacity = fmt.Errorf("ring capacity must be at least 2")
	ErrPoolClosed      = fmt.Errorf("ring pool is closed")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeResourceExhausted
	ErrCodeReleased
	ErrCodeClosed
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap exposes the sentinel cause for errors.Is matching.
func (e *Error) Unwrap() error { return e.Cause }

// NewError creates a new structured error wrapping a sentinel cause.
func NewError(code ErrorCode, cause error, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
		Cause:   cause,
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
