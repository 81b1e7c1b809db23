// Package errors provides structured error types for dotpath.
//
// Every error that crosses a package boundary and that a caller may want to
// act on carries a machine-readable [Code]. Adapters (the CLI and the HTTP
// server) use the code to pick an exit status or an HTTP status, and
// [UserMessage] to show the message without the code prefix.
//
// # Error Codes
//
//   - INVALID_CONFIG: the requested graph cannot be built (node count,
//     canvas area, or an edge target beyond N(N-1)/2)
//   - INVALID_NODE_ID: a query names a node id outside [1, N]
//   - INVALID_EDGE: an explicit edge is a self loop, a duplicate, or names
//     an unknown node
//   - INVALID_SCENE: a scene file or payload is malformed
//   - INVALID_FORMAT: an unknown render format was requested
//
// A path that does not exist is not an error; path finding returns a nil
// path for that case.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidNodeID, "node %d out of range [1, %d]", id, n)
//	if errors.Is(err, errors.ErrCodeInvalidNodeID) {
//	    // reject the query
//	}
//
//	err := errors.Wrap(errors.ErrCodeInvalidScene, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidNodeID Code = "INVALID_NODE_ID"
	ErrCodeInvalidEdge   Code = "INVALID_EDGE"
	ErrCodeInvalidScene  Code = "INVALID_SCENE"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
	ErrCodeTimeout     Code = "TIMEOUT"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsInvalid reports whether err carries one of the INVALID_* codes.
// Adapters use it to separate caller mistakes from internal failures.
func IsInvalid(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidConfig, ErrCodeInvalidNodeID,
		ErrCodeInvalidEdge, ErrCodeInvalidScene, ErrCodeInvalidFormat:
		return true
	}
	return false
}
