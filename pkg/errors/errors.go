// Package errors provides structured error types for cycl.
//
// Errors carry a machine-readable [Code] next to a human message so the CLI
// can decide how to report a failure (and which exit code to use) without
// matching on strings.
//
// # Error Codes
//
//   - INVALID_*: user input or configuration problems, raised before any
//     graph work begins
//   - CYCLIC_GRAPH: an acyclic-only operation was given a cyclic graph
//   - REMOTE_ERROR: the CloudFormation API failed in an unexpected way
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidCdkOut, "path %s is not a directory", p)
//	if errors.Is(err, errors.ErrCodeInvalidCdkOut) {
//	    // configuration problem, nothing was queried yet
//	}
//
//	err := errors.Wrap(errors.ErrCodeRemote, origErr, "list imports of %s", name)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidCdkOut Code = "INVALID_CDK_OUT"

	// Graph analysis errors
	ErrCodeCyclicGraph Code = "CYCLIC_GRAPH"

	// Remote errors
	ErrCodeRemote Code = "REMOTE_ERROR"
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
