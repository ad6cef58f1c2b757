// Package errors defines the flat error taxonomy for remote command
// execution. Every failure surfaced to a caller is an *Error with one
// code from the fixed set below; callers dispatch on the code rather
// than on concrete types.
package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rileyhilliard/rmac/internal/records"
)

// Error codes for categorizing failures.
const (
	// ErrConnection: transport unreachable or dropped. Never retried
	// automatically.
	ErrConnection = "CONNECTION"
	// ErrTimeout: command exceeded the caller's bound. The channel that
	// carried it is discarded.
	ErrTimeout = "TIMEOUT"
	// ErrCommand: generic non-zero exit with no more specific match.
	ErrCommand = "COMMAND"
	// ErrPermission: operation denied for lack of privileges.
	ErrPermission = "PERMISSION"
	// ErrNotFound: the target resource or executable does not exist.
	ErrNotFound = "NOTFOUND"
	// ErrExists: the target already exists.
	ErrExists = "EXISTS"
	// ErrInvalid: a malformed argument, rejected before or by execution.
	ErrInvalid = "INVALID"
	// ErrParse: the command succeeded but its stdout could not be
	// interpreted. Distinct from a command failure.
	ErrParse = "PARSE"
	// ErrConfig: bad or missing configuration.
	ErrConfig = "CONFIG"
)

// Error is a structured error with a taxonomy code, message, optional
// suggestion, optional cause, and the RawResult of the execution that
// produced it when one exists.
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
	Result     *records.RawResult
}

// New creates a structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrConnection.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrConnection,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// WithResult attaches the originating RawResult and returns the error,
// so callers can inspect the exact command, stdout, and stderr.
func (e *Error) WithResult(r records.RawResult) *Error {
	e.Result = &r
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	if e.Result != nil && strings.TrimSpace(e.Result.Stderr) != "" {
		b.WriteString(fmt.Sprintf("\n  stderr: %s\n", strings.TrimSpace(e.Result.Stderr)))
	}

	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var rmErr *Error
	if errors.As(err, &rmErr) {
		return rmErr.Code == code
	}
	return false
}

// ResultOf extracts the RawResult attached to an error, if any.
func ResultOf(err error) (*records.RawResult, bool) {
	var rmErr *Error
	if errors.As(err, &rmErr) && rmErr.Result != nil {
		return rmErr.Result, true
	}
	return nil, false
}
