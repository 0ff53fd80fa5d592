package platform

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode categorizes platform errors.
type ErrorCode string

const (
	// CodeUnavailable indicates the capability does not exist on this back-end.
	CodeUnavailable ErrorCode = "UNAVAILABLE"

	// CodeFailed indicates the operation was attempted and failed.
	CodeFailed ErrorCode = "FAILED"

	// CodeCantOpen indicates a file, directory or library could not be opened.
	CodeCantOpen ErrorCode = "CANT_OPEN"

	// CodeCantFork indicates a child process could not be started.
	CodeCantFork ErrorCode = "CANT_FORK"

	// CodeInvalidParameter indicates an argument outside the accepted range.
	CodeInvalidParameter ErrorCode = "INVALID_PARAMETER"

	// CodeAlreadyInUse indicates a device or resource is held elsewhere.
	CodeAlreadyInUse ErrorCode = "ALREADY_IN_USE"
)

// Error is the error type returned by back-end operations.
//
// Optional capabilities report CodeUnavailable instead of failing hard, so
// callers can branch on absence with IsUnavailable.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Op names the operation that failed (e.g. "shell_open").
	Op string

	// Message is a human-readable description.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Code))
	if e.Op != "" {
		b.WriteString(": ")
		b.WriteString(e.Op)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error without an underlying cause.
func NewError(code ErrorCode, op, message string) *Error {
	return &Error{Code: code, Op: op, Message: message}
}

// WrapError creates an Error around an underlying cause.
func WrapError(code ErrorCode, op string, err error) *Error {
	return &Error{Code: code, Op: op, Err: err}
}

// Unavailable returns the canonical "not supported here" error for op.
func Unavailable(op string) *Error {
	return &Error{Code: CodeUnavailable, Op: op}
}

// CodeOf extracts the code of a platform error. Returns "" for nil and for
// errors that are not platform errors.
func CodeOf(err error) ErrorCode {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

// IsUnavailable returns true if err reports a missing capability.
// Uses errors.As to handle wrapped errors.
func IsUnavailable(err error) bool {
	return CodeOf(err) == CodeUnavailable
}

// IsFailed returns true if err reports a failed attempt.
func IsFailed(err error) bool {
	return CodeOf(err) == CodeFailed
}

// LifecycleError describes a lifecycle contract violation: a stage skipped
// or entered twice. The OS panics with a *LifecycleError; there is no
// recovery path.
type LifecycleError struct {
	Op      string
	Current Stage
	Allowed []Stage
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("lifecycle violation: %s called in stage %s (allowed: %v)", e.Op, e.Current, e.Allowed)
}
