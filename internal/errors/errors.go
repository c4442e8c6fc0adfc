// Package errors provides sentinel errors for the coursekit CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates a configuration or argument validation failure.
	ErrValidation = errors.New("validation error")

	// ErrInvalidName indicates a unit name that cannot produce an identifier.
	ErrInvalidName = errors.New("invalid name")

	// ErrNotFound indicates a project root, lecture, or file was not found.
	ErrNotFound = errors.New("not found")

	// ErrIO indicates a directory creation or file write failed.
	ErrIO = errors.New("io failure")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")
)

// DetailError captures structured error information for terminal output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the offending path (optional).
	Location string

	// Field is the config field name for schema errors (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewInvalidNameError reports a unit name that was rejected.
func NewInvalidNameError(name, reason string) error {
	return &DetailError{
		Type:    "invalid name",
		Message: fmt.Sprintf("%q %s", name, reason),
		Hint:    "Use a name containing at least one letter or digit, e.g. 03-neural-networks.",
		Cause:   ErrInvalidName,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewIOError wraps a filesystem error for the given path. The result matches
// both ErrIO and the underlying cause.
func NewIOError(message, location string, cause error) error {
	return &DetailError{
		Type:     "io failure",
		Message:  fmt.Sprintf("%s: %v", message, cause),
		Location: location,
		Cause:    fmt.Errorf("%w: %w", ErrIO, cause),
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// ExitError carries a process exit code up to main.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed is set once the command layer has already shown the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}
