package errors

import (
	goerrors "errors"
	"fmt"
)

// ErrorCode represents a Satchel error code.
type ErrorCode string

const (
	ErrValidation      ErrorCode = "VALIDATION"       // malformed field input
	ErrNotFound        ErrorCode = "NOT_FOUND"        // referenced name/phone/tag absent
	ErrOutOfRange      ErrorCode = "OUT_OF_RANGE"     // note ID outside [1, count]
	ErrMissingArgument ErrorCode = "MISSING_ARGUMENT" // too few tokens for a command
	ErrInternal        ErrorCode = "INTERNAL"         // unexpected failure
)

// Error represents a structured error with a code and optional details.
// Every code is recoverable at the dispatch boundary; none terminates
// the session.
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidation creates a validation error for a malformed field value.
func NewValidation(msg string) *Error {
	return &Error{
		Code:    ErrValidation,
		Message: msg,
	}
}

// NewValidationf creates a validation error with a formatted message.
func NewValidationf(format string, args ...any) *Error {
	return NewValidation(fmt.Sprintf(format, args...))
}

// NewNotFound creates an error for a missing contact, phone, or tag.
func NewNotFound(kind, identifier string) *Error {
	return &Error{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s not found: %s", kind, identifier),
		Details: map[string]any{"kind": kind, "identifier": identifier},
	}
}

// NewOutOfRange creates an error for a note ID outside the listed range.
func NewOutOfRange(id, count int) *Error {
	return &Error{
		Code:    ErrOutOfRange,
		Message: fmt.Sprintf("note id %d is out of range [1, %d]", id, count),
		Details: map[string]any{"id": id, "count": count},
	}
}

// NewMissingArgument creates an error for a command invoked with too few
// arguments. Usage describes the expected shape, e.g. "add <name> <phone>".
func NewMissingArgument(usage string) *Error {
	return &Error{
		Code:    ErrMissingArgument,
		Message: fmt.Sprintf("missing required arguments, usage: %s", usage),
		Details: map[string]any{"usage": usage},
	}
}

// NewInternal creates an error for unexpected internal failures.
func NewInternal(err error) *Error {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &Error{
		Code:    ErrInternal,
		Message: msg,
	}
}

// Is checks if an error is a satchel Error with the given code.
// Wrapped errors are unwrapped first.
func Is(err error, code ErrorCode) bool {
	var sErr *Error
	if goerrors.As(err, &sErr) {
		return sErr.Code == code
	}
	return false
}
