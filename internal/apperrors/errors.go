// Package apperrors defines the structured error taxonomy for the client core.
// Every network-facing operation converts its failures into one of these
// codes at the transport boundary; raw transport errors never reach callers.
package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Code categorizes an application error.
type Code string

const (
	// CodeUnauthenticated indicates the session is absent or expired (HTTP 401).
	CodeUnauthenticated Code = "unauthenticated"
	// CodeForbidden indicates the current role may not perform the action (HTTP 403).
	CodeForbidden Code = "forbidden"
	// CodeValidation indicates the backend rejected the input (HTTP 422).
	CodeValidation Code = "validation"
	// CodeNotFound indicates a resource the operation expected was missing (HTTP 404).
	CodeNotFound Code = "not_found"
	// CodeUnavailable indicates a network or transport failure.
	CodeUnavailable Code = "unavailable"
	// CodeInternal indicates an unexpected backend failure.
	CodeInternal Code = "internal"
)

// Error is a structured application error with a code, a user-facing message,
// an optional field→messages map for validation failures, and an optional
// cause. It supports errors.Is/As through Unwrap.
type Error struct {
	Code    Code
	Message string
	// Fields carries per-field validation messages for CodeValidation.
	Fields map[string][]string
	Cause  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Unauthenticated creates a new unauthenticated error.
func Unauthenticated(message string) *Error {
	return &Error{Code: CodeUnauthenticated, Message: message}
}

// Forbidden creates a new forbidden error.
func Forbidden(message string) *Error {
	return &Error{Code: CodeForbidden, Message: message}
}

// Forbiddenf creates a new forbidden error with a formatted message.
func Forbiddenf(format string, args ...any) *Error {
	return &Error{Code: CodeForbidden, Message: fmt.Sprintf(format, args...)}
}

// Validation creates a validation error from a field→messages map.
// The message is the concatenation of every field with its joined messages,
// fields sorted for deterministic output.
func Validation(fields map[string][]string) *Error {
	return &Error{
		Code:    CodeValidation,
		Message: FormatFields(fields),
		Fields:  fields,
	}
}

// NotFound creates a new not-found error.
func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

// Unavailable creates a new unavailable error wrapping a transport cause.
func Unavailable(message string, cause error) *Error {
	return &Error{Code: CodeUnavailable, Message: message, Cause: cause}
}

// Internal creates a new internal error.
func Internal(message string) *Error {
	return &Error{Code: CodeInternal, Message: message}
}

// Wrap wraps an existing error with a code and message, preserving the cause.
func Wrap(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Cause: err}
}

// FormatFields renders a field→messages map as "field: msg1, msg2" entries
// joined with "; ", fields in sorted order.
func FormatFields(fields map[string][]string) string {
	if len(fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(fields[k], ", "))
	}
	return strings.Join(parts, "; ")
}

// isCode checks if an error has a specific code.
func isCode(err error, code Code) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsUnauthenticated checks if an error is an unauthenticated error.
func IsUnauthenticated(err error) bool { return isCode(err, CodeUnauthenticated) }

// IsForbidden checks if an error is a forbidden error.
func IsForbidden(err error) bool { return isCode(err, CodeForbidden) }

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool { return isCode(err, CodeValidation) }

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool { return isCode(err, CodeNotFound) }

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool { return isCode(err, CodeUnavailable) }

// IsInternal checks if an error is an internal error.
func IsInternal(err error) bool { return isCode(err, CodeInternal) }

// GetCode returns the Code from an error, or empty string if it is not an *Error.
func GetCode(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// UserMessage returns the user-facing message for an error. Errors outside
// the taxonomy collapse to a generic fallback so raw transport details never
// surface in the UI.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "something went wrong, please try again"
}
