package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	// Authentication errors
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")
	ErrAccountInactive  = errors.New("account is not active")

	// Resource errors
	ErrResourceNotFound     = errors.New("resource not found")
	ErrStudentNotFound      = errors.New("student not found")
	ErrPointNotFound        = errors.New("point entry not found")
	ErrNotificationNotFound = errors.New("notification not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Conflict errors
	ErrConflict               = errors.New("conflict")
	ErrEmailAlreadyExists     = errors.New("email already exists")
	ErrStudentIDAlreadyExists = errors.New("student ID already exists")
)

// ValidationError aggregates all violated field messages for a request.
type ValidationError struct {
	Messages []string
}

// Error joins all messages into one comma-separated string.
func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// Unwrap lets errors.Is match ErrValidationFailed.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// Add appends a message; format arguments are optional.
func (e *ValidationError) Add(format string, args ...interface{}) {
	e.Messages = append(e.Messages, fmt.Sprintf(format, args...))
}

// HasErrors reports whether any message was collected.
func (e *ValidationError) HasErrors() bool {
	return len(e.Messages) > 0
}

// NewValidationError creates a ValidationError from the given messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// ConflictError is a duplicate-unique-field error carrying a field hint.
type ConflictError struct {
	Err   error
	Field string
}

func (e *ConflictError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return ErrConflict.Error()
}

// Unwrap returns the underlying sentinel so errors.Is keeps working.
func (e *ConflictError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrConflict
}

// NewConflictError wraps a conflict sentinel with the offending field name.
func NewConflictError(err error, field string) *ConflictError {
	return &ConflictError{Err: err, Field: field}
}

// FieldHint extracts the field name from a conflict error, if any.
func FieldHint(err error) string {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		return conflict.Field
	}
	return ""
}
