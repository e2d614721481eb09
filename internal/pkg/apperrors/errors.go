package apperrors

import (
	"errors"
	"fmt"
)

// Roster errors
var (
	ErrActivityNotFound  = errors.New("activity not found")
	ErrAlreadyRegistered = errors.New("student already signed up")
	ErrNotRegistered     = errors.New("student is not registered for this activity")
	ErrCapacityExceeded  = errors.New("activity is full")
)

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidRoster    = errors.New("invalid roster")
)

// NewActivityNotFoundError creates a not-found error naming the activity
func NewActivityNotFoundError(name string) error {
	return &CustomError{
		Err:     ErrActivityNotFound,
		Message: fmt.Sprintf("activity %q not found", name),
	}
}

// NewValidationError creates a validation error for a single field
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Code:    field,
	}
}

// NewRosterError reports a problem found while loading seed data
func NewRosterError(message string) error {
	return &CustomError{
		Err:     ErrInvalidRoster,
		Message: message,
	}
}

// Is returns whether err matches target or any of errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
