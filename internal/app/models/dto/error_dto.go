package dto

import (
	"time"
)

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Roster errors
	ErrorCodeActivityNotFound  ErrorCode = "ACT_001"
	ErrorCodeAlreadyRegistered ErrorCode = "ACT_002"
	ErrorCodeNotRegistered     ErrorCode = "ACT_003"
	ErrorCodeCapacityExceeded  ErrorCode = "ACT_004"

	// Request errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeRouteNotFound    ErrorCode = "REQ_001"
	ErrorCodeMethodNotAllowed ErrorCode = "REQ_002"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
)

// ErrorResponse represents the standard error response structure.
// Detail carries the human readable message clients match on.
type ErrorResponse struct {
	Detail    string    `json:"detail" example:"Activity not found"`
	Code      ErrorCode `json:"code" example:"ACT_001"`
	Field     string    `json:"field,omitempty" example:"email"`
	Timestamp time.Time `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(code ErrorCode, detail string) *ErrorResponse {
	return &ErrorResponse{
		Detail:    detail,
		Code:      code,
		Timestamp: time.Now().UTC(),
	}
}

// WithField adds a field name to the error
func (e *ErrorResponse) WithField(field string) *ErrorResponse {
	e.Field = field
	return e
}
