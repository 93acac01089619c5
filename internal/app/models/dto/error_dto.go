package dto

import (
	"time"
)

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Authentication and authorization errors. Authorization failures share
	// the unauthorized code: callers cannot tell which check failed.
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeInvalidToken       ErrorCode = "AUTH_002"
	ErrorCodeExpiredToken       ErrorCode = "AUTH_003"
	ErrorCodeUnauthorized       ErrorCode = "AUTH_004"

	// Resource errors
	ErrorCodeResourceNotFound ErrorCode = "RES_001"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
)

// ErrorDetail represents detailed error information
type ErrorDetail struct {
	Code    ErrorCode   `json:"code" example:"AUTH_004"`
	Message string      `json:"message" example:"Not authorized"`
	Field   string      `json:"field,omitempty" example:"planId"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Success   bool         `json:"success" example:"false"`
	Error     *ErrorDetail `json:"error"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:    code,
		Message: message,
	}
}

// WithField adds a field name to the error detail
func (e *ErrorDetail) WithField(field string) *ErrorDetail {
	e.Field = field
	return e
}

// WithDetails adds arbitrary detail data to the error detail
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}

// NewErrorResponse creates the standard error envelope
func NewErrorResponse(errorDetail *ErrorDetail) *ErrorResponse {
	return &ErrorResponse{
		Success:   false,
		Error:     errorDetail,
		Timestamp: time.Now(),
	}
}

// FieldError is a single field-level validation failure, in the shape the
// web client expects.
type FieldError struct {
	Location string `json:"location" example:"body"`
	Msg      string `json:"msg" example:"Invalid email"`
	Path     string `json:"path" example:"email"`
	Type     string `json:"type" example:"field"`
}

// FieldErrorsResponse wraps field errors under an errors key. The register
// endpoint returns this with a 200 status for duplicate emails.
type FieldErrorsResponse struct {
	Errors []FieldError `json:"errors"`
}

// NewFieldError creates a field error for a body field
func NewFieldError(path, msg string) FieldError {
	return FieldError{
		Location: "body",
		Msg:      msg,
		Path:     path,
		Type:     "field",
	}
}
