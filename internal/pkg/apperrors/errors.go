package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrPlanNotFound     = errors.New("plan not found")
	ErrUserNotFound     = errors.New("user not found")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Authorization errors. Deliberately surfaced with the same status as
	// authentication failures so callers cannot distinguish which check failed.
	ErrUnauthorized = errors.New("not authorized")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
	ErrTermOutOfRange   = errors.New("term outside plan range")

	// User errors
	ErrEmailAlreadyExists = errors.New("email already exists")
)
