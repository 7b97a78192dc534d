package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed is matched by every ValidationErrors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required field is blank.
	ErrFieldRequired = errors.New("field is required")
)
