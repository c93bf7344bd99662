package icp

import "errors"

var (
	// ErrUnknownCode indicates a value outside its closed enumeration.
	ErrUnknownCode = errors.New("unknown code")

	// ErrDuplicateConstraint indicates the same constraint appears twice in one record.
	ErrDuplicateConstraint = errors.New("duplicate constraint")
)

// FieldError ties a validation failure to an input field.
type FieldError struct {
	Field string
	Err   error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

// Unwrap returns the underlying sentinel for errors.Is() compatibility.
func (e *FieldError) Unwrap() error {
	return e.Err
}
