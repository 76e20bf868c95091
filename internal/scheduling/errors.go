package scheduling

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is matched by every validation failure of the engine
	ErrInvalidInput = errors.New("scheduling: invalid input")

	// ErrUnknownPattern is returned for a recurrence pattern without a known interval
	ErrUnknownPattern = errors.New("scheduling: unknown recurrence pattern")
)

// ValidationError describes a malformed argument. It matches both ErrInvalidInput
// and the underlying cause with errors.Is.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("scheduling: invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrInvalidInput, e.Err}
}

func invalid(field, value string, err error) error {
	return &ValidationError{Field: field, Value: value, Err: err}
}
