package order

import (
	"errors"
	"fmt"
)

var ErrOrderNotFound = errors.New("order not found")

// ValidationError reports malformed input. It is always raised before
// any write is attempted, so a caller seeing one can assume nothing
// was persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

func validationErr(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
