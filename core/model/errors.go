package model

import "fmt"

// ValidationError reports an invalid field value at entity construction.
// It is the only error kind returned by the entity constructors, so the
// caller (typically an input-collection layer) can distinguish bad data
// from programming errors elsewhere in the system.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func validationErr(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
