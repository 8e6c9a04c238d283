package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the referenced doctor/patient/appointment/schedule
	// does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrForbidden means the actor lacks the required role or does not own
	// the resource. Never retried, surfaced straight to the caller.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError reports a single bad form field. The caller is sent back to
// the input with the message attached to the field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
