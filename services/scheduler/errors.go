package scheduler

import (
	"errors"
	"fmt"
)

// ValidationError rejects malformed input at the query boundary before
// any computation runs. The caller must fix the request, not retry it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s %s", e.Field, e.Reason)
}

func newValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ConflictError reports that another booking won the race for a slot.
// The caller should re-query fresh slots and retry with a new choice.
type ConflictError struct {
	EventID string
	Date    string
	Start   int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: slot %d on %s for event %s is no longer free", e.Start, e.Date, e.EventID)
}

// UnavailableError reports that the scheduler could not reach its
// storage or acquire its reservation lock in time. Retryable with
// backoff; never folded into an empty availability result.
type UnavailableError struct {
	Op  string
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("unavailable: %s: %v", e.Op, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsUnavailable reports whether err is an UnavailableError.
func IsUnavailable(err error) bool {
	var ue *UnavailableError
	return errors.As(err, &ue)
}
