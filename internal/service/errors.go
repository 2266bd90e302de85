package service

import (
	"errors"
	"fmt"
)

// ErrEntryNotFound is returned when an operation targets an entry id that
// does not exist in the current snapshot.
var ErrEntryNotFound = errors.New("entry not found")

// TrackerServiceError is a custom error type for tracker service errors.
type TrackerServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for TrackerServiceError.
func (e *TrackerServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tracker service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("tracker service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TrackerServiceError) Unwrap() error {
	return e.Err
}

// NewTrackerServiceError creates a new TrackerServiceError.
func NewTrackerServiceError(operation, message string, err error) *TrackerServiceError {
	return &TrackerServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
