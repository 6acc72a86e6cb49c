package booking

import "fmt"

// ValidationError reports a request rejected before any mutation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s", e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// NotFoundError reports a booking or court that does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("notFound: %s", e.Message)
}

func NewNotFoundError(msg string) error {
	return &NotFoundError{Message: msg}
}

// ConflictError reports a stale transition: the booking was no longer in
// the state the caller assumed (already approved, already paid, deleted).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s", e.Message)
}

func NewConflictError(msg string) error {
	return &ConflictError{Message: msg}
}
