package payment

import "fmt"

// InvalidCouponError reports an unknown or expired coupon code. The
// price is left unchanged when it is returned.
type InvalidCouponError struct {
	Code string
}

func (e *InvalidCouponError) Error() string {
	return fmt.Sprintf("invalid or expired coupon %q", e.Code)
}

// ConflictError reports a payment attempt against a booking that is not
// payable: not approved yet, already paid, or already recorded.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s", e.Message)
}

func NewConflictError(msg string) error {
	return &ConflictError{Message: msg}
}

// NotFoundError reports a missing booking.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("notFound: %s", e.Message)
}

func NewNotFoundError(msg string) error {
	return &NotFoundError{Message: msg}
}
