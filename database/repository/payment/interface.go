package paymentRepo

import (
	"errors"

	"courtside/models"
)

// ErrDuplicateBooking signals that a payment already exists for the
// booking. The unique bookingId index raises it; callers surface it as a
// conflict rather than recording a second charge.
var ErrDuplicateBooking = errors.New("payment already recorded for booking")

// PaymentRepository persists completed payments.
type PaymentRepository interface {
	Create(payment *models.Payment) error
	ListByEmail(email string) ([]models.Payment, error)
	ExistsForBooking(bookingID string) (bool, error)
	Count() (int64, error)
}
