package bookingRepo

import "courtside/models"

// BookingRepository persists bookings and enforces the lifecycle
// preconditions at the database level. The conditional mutations return
// (nil, nil) when no document matched the precondition so callers can
// distinguish a stale transition from a storage failure.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)

	// ListByUser returns the user's bookings, optionally filtered by
	// status. A "confirmed" status matches status == confirmed OR
	// isPaid == true. Empty email matches all users; empty status all
	// statuses.
	ListByUser(email, status string) ([]models.Booking, error)

	// ApproveIfPending flips pending → approved atomically.
	ApproveIfPending(id string) (*models.Booking, error)

	// MarkPaidIfApproved sets isPaid = true only while the booking is
	// approved and unpaid. Exactly one of two racing calls succeeds.
	MarkPaidIfApproved(id string) (*models.Booking, error)

	// UnmarkPaid reverts the paid flag. Used only to back out when the
	// payment record could not be written after the flag was flipped.
	UnmarkPaid(id string) error

	// DeleteIfStatusIn removes the booking only while its status is one
	// of the given values and it is unpaid. Returns false when nothing
	// matched.
	DeleteIfStatusIn(id string, statuses []string) (bool, error)

	HasApprovedByUser(email string) (bool, error)
	CountByStatus(status string) (int64, error)
	Count() (int64, error)
}
