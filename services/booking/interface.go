package booking

import (
	bookingRepo "courtside/database/repository/booking"
	courtRepo "courtside/database/repository/court"
	"courtside/models"
	"courtside/services/membership"
)

// BookingService governs the booking lifecycle: creation in pending,
// admin approval or rejection, user cancellation, and the queries the
// dashboards read.
type BookingService interface {
	CreateBooking(input models.BookingInput) (*models.Booking, error)
	GetBooking(id string) (*models.Booking, error)
	ListBookings(email, status string) ([]models.Booking, error)
	ListPending() ([]models.Booking, error)

	// Approve transitions pending → approved and reports whether the
	// approval promoted the user to member.
	Approve(id string) (*models.Booking, bool, error)

	// Reject removes a pending booking.
	Reject(id string) error

	// Cancel removes the requester's pending or approved booking. Admins
	// may cancel any booking.
	Cancel(id, requesterEmail string, isAdmin bool) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo       bookingRepo.BookingRepository
	CourtRepo  courtRepo.CourtRepository
	Membership membership.MembershipService
}
