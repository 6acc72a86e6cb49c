package dashboard

import (
	bookingRepo "courtside/database/repository/booking"
	courtRepo "courtside/database/repository/court"
	memberRepo "courtside/database/repository/member"
	paymentRepo "courtside/database/repository/payment"
	userRepo "courtside/database/repository/user"
	"courtside/models"
)

// AdminStats is the club-wide overview shown on the admin dashboard.
type AdminStats struct {
	TotalCourts       int64 `json:"totalCourts"`
	TotalUsers        int64 `json:"totalUsers"`
	TotalMembers      int64 `json:"totalMembers"`
	TotalBookings     int64 `json:"totalBookings"`
	PendingBookings   int64 `json:"pendingBookings"`
	ConfirmedBookings int64 `json:"confirmedBookings"`
	TotalPayments     int64 `json:"totalPayments"`
}

// UserStats is the per-user view of the same numbers.
type UserStats struct {
	PendingBookings   int `json:"pendingBookings"`
	ApprovedBookings  int `json:"approvedBookings"`
	ConfirmedBookings int `json:"confirmedBookings"`
	Payments          int `json:"payments"`
}

// DashboardService aggregates counts for the overview pages.
type DashboardService interface {
	GetAdminStats() (*AdminStats, error)
	GetUserStats(email string) (*UserStats, error)
}

// DefaultDashboardService is the production implementation.
type DefaultDashboardService struct {
	Bookings bookingRepo.BookingRepository
	Courts   courtRepo.CourtRepository
	Users    userRepo.UserRepository
	Members  memberRepo.MemberRepository
	Payments paymentRepo.PaymentRepository
}

// GetAdminStats aggregates the club-wide counters.
func (svc *DefaultDashboardService) GetAdminStats() (*AdminStats, error) {
	stats := &AdminStats{}
	var err error

	if stats.TotalCourts, err = svc.Courts.Count(); err != nil {
		return nil, err
	}
	if stats.TotalUsers, err = svc.Users.Count(); err != nil {
		return nil, err
	}
	if stats.TotalMembers, err = svc.Members.Count(); err != nil {
		return nil, err
	}
	if stats.TotalBookings, err = svc.Bookings.Count(); err != nil {
		return nil, err
	}
	if stats.PendingBookings, err = svc.Bookings.CountByStatus(models.BookingStatusPending); err != nil {
		return nil, err
	}
	if stats.ConfirmedBookings, err = svc.Bookings.CountByStatus(models.BookingStatusConfirmed); err != nil {
		return nil, err
	}
	if stats.TotalPayments, err = svc.Payments.Count(); err != nil {
		return nil, err
	}
	return stats, nil
}

// GetUserStats aggregates the counters for one user's dashboard.
func (svc *DefaultDashboardService) GetUserStats(email string) (*UserStats, error) {
	pending, err := svc.Bookings.ListByUser(email, models.BookingStatusPending)
	if err != nil {
		return nil, err
	}
	approved, err := svc.Bookings.ListByUser(email, models.BookingStatusApproved)
	if err != nil {
		return nil, err
	}
	confirmed, err := svc.Bookings.ListByUser(email, models.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}
	payments, err := svc.Payments.ListByEmail(email)
	if err != nil {
		return nil, err
	}

	return &UserStats{
		PendingBookings:   len(pending),
		ApprovedBookings:  len(approved),
		ConfirmedBookings: len(confirmed),
		Payments:          len(payments),
	}, nil
}
