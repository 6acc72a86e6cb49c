package membership

import (
	bookingRepo "courtside/database/repository/booking"
	memberRepo "courtside/database/repository/member"
	userRepo "courtside/database/repository/user"
	"courtside/models"
	"courtside/utils"
)

// MembershipService coordinates role promotion and demotion. Promotion
// is idempotent: calling it twice for the same email leaves exactly one
// member record and one role change.
type MembershipService interface {
	// PromoteToMember creates the member record if absent, flips the
	// user's role to member, and invalidates the cached role. Reports
	// whether this call actually promoted the user.
	PromoteToMember(email, name, image string) (bool, error)

	// JoinClub is the explicit "become a member" action. It requires at
	// least one approved booking and then promotes idempotently.
	JoinClub(email, name, image string) (bool, error)

	// Demote removes the member record and returns the user to the
	// plain "user" role.
	Demote(memberID string) error

	ListMembers() ([]models.Member, error)
}

// DefaultMembershipService is the production implementation.
type DefaultMembershipService struct {
	Members   memberRepo.MemberRepository
	Users     userRepo.UserRepository
	Bookings  bookingRepo.BookingRepository
	RoleCache utils.RoleCache
}
