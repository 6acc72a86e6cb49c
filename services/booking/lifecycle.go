package booking

import (
	"fmt"

	"courtside/models"
	"courtside/utils"

	"go.uber.org/zap"
)

// Approve transitions a pending booking to approved. The database-level
// precondition makes a second concurrent approve observe no match and
// fail with a conflict instead of re-applying the transition. On success
// the first approval for a plain user promotes them to member.
func (svc *DefaultBookingService) Approve(id string) (*models.Booking, bool, error) {
	booking, err := svc.Repo.ApproveIfPending(id)
	if err != nil {
		return nil, false, fmt.Errorf("failed to approve booking: %w", err)
	}
	if booking == nil {
		current, err := svc.Repo.GetByID(id)
		if err != nil {
			return nil, false, err
		}
		if current == nil {
			return nil, false, NewNotFoundError(fmt.Sprintf("booking %s not found", id))
		}
		return nil, false, NewConflictError(fmt.Sprintf("booking %s is already %s", id, current.Status))
	}

	promoted := false
	if svc.Membership != nil {
		promoted, err = svc.Membership.PromoteToMember(booking.UserEmail, booking.UserName, booking.UserImage)
		if err != nil {
			// The approval stands; promotion re-runs on the next approval
			// or on the explicit "become a member" action.
			utils.GetLogger().Error("promotion after approval failed",
				zap.String("booking", booking.ID),
				zap.String("user", booking.UserEmail),
				zap.Error(err),
			)
		}
	}

	utils.GetLogger().Info("booking approved",
		zap.String("id", booking.ID),
		zap.String("user", booking.UserEmail),
		zap.Bool("promoted", promoted),
	)
	return booking, promoted, nil
}

// Reject removes a pending booking. Rejected bookings are not retained;
// a stale reject (booking already acted on) is a conflict.
func (svc *DefaultBookingService) Reject(id string) error {
	deleted, err := svc.Repo.DeleteIfStatusIn(id, []string{models.BookingStatusPending})
	if err != nil {
		return fmt.Errorf("failed to reject booking: %w", err)
	}
	if !deleted {
		current, err := svc.Repo.GetByID(id)
		if err != nil {
			return err
		}
		if current == nil {
			return NewNotFoundError(fmt.Sprintf("booking %s not found", id))
		}
		return NewConflictError(fmt.Sprintf("booking %s is already %s", id, current.Status))
	}

	utils.GetLogger().Info("booking rejected", zap.String("id", id))
	return nil
}

// Cancel removes the requester's booking while it is pending or approved
// and unpaid. Approval does not lock the slot against cancellation. Paid
// or confirmed bookings can no longer be cancelled by the user.
func (svc *DefaultBookingService) Cancel(id, requesterEmail string, isAdmin bool) error {
	booking, err := svc.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if booking == nil {
		return NewNotFoundError(fmt.Sprintf("booking %s not found", id))
	}
	if !isAdmin && booking.UserEmail != requesterEmail {
		return NewValidationError("booking belongs to another user")
	}

	statuses := []string{models.BookingStatusPending, models.BookingStatusApproved}
	deleted, err := svc.Repo.DeleteIfStatusIn(id, statuses)
	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	if !deleted {
		return NewConflictError(fmt.Sprintf("booking %s can no longer be cancelled", id))
	}

	utils.GetLogger().Info("booking cancelled",
		zap.String("id", id),
		zap.String("requestedBy", requesterEmail),
	)
	return nil
}
