package membership

import (
	"context"
	"fmt"
	"time"

	"courtside/models"
	"courtside/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PromoteToMember grants member status for the email. The member record
// is created at most once (unique email index); a repeat call is a
// no-op. Admins are never demoted to member by a booking approval.
func (svc *DefaultMembershipService) PromoteToMember(email, name, image string) (bool, error) {
	member := &models.Member{
		ID:       uuid.New().String(),
		Email:    email,
		Name:     name,
		Image:    image,
		JoinedAt: time.Now(),
	}
	created, err := svc.Members.CreateIfAbsent(member)
	if err != nil {
		return false, fmt.Errorf("failed to create member record: %w", err)
	}

	user, err := svc.Users.GetByEmail(email)
	if err != nil {
		return false, fmt.Errorf("failed to load user %s: %w", email, err)
	}

	promoted := false
	if user != nil && user.Role == models.RoleUser {
		if _, err := svc.Users.UpdateRoleByEmail(email, models.RoleMember); err != nil {
			return false, fmt.Errorf("failed to update role for %s: %w", email, err)
		}
		promoted = true
	}

	if created || promoted {
		if svc.RoleCache != nil {
			svc.RoleCache.Invalidate(context.Background(), email)
		}
		utils.GetLogger().Info("user promoted to member",
			zap.String("email", email),
			zap.Bool("recordCreated", created),
		)
	}
	return created || promoted, nil
}

// JoinClub promotes the caller after verifying they have at least one
// approved booking. Promotion itself stays idempotent.
func (svc *DefaultMembershipService) JoinClub(email, name, image string) (bool, error) {
	hasApproved, err := svc.Bookings.HasApprovedByUser(email)
	if err != nil {
		return false, fmt.Errorf("failed to check bookings for %s: %w", email, err)
	}
	if !hasApproved {
		return false, fmt.Errorf("at least one approved booking is required to join the club")
	}
	return svc.PromoteToMember(email, name, image)
}

// Demote removes the member record and returns the user to "user".
func (svc *DefaultMembershipService) Demote(memberID string) error {
	member, err := svc.Members.Delete(memberID)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	if member == nil {
		return fmt.Errorf("member %s not found", memberID)
	}

	user, err := svc.Users.GetByEmail(member.Email)
	if err != nil {
		return fmt.Errorf("failed to load user %s: %w", member.Email, err)
	}
	if user != nil && user.Role == models.RoleMember {
		if _, err := svc.Users.UpdateRoleByEmail(member.Email, models.RoleUser); err != nil {
			return fmt.Errorf("failed to demote %s: %w", member.Email, err)
		}
	}

	if svc.RoleCache != nil {
		svc.RoleCache.Invalidate(context.Background(), member.Email)
	}
	utils.GetLogger().Info("member demoted", zap.String("email", member.Email))
	return nil
}

// ListMembers returns all member records.
func (svc *DefaultMembershipService) ListMembers() ([]models.Member, error) {
	return svc.Members.GetAll()
}
