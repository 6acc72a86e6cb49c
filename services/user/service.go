package user

import (
	"context"
	"fmt"

	"courtside/models"
	"courtside/utils"

	"go.uber.org/zap"
)

// UpsertUser records the identity on login, refreshing the display
// fields without touching the role of an existing record.
func (svc *DefaultUserService) UpsertUser(email, name, photo string) (*models.User, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	return svc.Repo.UpsertByEmail(&models.User{
		Email: email,
		Name:  name,
		Photo: photo,
		Role:  models.RoleUser,
	})
}

// ResolveRole maps the email to its role, cache first. Any failure
// resolves to "user" — least privilege, never a blocked render.
func (svc *DefaultUserService) ResolveRole(email string) string {
	ctx := context.Background()
	if svc.Cache != nil {
		if role, ok := svc.Cache.Get(ctx, email); ok {
			return role
		}
	}
	return svc.lookupAndCache(ctx, email)
}

// RefreshRole bypasses the cache and repopulates it from the store.
func (svc *DefaultUserService) RefreshRole(email string) string {
	ctx := context.Background()
	if svc.Cache != nil {
		svc.Cache.Invalidate(ctx, email)
	}
	return svc.lookupAndCache(ctx, email)
}

func (svc *DefaultUserService) lookupAndCache(ctx context.Context, email string) string {
	role := models.RoleUser
	u, err := svc.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Warn("role lookup failed, defaulting to user",
			zap.String("email", email),
			zap.Error(err),
		)
		return role
	}
	if u != nil && u.Role != "" {
		role = u.Role
	}
	if svc.Cache != nil {
		svc.Cache.Set(ctx, email, role)
	}
	return role
}

// GetByEmail retrieves a user record.
func (svc *DefaultUserService) GetByEmail(email string) (*models.User, error) {
	return svc.Repo.GetByEmail(email)
}

// SearchByEmail retrieves users by email substring.
func (svc *DefaultUserService) SearchByEmail(query string) ([]models.User, error) {
	return svc.Repo.SearchByEmail(query)
}

// SetRole changes a user's role from admin tooling and invalidates the
// cached value.
func (svc *DefaultUserService) SetRole(id, role string) (*models.User, error) {
	switch role {
	case models.RoleUser, models.RoleMember, models.RoleAdmin:
	default:
		return nil, fmt.Errorf("unknown role %q", role)
	}

	u, err := svc.Repo.UpdateRole(id, role)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %s not found", id)
	}
	if svc.Cache != nil {
		svc.Cache.Invalidate(context.Background(), u.Email)
	}
	utils.GetLogger().Info("user role changed",
		zap.String("email", u.Email),
		zap.String("role", role),
	)
	return u, nil
}

// GetAllUsers retrieves every user record.
func (svc *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return svc.Repo.GetAll()
}
