package user

import (
	userRepo "courtside/database/repository/user"
	"courtside/models"
	"courtside/utils"
)

// UserService resolves identities and roles. Role lookups read through
// the role cache; a lookup failure resolves to the least-privileged
// "user" role so rendering is never blocked on an error.
type UserService interface {
	UpsertUser(email, name, photo string) (*models.User, error)

	// ResolveRole maps an email to its role, consulting the cache first.
	ResolveRole(email string) string

	// RefreshRole bypasses and repopulates the cache. Called after any
	// mutation known to affect role.
	RefreshRole(email string) string

	GetByEmail(email string) (*models.User, error)
	SearchByEmail(query string) ([]models.User, error)

	// SetRole is the admin tooling path (make admin, demote). It
	// invalidates the cached role.
	SetRole(id, role string) (*models.User, error)

	GetAllUsers() ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo  userRepo.UserRepository
	Cache utils.RoleCache
}
