package userRepo

import "courtside/models"

// UserRepository persists identity records.
type UserRepository interface {
	// UpsertByEmail creates the record on first login and refreshes the
	// display fields afterwards. The role of an existing record is never
	// touched here.
	UpsertByEmail(user *models.User) (*models.User, error)

	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	SearchByEmail(query string) ([]models.User, error)
	UpdateRole(id, role string) (*models.User, error)
	UpdateRoleByEmail(email, role string) (*models.User, error)
	GetAll() ([]models.User, error)
	Count() (int64, error)
}
