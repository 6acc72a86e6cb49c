package courtRepo

import "courtside/models"

// CourtRepository persists courts. Courts are created and mutated by
// admins only and read everywhere else.
type CourtRepository interface {
	Create(court *models.Court) error
	Update(court *models.Court) error
	Delete(id string) (bool, error)
	GetByID(id string) (*models.Court, error)

	// List returns one page of courts. sort is "asc", "desc" (by
	// pricePerSession) or empty for insertion order. page is 1-based.
	List(sort string, page, limit int) ([]models.Court, error)
	Count() (int64, error)
}
