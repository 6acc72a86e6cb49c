package court

import (
	courtRepo "courtside/database/repository/court"
	"courtside/models"
)

// DefaultPageSize is the fixed catalog page size.
const DefaultPageSize = 6

// CourtPage is one page of the catalog.
type CourtPage struct {
	Courts     []models.Court `json:"courts"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
}

// CourtService exposes the read-only catalog and the admin mutations.
type CourtService interface {
	ListCourts(sort string, page int) (*CourtPage, error)
	GetCourt(id string) (*models.Court, error)
	CreateCourt(input models.CourtInput) (*models.Court, error)
	UpdateCourt(id string, input models.CourtInput) (*models.Court, error)
	DeleteCourt(id string) error
}

// DefaultCourtService is the production implementation.
type DefaultCourtService struct {
	Repo courtRepo.CourtRepository
}
