package court

import (
	"fmt"

	"courtside/models"
	"courtside/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListCourts returns one catalog page, optionally sorted by price.
func (svc *DefaultCourtService) ListCourts(sort string, page int) (*CourtPage, error) {
	if page < 1 {
		page = 1
	}
	courts, err := svc.Repo.List(sort, page, DefaultPageSize)
	if err != nil {
		return nil, err
	}
	total, err := svc.Repo.Count()
	if err != nil {
		return nil, err
	}

	totalPages := int((total + DefaultPageSize - 1) / DefaultPageSize)
	return &CourtPage{
		Courts:     courts,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// GetCourt retrieves a single court.
func (svc *DefaultCourtService) GetCourt(id string) (*models.Court, error) {
	court, err := svc.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if court == nil {
		return nil, fmt.Errorf("court %s not found", id)
	}
	return court, nil
}

func validateCourtInput(input models.CourtInput) error {
	if len(input.Slots) == 0 {
		return fmt.Errorf("a bookable court needs at least one slot")
	}
	seen := make(map[string]bool, len(input.Slots))
	for _, slot := range input.Slots {
		if slot == "" {
			return fmt.Errorf("slot labels must not be empty")
		}
		if seen[slot] {
			return fmt.Errorf("duplicate slot label %q", slot)
		}
		seen[slot] = true
	}
	if input.PricePerSession < 0 {
		return fmt.Errorf("price per session must not be negative")
	}
	return nil
}

// CreateCourt adds a new court. Admin only; routing enforces the role.
func (svc *DefaultCourtService) CreateCourt(input models.CourtInput) (*models.Court, error) {
	if err := validateCourtInput(input); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = models.CourtStatusAvailable
	}
	sessionDuration := input.SessionDuration
	if sessionDuration == 0 {
		sessionDuration = 60
	}

	court := &models.Court{
		ID:              uuid.New().String(),
		Name:            input.Name,
		Category:        input.Category,
		Type:            input.Type,
		Indoor:          input.Indoor,
		Description:     input.Description,
		MaxPlayers:      input.MaxPlayers,
		Status:          status,
		SessionDuration: sessionDuration,
		PricePerSession: input.PricePerSession,
		Slots:           input.Slots,
		ImageURL:        input.ImageURL,
	}
	if err := svc.Repo.Create(court); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("court created", zap.String("id", court.ID), zap.String("name", court.Name))
	return court, nil
}

// UpdateCourt replaces the mutable fields of an existing court.
func (svc *DefaultCourtService) UpdateCourt(id string, input models.CourtInput) (*models.Court, error) {
	if err := validateCourtInput(input); err != nil {
		return nil, err
	}

	court, err := svc.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if court == nil {
		return nil, fmt.Errorf("court %s not found", id)
	}

	court.Name = input.Name
	court.Category = input.Category
	court.Type = input.Type
	court.Indoor = input.Indoor
	court.Description = input.Description
	court.MaxPlayers = input.MaxPlayers
	if input.Status != "" {
		court.Status = input.Status
	}
	if input.SessionDuration != 0 {
		court.SessionDuration = input.SessionDuration
	}
	court.PricePerSession = input.PricePerSession
	court.Slots = input.Slots
	if input.ImageURL != "" {
		court.ImageURL = input.ImageURL
	}

	if err := svc.Repo.Update(court); err != nil {
		return nil, err
	}
	return court, nil
}

// DeleteCourt removes a court.
func (svc *DefaultCourtService) DeleteCourt(id string) error {
	deleted, err := svc.Repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("court %s not found", id)
	}
	utils.GetLogger().Info("court deleted", zap.String("id", id))
	return nil
}
