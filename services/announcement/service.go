package announcement

import (
	"fmt"

	announcementRepo "courtside/database/repository/announcement"
	"courtside/models"

	"github.com/google/uuid"
)

// AnnouncementService is the admin CRUD surface for club announcements.
type AnnouncementService interface {
	ListAnnouncements() ([]models.Announcement, error)
	CreateAnnouncement(title, description string) (*models.Announcement, error)
	UpdateAnnouncement(id, title, description string) (*models.Announcement, error)
	DeleteAnnouncement(id string) error
}

// DefaultAnnouncementService is the production implementation.
type DefaultAnnouncementService struct {
	Repo announcementRepo.AnnouncementRepository
}

// ListAnnouncements returns all announcements, newest first.
func (svc *DefaultAnnouncementService) ListAnnouncements() ([]models.Announcement, error) {
	return svc.Repo.GetAll()
}

// CreateAnnouncement publishes a new announcement.
func (svc *DefaultAnnouncementService) CreateAnnouncement(title, description string) (*models.Announcement, error) {
	if title == "" {
		return nil, fmt.Errorf("announcement title is required")
	}
	a := &models.Announcement{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
	}
	if err := svc.Repo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateAnnouncement edits an existing announcement.
func (svc *DefaultAnnouncementService) UpdateAnnouncement(id, title, description string) (*models.Announcement, error) {
	if title == "" {
		return nil, fmt.Errorf("announcement title is required")
	}
	a := &models.Announcement{
		ID:          id,
		Title:       title,
		Description: description,
	}
	if err := svc.Repo.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

// DeleteAnnouncement removes an announcement.
func (svc *DefaultAnnouncementService) DeleteAnnouncement(id string) error {
	deleted, err := svc.Repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("announcement %s not found", id)
	}
	return nil
}
