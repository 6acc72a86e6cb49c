package announcementRepo

import "courtside/models"

// AnnouncementRepository persists admin announcements.
type AnnouncementRepository interface {
	Create(announcement *models.Announcement) error
	Update(announcement *models.Announcement) error
	Delete(id string) (bool, error)
	GetAll() ([]models.Announcement, error)
}
