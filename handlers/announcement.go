package handlers

import (
	"net/http"

	"courtside/services/announcement"

	"github.com/gin-gonic/gin"
)

// AnnouncementHandler exposes club announcements.
type AnnouncementHandler struct {
	AnnouncementSvc announcement.AnnouncementService
}

type announcementInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// ListAnnouncementsHandler handles GET /api/announcements, newest first.
func (h *AnnouncementHandler) ListAnnouncementsHandler(c *gin.Context) {
	items, err := h.AnnouncementSvc.ListAnnouncements()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list announcements"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateAnnouncementHandler handles POST /api/announcements (admin).
func (h *AnnouncementHandler) CreateAnnouncementHandler(c *gin.Context) {
	var input announcementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	item, err := h.AnnouncementSvc.CreateAnnouncement(input.Title, input.Description)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateAnnouncementHandler handles PUT /api/announcements/:id (admin).
func (h *AnnouncementHandler) UpdateAnnouncementHandler(c *gin.Context) {
	var input announcementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	item, err := h.AnnouncementSvc.UpdateAnnouncement(c.Param("id"), input.Title, input.Description)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteAnnouncementHandler handles DELETE /api/announcements/:id (admin).
func (h *AnnouncementHandler) DeleteAnnouncementHandler(c *gin.Context) {
	if err := h.AnnouncementSvc.DeleteAnnouncement(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Announcement deleted"})
}
