package handlers

import (
	"net/http"
	"strconv"

	"courtside/models"
	"courtside/services/court"
	"courtside/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CourtHandler exposes the court catalog and its admin CRUD.
type CourtHandler struct {
	CourtSvc court.CourtService
}

// ListCourtsHandler handles GET /api/courts. Supports ?sort=asc|desc
// (by price per session) and ?page=N; the page size is fixed.
func (h *CourtHandler) ListCourtsHandler(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	sort := c.DefaultQuery("sort", "asc")

	result, err := h.CourtSvc.ListCourts(sort, page)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetCourtHandler handles GET /api/courts/:id.
func (h *CourtHandler) GetCourtHandler(c *gin.Context) {
	ct, err := h.CourtSvc.GetCourt(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ct)
}

// CreateCourtHandler handles POST /api/courts (admin).
func (h *CourtHandler) CreateCourtHandler(c *gin.Context) {
	var input models.CourtInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	ct, err := h.CourtSvc.CreateCourt(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	utils.GetLogger().Info("Court created", zap.String("courtID", ct.ID), zap.String("name", ct.Name))
	c.JSON(http.StatusCreated, ct)
}

// UpdateCourtHandler handles PUT /api/courts/:id (admin).
func (h *CourtHandler) UpdateCourtHandler(c *gin.Context) {
	var input models.CourtInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	ct, err := h.CourtSvc.UpdateCourt(c.Param("id"), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ct)
}

// DeleteCourtHandler handles DELETE /api/courts/:id (admin).
func (h *CourtHandler) DeleteCourtHandler(c *gin.Context) {
	if err := h.CourtSvc.DeleteCourt(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Court deleted"})
}
