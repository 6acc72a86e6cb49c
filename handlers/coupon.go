package handlers

import (
	"net/http"

	"courtside/models"
	"courtside/services/coupon"

	"github.com/gin-gonic/gin"
)

// CouponHandler exposes the coupon listing and its admin CRUD.
type CouponHandler struct {
	CouponSvc coupon.CouponService
}

// ListCouponsHandler handles GET /api/coupons. The checkout page shows
// active codes; expiry is still enforced server-side at apply time.
func (h *CouponHandler) ListCouponsHandler(c *gin.Context) {
	coupons, err := h.CouponSvc.ListCoupons()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list coupons"})
		return
	}
	c.JSON(http.StatusOK, coupons)
}

// CreateCouponHandler handles POST /api/coupons (admin).
func (h *CouponHandler) CreateCouponHandler(c *gin.Context) {
	var input models.CouponInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	cp, err := h.CouponSvc.CreateCoupon(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, cp)
}

// UpdateCouponHandler handles PUT /api/coupons/:id (admin).
func (h *CouponHandler) UpdateCouponHandler(c *gin.Context) {
	var input models.CouponInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	cp, err := h.CouponSvc.UpdateCoupon(c.Param("id"), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cp)
}

// DeleteCouponHandler handles DELETE /api/coupons/:id (admin).
func (h *CouponHandler) DeleteCouponHandler(c *gin.Context) {
	if err := h.CouponSvc.DeleteCoupon(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted"})
}
