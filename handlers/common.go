package handlers

import (
	"errors"
	"net/http"

	"courtside/services/booking"
	"courtside/services/payment"
	"courtside/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError maps typed service errors onto HTTP status codes.
// Anything untyped is a 500 and gets logged at error level.
func respondServiceError(c *gin.Context, err error) {
	var (
		bValidation *booking.ValidationError
		bNotFound   *booking.NotFoundError
		bConflict   *booking.ConflictError
		pNotFound   *payment.NotFoundError
		pConflict   *payment.ConflictError
		pCoupon     *payment.InvalidCouponError
	)
	switch {
	case errors.As(err, &bValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": bValidation.Message})
	case errors.As(err, &bNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": bNotFound.Message})
	case errors.As(err, &bConflict):
		c.JSON(http.StatusConflict, gin.H{"error": bConflict.Message})
	case errors.As(err, &pNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": pNotFound.Message})
	case errors.As(err, &pConflict):
		c.JSON(http.StatusConflict, gin.H{"error": pConflict.Message})
	case errors.As(err, &pCoupon):
		c.JSON(http.StatusNotFound, gin.H{"error": pCoupon.Error()})
	default:
		utils.GetLogger().Error("Unhandled service error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// requesterEmail reads the authenticated email set by the auth
// middleware. An empty string means the route was mounted without it.
func requesterEmail(c *gin.Context) string {
	return c.GetString("email")
}

// isAdmin reports whether the authenticated caller holds the admin role.
func isAdmin(c *gin.Context) bool {
	return c.GetString("role") == "admin"
}
