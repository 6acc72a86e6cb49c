package handlers

import (
	"errors"
	"net/http"

	"courtside/models"
	"courtside/services/booking"
	"courtside/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	BookingSvc booking.BookingService
}

// CreateBookingHandler handles POST /api/bookings. The requester's
// identity comes from the auth context, never from the request body.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	input.UserEmail = requesterEmail(c)

	bk, err := h.BookingSvc.CreateBooking(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	logger.Info("Booking created",
		zap.String("bookingID", bk.ID),
		zap.String("userEmail", bk.UserEmail),
		zap.String("courtID", bk.CourtID))
	c.JSON(http.StatusCreated, bk)
}

// ListBookingsHandler handles GET /api/bookings. Admins see every
// booking; everyone else sees only their own, whatever userEmail says.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	email := c.Query("userEmail")
	status := c.Query("status")
	if !isAdmin(c) {
		email = requesterEmail(c)
	}

	bookings, err := h.BookingSvc.ListBookings(email, status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	bk, err := h.BookingSvc.GetBooking(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !isAdmin(c) && bk.UserEmail != requesterEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your booking"})
		return
	}
	c.JSON(http.StatusOK, bk)
}

// ListPendingBookingsHandler handles GET /api/bookings/pending (admin).
func (h *BookingHandler) ListPendingBookingsHandler(c *gin.Context) {
	bookings, err := h.BookingSvc.ListPending()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatusHandler handles PATCH /api/bookings/:id (admin).
// The only accepted transition is pending → approved; approval may
// promote the booking's owner to member, which the response reports.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Status != models.BookingStatusApproved {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only 'approved' is a valid status transition"})
		return
	}

	bk, promoted, err := h.BookingSvc.Approve(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.GetLogger().Info("Booking approved",
		zap.String("bookingID", bk.ID),
		zap.Bool("promotedToMember", promoted))
	c.JSON(http.StatusOK, gin.H{"booking": bk, "promotedToMember": promoted})
}

// DeleteBookingHandler handles DELETE /api/bookings/:id. For an admin
// this is a rejection of a pending booking, falling back to an
// administrative cancel when the booking is already approved. For the
// owner it is a cancellation of their own pending or approved booking.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	id := c.Param("id")
	email := requesterEmail(c)

	var err error
	if isAdmin(c) {
		err = h.BookingSvc.Reject(id)
		var conflict *booking.ConflictError
		if errors.As(err, &conflict) {
			err = h.BookingSvc.Cancel(id, email, true)
		}
	} else {
		err = h.BookingSvc.Cancel(id, email, false)
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}
