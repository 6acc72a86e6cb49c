package handlers

import (
	"net/http"

	"courtside/models"
	"courtside/services/payment"
	"courtside/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes the payment handoff endpoints.
type PaymentHandler struct {
	PaymentSvc payment.PaymentService
}

// ApplyCouponHandler handles POST /api/coupons/apply. Validates a code
// against expiry and returns the discounted price; an unknown or
// expired code is a 404 and leaves the price unchanged.
func (h *PaymentHandler) ApplyCouponHandler(c *gin.Context) {
	var input struct {
		Code  string  `json:"code" binding:"required"`
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.PaymentSvc.ApplyCoupon(input.Code, input.Price)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreatePaymentIntentHandler handles POST /api/create-payment-intent.
// Returns the Stripe client secret the frontend confirms the card with.
func (h *PaymentHandler) CreatePaymentIntentHandler(c *gin.Context) {
	var input struct {
		Amount float64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
		return
	}

	clientSecret, err := h.PaymentSvc.CreatePaymentIntent(input.Amount)
	if err != nil {
		utils.GetLogger().Error("Failed to create payment intent", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create payment intent"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// RecordPaymentHandler handles POST /api/payments. Binds a completed
// charge to a booking; the booking flips to paid exactly once, so a
// duplicate submission is a 409.
func (h *PaymentHandler) RecordPaymentHandler(c *gin.Context) {
	var input models.PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	input.Email = requesterEmail(c)

	pay, err := h.PaymentSvc.RecordPayment(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.GetLogger().Info("Payment recorded",
		zap.String("paymentID", pay.ID),
		zap.String("bookingID", pay.BookingID),
		zap.Float64("amount", pay.Amount))
	c.JSON(http.StatusCreated, pay)
}

// ListPaymentsHandler handles GET /api/payments/user/:email. Users may
// read their own history; admins anyone's.
func (h *PaymentHandler) ListPaymentsHandler(c *gin.Context) {
	email := c.Param("email")
	if !isAdmin(c) && email != requesterEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot read another user's payments"})
		return
	}

	payments, err := h.PaymentSvc.ListPayments(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}
