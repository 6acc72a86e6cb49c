package payment

import (
	bookingRepo "courtside/database/repository/booking"
	couponRepo "courtside/database/repository/coupon"
	paymentRepo "courtside/database/repository/payment"
	"courtside/models"
)

// CouponResult is the outcome of applying a coupon to a price.
type CouponResult struct {
	DiscountPercent float64 `json:"discountPercent"`
	OriginalPrice   float64 `json:"originalPrice"`
	FinalPrice      float64 `json:"finalPrice"`
}

// PaymentService handles the payment handoff: coupon application,
// payment-intent creation against Stripe, and recording a completed
// payment with the one-payment-per-booking guarantee.
type PaymentService interface {
	// ApplyCoupon returns the discounted price for a valid, unexpired
	// coupon. An unknown or expired code returns the price unchanged
	// together with an InvalidCouponError. The final price is never
	// higher than the original.
	ApplyCoupon(code string, originalPrice float64) (*CouponResult, error)

	// CreatePaymentIntent asks Stripe for a payment intent over the
	// given amount and returns its client secret.
	CreatePaymentIntent(amount float64) (string, error)

	// RecordPayment binds a completed charge to a booking, flipping the
	// booking's paid flag. Exactly one of two racing calls for the same
	// booking succeeds; the other fails with a ConflictError.
	RecordPayment(input models.PaymentInput) (*models.Payment, error)

	ListPayments(email string) ([]models.Payment, error)
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Payments paymentRepo.PaymentRepository
	Bookings bookingRepo.BookingRepository
	Coupons  couponRepo.CouponRepository
}
