package payment

import (
	"fmt"
	"time"

	"courtside/services/booking"
)

// ApplyCoupon validates the code against the coupon store and computes
// the discounted price. Invalid or expired codes leave the price
// unchanged. Discounts never compound; the result is always computed
// from the original price.
func (svc *DefaultPaymentService) ApplyCoupon(code string, originalPrice float64) (*CouponResult, error) {
	unchanged := &CouponResult{
		DiscountPercent: 0,
		OriginalPrice:   originalPrice,
		FinalPrice:      booking.RoundCurrency(originalPrice),
	}

	if code == "" {
		return unchanged, &InvalidCouponError{Code: code}
	}

	coupon, err := svc.Coupons.GetByCode(code)
	if err != nil {
		return unchanged, fmt.Errorf("failed to look up coupon: %w", err)
	}
	if coupon == nil || !time.Now().Before(coupon.ExpiresAt) {
		return unchanged, &InvalidCouponError{Code: code}
	}

	return &CouponResult{
		DiscountPercent: coupon.DiscountPercent,
		OriginalPrice:   originalPrice,
		FinalPrice:      booking.ApplyDiscount(originalPrice, coupon.DiscountPercent),
	}, nil
}
