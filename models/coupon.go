package models

import "time"

// Coupon is a percentage discount code with an expiry. A coupon applies
// only while the current time is before ExpiresAt and never compounds
// with another coupon.
type Coupon struct {
	ID              string    `bson:"id" json:"id"`
	Code            string    `bson:"code" json:"code"`
	DiscountPercent float64   `bson:"discountPercent" json:"discountPercent"` // in (0,100]
	ExpiresAt       time.Time `bson:"expiresAt" json:"expiresAt"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

// CouponInput is the admin payload for creating or updating a coupon.
type CouponInput struct {
	Code            string    `json:"code" binding:"required"`
	DiscountPercent float64   `json:"discountPercent" binding:"required"`
	ExpiresAt       time.Time `json:"expiresAt" binding:"required"`
}
