package models

import "time"

// Payment records a completed charge against a booking. At most one
// payment exists per booking id.
type Payment struct {
	ID              string    `bson:"id" json:"id"`
	Email           string    `bson:"email" json:"email"`
	BookingID       string    `bson:"bookingId" json:"bookingId"`
	TransactionID   string    `bson:"transactionId" json:"transactionId"`
	Amount          float64   `bson:"amount" json:"amount"`
	OriginalPrice   float64   `bson:"originalPrice" json:"originalPrice"`
	DiscountApplied float64   `bson:"discountApplied" json:"discountApplied"` // percent
	CourtName       string    `bson:"courtName,omitempty" json:"courtName,omitempty"`
	CourtType       string    `bson:"courtType,omitempty" json:"courtType,omitempty"`
	Date            string    `bson:"date,omitempty" json:"date,omitempty"`
	Slots           []string  `bson:"slots,omitempty" json:"slots,omitempty"`
	PaidAt          time.Time `bson:"paidAt" json:"paidAt"`
}

// PaymentInput is the client payload for recording a completed payment.
type PaymentInput struct {
	Email           string   `json:"email"`
	BookingID       string   `json:"bookingId" binding:"required"`
	TransactionID   string   `json:"transactionId" binding:"required"`
	Amount          float64  `json:"amount"`
	OriginalPrice   float64  `json:"originalPrice"`
	DiscountApplied float64  `json:"discountApplied"`
	CouponCode      string   `json:"couponCode"`
	CourtName       string   `json:"courtName"`
	CourtType       string   `json:"courtType"`
	Date            string   `json:"date"`
	Slots           []string `json:"slots"`
}
