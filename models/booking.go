package models

import "time"

// Booking status values. A booking only moves forward: pending is either
// approved or rejected (rejection deletes the record), an approved booking
// is paid or cancelled (cancellation deletes the record). "confirmed" is
// queried as status == confirmed OR isPaid == true.
const (
	BookingStatusPending   = "pending"
	BookingStatusApproved  = "approved"
	BookingStatusConfirmed = "confirmed"
)

// Booking represents a court booking request and its lifecycle state.
type Booking struct {
	ID        string    `bson:"id" json:"id"`
	UserEmail string    `bson:"userEmail" json:"userEmail"`
	UserName  string    `bson:"userName" json:"userName"`
	UserImage string    `bson:"userImage,omitempty" json:"userImage,omitempty"`
	CourtID   string    `bson:"courtId" json:"courtId"`
	CourtName string    `bson:"courtName" json:"courtName"`
	CourtType string    `bson:"courtType" json:"courtType"`
	Date      string    `bson:"date" json:"date"` // "YYYY-MM-DD", no time zone conversion
	Slots     []string  `bson:"slots" json:"slots"`
	Price     float64   `bson:"price" json:"price"` // always recomputed server-side
	Status    string    `bson:"status" json:"status"`
	IsPaid    bool      `bson:"isPaid" json:"isPaid"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingInput is the client payload for creating a booking. The price the
// client derived is ignored; the server recomputes it from the court.
type BookingInput struct {
	UserEmail string   `json:"userEmail"`
	UserName  string   `json:"userName"`
	UserImage string   `json:"userImage"`
	CourtID   string   `json:"courtId" binding:"required"`
	Date      string   `json:"date" binding:"required"`
	Slots     []string `json:"slots" binding:"required"`
}
