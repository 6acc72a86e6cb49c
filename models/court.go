package models

import "time"

// Court status values. Only an available court is bookable.
const (
	CourtStatusAvailable   = "available"
	CourtStatusMaintenance = "maintenance"
	CourtStatusClosed      = "closed"
)

// Court represents a bookable court with its slot inventory and pricing.
type Court struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Category        string    `bson:"category" json:"category"`
	Type            string    `bson:"type" json:"type"`
	Indoor          bool      `bson:"indoor" json:"indoor"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	MaxPlayers      int       `bson:"maxPlayers" json:"maxPlayers"`
	Status          string    `bson:"status" json:"status"`
	SessionDuration int       `bson:"sessionDuration" json:"sessionDuration"` // minutes
	PricePerSession float64   `bson:"pricePerSession" json:"pricePerSession"`
	Slots           []string  `bson:"slots" json:"slots"` // ordered, unique slot labels
	ImageURL        string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CourtInput is the admin payload for creating or updating a court.
type CourtInput struct {
	Name            string   `json:"name" binding:"required"`
	Category        string   `json:"category"`
	Type            string   `json:"type" binding:"required"`
	Indoor          bool     `json:"indoor"`
	Description     string   `json:"description"`
	MaxPlayers      int      `json:"maxPlayers"`
	Status          string   `json:"status"`
	SessionDuration int      `json:"sessionDuration"`
	PricePerSession float64  `json:"pricePerSession"`
	Slots           []string `json:"slots" binding:"required"`
	ImageURL        string   `json:"imageUrl"`
}
