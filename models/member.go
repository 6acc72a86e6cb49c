package models

import "time"

// Member records a promoted user. At most one record exists per email;
// its existence is equivalent to the role being member or higher.
type Member struct {
	ID       string    `bson:"id" json:"id"`
	Email    string    `bson:"email" json:"email"`
	Name     string    `bson:"name" json:"name"`
	Image    string    `bson:"image,omitempty" json:"image,omitempty"`
	JoinedAt time.Time `bson:"joinedAt" json:"joinedAt"`
}
