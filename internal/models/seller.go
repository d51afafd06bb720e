package models

import "time"

// Seller represents a registered seller account.
type Seller struct {
	ID        string    `json:"id" bson:"_id,omitempty" validate:"omitempty,uuid"`
	Username  string    `json:"username" bson:"username" validate:"required"`
	Password  string    `json:"-" bson:"password" validate:"required"` // Stored as a bcrypt hash, never serialized
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
