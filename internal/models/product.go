package models

import "time"

// Product represents a catalog product.
// Products carry no ownership link: any authenticated seller may
// modify or remove any product.
type Product struct {
	ID          string    `json:"id" bson:"_id,omitempty" validate:"omitempty,uuid"`
	Name        string    `json:"name" bson:"name" validate:"required"`
	Description string    `json:"description" bson:"description" validate:"required"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
