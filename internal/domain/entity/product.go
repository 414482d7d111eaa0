package entity

import (
	"time"
)

type Product struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	Category    string    `json:"category" bson:"category"`
	SubCategory string    `json:"sub_category,omitempty" bson:"subCategory,omitempty"`
	SellerID    string    `json:"seller_id" bson:"seller"`
	Status      string    `json:"status" bson:"status"` // pending, approved, rejected

	// Stock is a denormalized read cache synced from the inventory ledger.
	// The ledger record is authoritative.
	Stock int `json:"stock" bson:"stock"`

	Tags      []string  `json:"tags,omitempty" bson:"tags,omitempty"`
	Sale      bool      `json:"sale" bson:"sale"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" bson:"updatedAt"`
}
