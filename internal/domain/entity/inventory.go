package entity

import (
	"time"
)

// Inventory is the authoritative per-product stock record. QuantityAvailable
// never goes below zero; reservations are conditional decrements at the
// store level, not read-then-write.
type Inventory struct {
	ID                string    `json:"id" bson:"_id,omitempty"`
	ProductID         string    `json:"product_id" bson:"productId"`
	QuantityAvailable int       `json:"quantity_available" bson:"quantityAvailable"`
	WarehouseLocation string    `json:"warehouse_location,omitempty" bson:"warehouseLocation,omitempty"`
	MinimumStockAlert int       `json:"minimum_stock_alert,omitempty" bson:"minimumStockAlert,omitempty"`
	LastRestockedDate time.Time `json:"last_restocked_date" bson:"lastRestockedDate"`
}
