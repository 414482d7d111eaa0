package repository

import (
	"context"
	"errors"

	"vendora/internal/domain/entity"
)

// ErrInsufficientStock reports a conditional decrement that matched no
// record with enough stock. Callers translate it into a client-facing
// error naming the product.
var ErrInsufficientStock = errors.New("insufficient stock")

type InventoryUpsert struct {
	ProductID         string
	QuantityAvailable *int
	WarehouseLocation *string
	MinimumStockAlert *int
}

type InventoryRepository interface {
	GetByProductID(ctx context.Context, productID string) (*entity.Inventory, error)
	// Reserve atomically decrements quantityAvailable when at least qty is
	// available. Returns INSUFFICIENT_STOCK when the conditional update
	// matches no record.
	Reserve(ctx context.Context, productID string, qty int) error
	// Release re-increments stock; compensation for a failed multi-line
	// reservation.
	Release(ctx context.Context, productID string, qty int) error
	Upsert(ctx context.Context, input InventoryUpsert) (*entity.Inventory, error)
}
