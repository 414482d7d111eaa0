package repository

import (
	"context"

	"vendora/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Product, int64, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateStatus(ctx context.Context, id, status string) error
	// SetStock refreshes the denormalized stock cache from the ledger.
	SetStock(ctx context.Context, id string, stock int) error
}
