package repository

import (
	"context"

	"vendora/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Order, int64, error)
	ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Order, int64, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
