package usecase

import (
	"context"
	"fmt"

	"vendora/internal/domain/entity"
	"vendora/internal/domain/repository"
	"vendora/pkg/logger"
)

type InventoryUseCase struct {
	inventoryRepo repository.InventoryRepository
	productRepo   repository.ProductRepository
	dispatcher    NotificationDispatcher
}

func NewInventoryUseCase(
	inventoryRepo repository.InventoryRepository,
	productRepo repository.ProductRepository,
	dispatcher NotificationDispatcher,
) *InventoryUseCase {
	return &InventoryUseCase{
		inventoryRepo: inventoryRepo,
		productRepo:   productRepo,
		dispatcher:    dispatcher,
	}
}

type UpsertInventoryInput struct {
	ProductID         string
	QuantityAvailable *int
	WarehouseLocation *string
	MinimumStockAlert *int
}

// Upsert creates or merges the ledger record (unset fields keep previous
// values), then syncs the product's denormalized stock cache. Dropping to
// or below the minimum stock alert notifies the seller.
func (uc *InventoryUseCase) Upsert(ctx context.Context, input UpsertInventoryInput) (*entity.Inventory, error) {
	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	inventory, err := uc.inventoryRepo.Upsert(ctx, repository.InventoryUpsert{
		ProductID:         input.ProductID,
		QuantityAvailable: input.QuantityAvailable,
		WarehouseLocation: input.WarehouseLocation,
		MinimumStockAlert: input.MinimumStockAlert,
	})
	if err != nil {
		return nil, err
	}

	// Best-effort cache sync; the ledger stays authoritative.
	if err := uc.productRepo.SetStock(ctx, product.ID, inventory.QuantityAvailable); err != nil {
		logger.Warn("Failed to sync stock for product %s: %v", product.ID, err)
	}

	if inventory.MinimumStockAlert > 0 && inventory.QuantityAvailable <= inventory.MinimumStockAlert {
		_, err := uc.dispatcher.Dispatch(ctx, DispatchInput{
			Title:         "Low Stock Alert",
			Message:       fmt.Sprintf("Stock for %q is down to %d units.", product.Name, inventory.QuantityAvailable),
			Type:          entity.NotificationTypeInventory,
			RecipientID:   product.SellerID,
			RecipientRole: "seller",
			ProductID:     product.ID,
		})
		if err != nil {
			logger.Error("Failed to dispatch low stock alert for product %s: %v", product.ID, err)
		}
	}

	return inventory, nil
}

func (uc *InventoryUseCase) GetByProduct(ctx context.Context, productID string) (*entity.Inventory, error) {
	return uc.inventoryRepo.GetByProductID(ctx, productID)
}
