package handler

import (
	"github.com/labstack/echo/v4"

	"vendora/internal/usecase"
	"vendora/pkg/errors"
	"vendora/pkg/response"
)

type InventoryHandler struct {
	inventoryUseCase *usecase.InventoryUseCase
}

func NewInventoryHandler(inventoryUseCase *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{
		inventoryUseCase: inventoryUseCase,
	}
}

type upsertInventoryRequest struct {
	ProductID         string  `json:"productId" validate:"required"`
	QuantityAvailable *int    `json:"quantityAvailable,omitempty" validate:"omitempty,min=0"`
	WarehouseLocation *string `json:"warehouseLocation,omitempty"`
	MinimumStockAlert *int    `json:"minimumStockAlert,omitempty" validate:"omitempty,min=0"`
}

func (h *InventoryHandler) UpsertInventory(c echo.Context) error {
	var req upsertInventoryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request payload", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	inventory, err := h.inventoryUseCase.Upsert(c.Request().Context(), usecase.UpsertInventoryInput{
		ProductID:         req.ProductID,
		QuantityAvailable: req.QuantityAvailable,
		WarehouseLocation: req.WarehouseLocation,
		MinimumStockAlert: req.MinimumStockAlert,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, inventory)
}

func (h *InventoryHandler) GetInventoryByProduct(c echo.Context) error {
	productID := c.Param("productId")
	if productID == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	inventory, err := h.inventoryUseCase.GetByProduct(c.Request().Context(), productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, inventory)
}
