package router

import (
	"github.com/labstack/echo/v4"

	"vendora/internal/adapter/api/handler"
	"vendora/internal/adapter/api/middleware"
)

func SetupInventoryRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	inventoryHandler := handler.GetInventoryHandler()

	inventory := e.Group("/v1/inventory")
	inventory.Use(authMiddleware.Authenticate)
	inventory.Use(adminMiddleware.AdminOnly)

	inventory.POST("", inventoryHandler.UpsertInventory)
	inventory.GET("/:productId", inventoryHandler.GetInventoryByProduct)
}
