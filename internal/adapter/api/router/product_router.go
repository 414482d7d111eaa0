package router

import (
	"github.com/labstack/echo/v4"

	"vendora/internal/adapter/api/handler"
	"vendora/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	productHandler := handler.GetProductHandler()

	products := e.Group("/v1/products")

	products.GET("", productHandler.ListProducts)
	products.GET("/:id", productHandler.GetProduct)

	products.POST("", productHandler.CreateProduct, authMiddleware.Authenticate)

	admin := e.Group("/v1/products")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("/:id/approve", productHandler.ApproveProduct)
	admin.POST("/:id/reject", productHandler.RejectProduct)
}
