package handler

import (
	"vendora/internal/usecase"
)

var (
	orderHandler        *OrderHandler
	inventoryHandler    *InventoryHandler
	notificationHandler *NotificationHandler
	productHandler      *ProductHandler
)

func Setup(
	orderUseCase *usecase.OrderUseCase,
	inventoryUseCase *usecase.InventoryUseCase,
	notificationUseCase *usecase.NotificationUseCase,
	productUseCase *usecase.ProductUseCase,
) {
	orderHandler = NewOrderHandler(orderUseCase)
	inventoryHandler = NewInventoryHandler(inventoryUseCase)
	notificationHandler = NewNotificationHandler(notificationUseCase)
	productHandler = NewProductHandler(productUseCase)
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetInventoryHandler() *InventoryHandler {
	return inventoryHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}
