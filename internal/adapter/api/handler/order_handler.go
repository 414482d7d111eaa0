package handler

import (
	"github.com/labstack/echo/v4"

	"vendora/internal/domain/entity"
	"vendora/internal/usecase"
	"vendora/pkg/errors"
	"vendora/pkg/response"
	"vendora/pkg/utils"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type orderItemRequest struct {
	Product  string `json:"product" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type customerInfoRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Zip     string `json:"zip" validate:"required"`
	Country string `json:"country" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
}

type createOrderRequest struct {
	Items        []orderItemRequest  `json:"items" validate:"required,min=1,dive"`
	CustomerInfo customerInfoRequest `json:"customerInfo" validate:"required"`
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request payload", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	items := make([]usecase.OrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = usecase.OrderItemInput{
			ProductID: item.Product,
			Quantity:  item.Quantity,
		}
	}

	order, err := h.orderUseCase.PlaceOrder(c.Request().Context(), userID, usecase.PlaceOrderInput{
		Items: items,
		CustomerInfo: entity.CustomerInfo{
			Name:    req.CustomerInfo.Name,
			Address: req.CustomerInfo.Address,
			City:    req.CustomerInfo.City,
			Zip:     req.CustomerInfo.Zip,
			Country: req.CustomerInfo.Country,
			Phone:   req.CustomerInfo.Phone,
			Email:   req.CustomerInfo.Email,
		},
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed shipped delivered cancelled"`
}

func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	orderID := c.Param("id")
	if orderID == "" {
		return response.Error(c, errors.BadRequest("Order ID is required", nil))
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request payload", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	order, err := h.orderUseCase.UpdateStatus(c.Request().Context(), userID, orderID, req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID := c.Param("id")
	if orderID == "" {
		return response.Error(c, errors.BadRequest("Order ID is required", nil))
	}

	userID := c.Get("uid").(string)

	order, err := h.orderUseCase.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	userID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	orders, total, err := h.orderUseCase.ListMyOrders(c.Request().Context(), userID, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, pagination.Page, pagination.PageSize)
}

func (h *OrderHandler) ListSellerOrders(c echo.Context) error {
	userID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	orders, total, err := h.orderUseCase.ListSellerOrders(c.Request().Context(), userID, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, pagination.Page, pagination.PageSize)
}
