package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"vendora/internal/domain/entity"
	"vendora/internal/usecase"
	"vendora/pkg/errors"
	"vendora/pkg/response"
	"vendora/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type createProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Category    string   `json:"category" validate:"required"`
	SubCategory string   `json:"sub_category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request payload", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	product, err := h.productUseCase.Create(c.Request().Context(), userID, usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		SubCategory: req.SubCategory,
		Tags:        req.Tags,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) ApproveProduct(c echo.Context) error {
	return h.reviewProduct(c, h.productUseCase.Approve)
}

func (h *ProductHandler) RejectProduct(c echo.Context) error {
	return h.reviewProduct(c, h.productUseCase.Reject)
}

func (h *ProductHandler) reviewProduct(c echo.Context, review func(ctx context.Context, adminID, productID string) (*entity.Product, error)) error {
	productID := c.Param("id")
	if productID == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	userID := c.Get("uid").(string)

	product, err := review(c.Request().Context(), userID, productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	product, err := h.productUseCase.GetByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	status := c.QueryParam("status")
	pagination := utils.GetPaginationParams(c)

	products, total, err := h.productUseCase.List(c.Request().Context(), status, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}
