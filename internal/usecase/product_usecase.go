package usecase

import (
	"context"
	"fmt"

	"vendora/internal/domain/entity"
	"vendora/internal/domain/repository"
	"vendora/pkg/errors"
	"vendora/pkg/logger"
	"vendora/pkg/utils"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	dispatcher  NotificationDispatcher
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	dispatcher NotificationDispatcher,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		userRepo:    userRepo,
		dispatcher:  dispatcher,
	}
}

type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	SubCategory string
	Tags        []string
}

// Create lists a product as pending and notifies every admin that it
// awaits approval.
func (uc *ProductUseCase) Create(ctx context.Context, sellerID string, input CreateProductInput) (*entity.Product, error) {
	seller, err := uc.userRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		SubCategory: input.SubCategory,
		Tags:        input.Tags,
		SellerID:    sellerID,
		Status:      "pending",
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	admins, err := uc.userRepo.ListByRole(ctx, "admin")
	if err != nil {
		logger.Error("Failed to resolve admins for product %s: %v", product.ID, err)
		return product, nil
	}

	for _, admin := range admins {
		_, err := uc.dispatcher.Dispatch(ctx, DispatchInput{
			Title:         "New product pending approval",
			Message:       fmt.Sprintf("%s created %q.", seller.Name, product.Name),
			Type:          entity.NotificationTypeProducts,
			ProductID:     product.ID,
			SenderID:      sellerID,
			RecipientID:   admin.ID,
			RecipientRole: "admin",
		})
		if err != nil {
			logger.Error("Failed to notify admin %s for product %s: %v", admin.ID, product.ID, err)
		}
	}

	return product, nil
}

// Approve marks a pending product approved and notifies its seller.
func (uc *ProductUseCase) Approve(ctx context.Context, adminID, productID string) (*entity.Product, error) {
	return uc.review(ctx, adminID, productID, "approved", "Product Approved",
		"Your product %q has been approved.")
}

// Reject marks a pending product rejected and notifies its seller.
func (uc *ProductUseCase) Reject(ctx context.Context, adminID, productID string) (*entity.Product, error) {
	return uc.review(ctx, adminID, productID, "rejected", "Product Rejected",
		"Your product %q has been rejected.")
}

func (uc *ProductUseCase) review(ctx context.Context, adminID, productID, status, title, messageFormat string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if product.Status != "pending" {
		return nil, errors.BadRequest("Product has already been reviewed", nil)
	}

	if err := uc.productRepo.UpdateStatus(ctx, productID, status); err != nil {
		return nil, err
	}
	product.Status = status

	_, err = uc.dispatcher.Dispatch(ctx, DispatchInput{
		Title:         title,
		Message:       fmt.Sprintf(messageFormat, product.Name),
		Type:          entity.NotificationTypeProducts,
		ProductID:     product.ID,
		SenderID:      adminID,
		RecipientID:   product.SellerID,
		RecipientRole: "seller",
	})
	if err != nil {
		logger.Error("Failed to notify seller %s for product %s: %v", product.SellerID, product.ID, err)
	}

	return product, nil
}

func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *ProductUseCase) List(ctx context.Context, status string, page, limit int) ([]*entity.Product, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)

	filter := map[string]interface{}{}
	if status != "" {
		filter["status"] = status
	}

	return uc.productRepo.List(ctx, filter, pagination.PageSize, pagination.Offset)
}
