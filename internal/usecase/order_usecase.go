package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vendora/internal/domain/entity"
	"vendora/internal/domain/repository"
	"vendora/pkg/errors"
	"vendora/pkg/logger"
	"vendora/pkg/utils"
)

type OrderUseCase struct {
	orderRepo     repository.OrderRepository
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
	userRepo      repository.UserRepository
	dispatcher    NotificationDispatcher
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	userRepo repository.UserRepository,
	dispatcher NotificationDispatcher,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		userRepo:      userRepo,
		dispatcher:    dispatcher,
	}
}

type OrderItemInput struct {
	ProductID string
	Quantity  int
}

type PlaceOrderInput struct {
	Items        []OrderItemInput
	CustomerInfo entity.CustomerInfo
}

type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type OrderItemView struct {
	ProductID   string      `json:"product_id"`
	ProductName string      `json:"product_name"`
	Quantity    int         `json:"quantity"`
	Price       float64     `json:"price"`
	Seller      UserSummary `json:"seller"`
}

type OrderView struct {
	ID            string              `json:"id"`
	Buyer         UserSummary         `json:"buyer"`
	CustomerInfo  entity.CustomerInfo `json:"customer_info"`
	Items         []OrderItemView     `json:"items"`
	TotalAmount   float64             `json:"total_amount"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"payment_status"`
	CreatedAt     string              `json:"created_at"`
}

// assembly is the validated, priced shape of a cart before anything is
// written: immutable line items plus the catalog records they came from.
type assembly struct {
	items    []entity.OrderItem
	total    float64
	products map[string]*entity.Product
}

// assemble validates the cart read-only, in input order. Product prices and
// sellers are snapshotted here; a failure leaves no state behind because
// nothing has been written yet.
func (uc *OrderUseCase) assemble(ctx context.Context, input PlaceOrderInput) (*assembly, error) {
	if len(input.Items) == 0 {
		return nil, errors.BadRequest("Order must contain at least one item", nil)
	}

	asm := &assembly{products: make(map[string]*entity.Product)}

	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, errors.BadRequest("Item quantity must be positive", nil)
		}

		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, "NOT_FOUND") {
				return nil, errors.NotFound(fmt.Sprintf("Product %s", item.ProductID), nil)
			}
			return nil, err
		}

		inventory, err := uc.inventoryRepo.GetByProductID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, "NOT_FOUND") {
				return nil, errors.InsufficientStock(product.Name)
			}
			return nil, err
		}
		if inventory.QuantityAvailable < item.Quantity {
			return nil, errors.InsufficientStock(product.Name)
		}

		asm.total += product.Price * float64(item.Quantity)
		asm.items = append(asm.items, entity.OrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			Price:     product.Price,
			SellerID:  product.SellerID,
		})
		asm.products[product.ID] = product
	}

	return asm, nil
}

// PlaceOrder runs assembly, reserves inventory per line, persists the
// order, and fans out notifications to every seller of record plus each
// admin. A reservation failure after earlier lines succeeded releases
// those reservations before returning.
func (uc *OrderUseCase) PlaceOrder(ctx context.Context, buyerID string, input PlaceOrderInput) (*OrderView, error) {
	asm, err := uc.assemble(ctx, input)
	if err != nil {
		return nil, err
	}

	for i, item := range asm.items {
		if err := uc.inventoryRepo.Reserve(ctx, item.ProductID, item.Quantity); err != nil {
			uc.releaseReserved(ctx, asm.items[:i])
			if err == repository.ErrInsufficientStock {
				return nil, errors.InsufficientStock(asm.products[item.ProductID].Name)
			}
			return nil, err
		}
	}

	order := &entity.Order{
		BuyerID:       buyerID,
		CustomerInfo:  input.CustomerInfo,
		Items:         asm.items,
		TotalAmount:   asm.total,
		Status:        entity.OrderStatusConfirmed,
		PaymentStatus: "paid",
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		uc.releaseReserved(ctx, asm.items)
		return nil, err
	}

	uc.notifySellers(ctx, order, asm)
	uc.notifyAdmins(ctx, order, asm)

	return uc.buildOrderView(ctx, order), nil
}

func (uc *OrderUseCase) releaseReserved(ctx context.Context, items []entity.OrderItem) {
	for _, item := range items {
		if err := uc.inventoryRepo.Release(ctx, item.ProductID, item.Quantity); err != nil {
			logger.Error("Failed to release reservation for product %s: %v", item.ProductID, err)
		}
	}
}

// notifySellers sends one notification per distinct seller, naming only
// that seller's products. Failures are logged per recipient and never
// abort the rest of the fan-out.
func (uc *OrderUseCase) notifySellers(ctx context.Context, order *entity.Order, asm *assembly) {
	for _, sellerID := range order.SellerIDs() {
		items := order.ItemsForSeller(sellerID)

		var names []string
		var productIDs []interface{}
		for _, item := range items {
			names = append(names, fmt.Sprintf("%q", asm.products[item.ProductID].Name))
			productIDs = append(productIDs, item.ProductID)
		}

		_, err := uc.dispatcher.Dispatch(ctx, DispatchInput{
			Title:         "New Order Placed",
			Message:       fmt.Sprintf("Your product %s has been purchased!", strings.Join(names, ", ")),
			Type:          entity.NotificationTypeOrders,
			SenderID:      order.BuyerID,
			RecipientID:   sellerID,
			RecipientRole: "seller",
			ProductID:     items[0].ProductID,
			Meta: map[string]interface{}{
				"orderId":    order.ID,
				"productIds": productIDs,
			},
		})
		if err != nil {
			logger.Error("Failed to notify seller %s for order %s: %v", sellerID, order.ID, err)
		}
	}
}

// notifyAdmins sends one consolidated summary to every admin account. Zero
// admins is not an error.
func (uc *OrderUseCase) notifyAdmins(ctx context.Context, order *entity.Order, asm *assembly) {
	admins, err := uc.userRepo.ListByRole(ctx, "admin")
	if err != nil {
		logger.Error("Failed to resolve admin recipients for order %s: %v", order.ID, err)
		return
	}
	if len(admins) == 0 {
		return
	}

	buyer := uc.userSummary(ctx, order.BuyerID)

	var sellers []interface{}
	for _, sellerID := range order.SellerIDs() {
		s := uc.userSummary(ctx, sellerID)
		sellers = append(sellers, map[string]interface{}{
			"sellerId": s.ID,
			"name":     s.Name,
			"email":    s.Email,
		})
	}

	var productIDs []interface{}
	for _, item := range order.Items {
		productIDs = append(productIDs, item.ProductID)
	}

	for _, admin := range admins {
		_, err := uc.dispatcher.Dispatch(ctx, DispatchInput{
			Title:         "New Order Placed",
			Message:       fmt.Sprintf("Order #%s placed by %s", order.ID, buyer.Name),
			Type:          entity.NotificationTypeOrders,
			SenderID:      order.BuyerID,
			RecipientID:   admin.ID,
			RecipientRole: "admin",
			Meta: map[string]interface{}{
				"orderId": order.ID,
				"buyer": map[string]interface{}{
					"id":    buyer.ID,
					"name":  buyer.Name,
					"email": buyer.Email,
				},
				"sellers":    sellers,
				"productIds": productIDs,
			},
		})
		if err != nil {
			logger.Error("Failed to notify admin %s for order %s: %v", admin.ID, order.ID, err)
		}
	}
}

// UpdateStatus transitions the order-level status. Only a seller owning at
// least one line item may transition it, and the buyer is notified of
// every change.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, sellerID, orderID, status string) (*OrderView, error) {
	if !entity.ValidOrderStatuses[status] {
		return nil, errors.BadRequest("Invalid order status", nil)
	}

	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	isSeller := false
	for _, item := range order.Items {
		if item.SellerID == sellerID {
			isSeller = true
			break
		}
	}
	if !isSeller {
		return nil, errors.Forbidden("You are not authorized to update this order", nil)
	}

	if err := uc.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	order.Status = status

	_, err = uc.dispatcher.Dispatch(ctx, DispatchInput{
		Title:         "Order Status Updated",
		Message:       fmt.Sprintf("Your order #%s has been updated to %q.", order.ID, status),
		Type:          entity.NotificationTypeOrders,
		SenderID:      sellerID,
		RecipientID:   order.BuyerID,
		RecipientRole: "buyer",
		Meta: map[string]interface{}{
			"orderId":   order.ID,
			"newStatus": status,
		},
	})
	if err != nil {
		logger.Error("Failed to notify buyer %s for order %s: %v", order.BuyerID, order.ID, err)
	}

	return uc.buildOrderView(ctx, order), nil
}

// GetOrder returns one order; visible to its buyer, any seller of record,
// or an admin.
func (uc *OrderUseCase) GetOrder(ctx context.Context, userID, orderID string) (*OrderView, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.BuyerID != userID && !uc.isSellerOf(order, userID) {
		user, err := uc.userRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if user.Role != "admin" {
			return nil, errors.Forbidden("You don't have permission to view this order", nil)
		}
	}

	return uc.buildOrderView(ctx, order), nil
}

func (uc *OrderUseCase) ListMyOrders(ctx context.Context, buyerID string, page, limit int) ([]*OrderView, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)

	orders, total, err := uc.orderRepo.ListByBuyer(ctx, buyerID, pagination.PageSize, pagination.Offset)
	if err != nil {
		return nil, 0, err
	}

	views := make([]*OrderView, len(orders))
	for i, order := range orders {
		views[i] = uc.buildOrderView(ctx, order)
	}

	return views, total, nil
}

type SellerOrderView struct {
	ID                string              `json:"id"`
	Buyer             UserSummary         `json:"buyer"`
	CustomerInfo      entity.CustomerInfo `json:"customer_info"`
	Items             []OrderItemView     `json:"items"`
	SellerTotalAmount float64             `json:"seller_total_amount"`
	Status            string              `json:"status"`
	PaymentStatus     string              `json:"payment_status"`
	CreatedAt         string              `json:"created_at"`
}

// ListSellerOrders returns orders containing the seller's products, with
// line items filtered down to that seller and a per-seller subtotal.
func (uc *OrderUseCase) ListSellerOrders(ctx context.Context, sellerID string, page, limit int) ([]*SellerOrderView, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)

	orders, total, err := uc.orderRepo.ListBySeller(ctx, sellerID, pagination.PageSize, pagination.Offset)
	if err != nil {
		return nil, 0, err
	}

	views := make([]*SellerOrderView, len(orders))
	for i, order := range orders {
		views[i] = uc.buildSellerOrderView(ctx, order, sellerID)
	}

	return views, total, nil
}

func (uc *OrderUseCase) isSellerOf(order *entity.Order, userID string) bool {
	for _, item := range order.Items {
		if item.SellerID == userID {
			return true
		}
	}
	return false
}

// userSummary resolves display fields best-effort; a lookup failure yields
// a summary with the id only.
func (uc *OrderUseCase) userSummary(ctx context.Context, userID string) UserSummary {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Warn("Failed to resolve user %s: %v", userID, err)
		return UserSummary{ID: userID}
	}
	return UserSummary{ID: user.ID, Name: user.Name, Email: user.Email}
}

func (uc *OrderUseCase) itemView(ctx context.Context, item entity.OrderItem) OrderItemView {
	view := OrderItemView{
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Price:     item.Price,
		Seller:    uc.userSummary(ctx, item.SellerID),
	}
	if product, err := uc.productRepo.GetByID(ctx, item.ProductID); err == nil {
		view.ProductName = product.Name
	}
	return view
}

func (uc *OrderUseCase) buildOrderView(ctx context.Context, order *entity.Order) *OrderView {
	items := make([]OrderItemView, len(order.Items))
	for i, item := range order.Items {
		items[i] = uc.itemView(ctx, item)
	}

	return &OrderView{
		ID:            order.ID,
		Buyer:         uc.userSummary(ctx, order.BuyerID),
		CustomerInfo:  order.CustomerInfo,
		Items:         items,
		TotalAmount:   order.TotalAmount,
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
		CreatedAt:     order.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (uc *OrderUseCase) buildSellerOrderView(ctx context.Context, order *entity.Order, sellerID string) *SellerOrderView {
	sellerItems := order.ItemsForSeller(sellerID)

	items := make([]OrderItemView, len(sellerItems))
	var subtotal float64
	for i, item := range sellerItems {
		items[i] = uc.itemView(ctx, item)
		subtotal += item.Price * float64(item.Quantity)
	}

	return &SellerOrderView{
		ID:                order.ID,
		Buyer:             uc.userSummary(ctx, order.BuyerID),
		CustomerInfo:      order.CustomerInfo,
		Items:             items,
		SellerTotalAmount: subtotal,
		Status:            order.Status,
		PaymentStatus:     order.PaymentStatus,
		CreatedAt:         order.CreatedAt.UTC().Format(time.RFC3339),
	}
}
