package entity

import (
	"time"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

var ValidOrderStatuses = map[string]bool{
	OrderStatusPending:   true,
	OrderStatusConfirmed: true,
	OrderStatusShipped:   true,
	OrderStatusDelivered: true,
	OrderStatusCancelled: true,
}

// OrderItem snapshots price and seller at purchase time. Later product
// changes never affect a placed order.
type OrderItem struct {
	ProductID string  `json:"product_id" bson:"product"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	Price     float64 `json:"price" bson:"price"`
	SellerID  string  `json:"seller_id" bson:"seller"`
}

type CustomerInfo struct {
	Name    string `json:"name" bson:"name"`
	Address string `json:"address" bson:"address"`
	City    string `json:"city" bson:"city"`
	Zip     string `json:"zip" bson:"zip"`
	Country string `json:"country" bson:"country"`
	Phone   string `json:"phone" bson:"phone"`
	Email   string `json:"email" bson:"email"`
}

type Order struct {
	ID            string       `json:"id" bson:"_id,omitempty"`
	BuyerID       string       `json:"buyer_id" bson:"buyer"`
	CustomerInfo  CustomerInfo `json:"customer_info" bson:"customerInfo"`
	Items         []OrderItem  `json:"items" bson:"items"`
	TotalAmount   float64      `json:"total_amount" bson:"totalAmount"`
	Status        string       `json:"status" bson:"status"`
	PaymentStatus string       `json:"payment_status" bson:"paymentStatus"` // pending, paid, failed
	CreatedAt     time.Time    `json:"created_at" bson:"createdAt"`
}

// SellerIDs returns the distinct sellers across line items, in first-seen order.
func (o *Order) SellerIDs() []string {
	seen := make(map[string]bool)
	var sellers []string
	for _, item := range o.Items {
		if item.SellerID != "" && !seen[item.SellerID] {
			seen[item.SellerID] = true
			sellers = append(sellers, item.SellerID)
		}
	}
	return sellers
}

// ItemsForSeller filters line items down to one seller's products.
func (o *Order) ItemsForSeller(sellerID string) []OrderItem {
	var items []OrderItem
	for _, item := range o.Items {
		if item.SellerID == sellerID {
			items = append(items, item)
		}
	}
	return items
}
