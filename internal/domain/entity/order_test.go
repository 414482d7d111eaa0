package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func multiSellerOrder() *Order {
	return &Order{
		ID:      "order1",
		BuyerID: "buyer1",
		Items: []OrderItem{
			{ProductID: "prodA", Quantity: 2, Price: 10, SellerID: "seller1"},
			{ProductID: "prodB", Quantity: 1, Price: 5, SellerID: "seller2"},
			{ProductID: "prodC", Quantity: 3, Price: 2, SellerID: "seller1"},
		},
	}
}

func TestOrderSellerIDs_DistinctInFirstAppearanceOrder(t *testing.T) {
	order := multiSellerOrder()

	assert.Equal(t, []string{"seller1", "seller2"}, order.SellerIDs())
}

func TestOrderItemsForSeller(t *testing.T) {
	order := multiSellerOrder()

	items := order.ItemsForSeller("seller1")
	assert.Len(t, items, 2)
	assert.Equal(t, "prodA", items[0].ProductID)
	assert.Equal(t, "prodC", items[1].ProductID)

	assert.Empty(t, order.ItemsForSeller("seller3"))
}
