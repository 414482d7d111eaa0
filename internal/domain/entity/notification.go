package entity

import (
	"time"
)

const (
	NotificationTypeOrders    = "orders"
	NotificationTypeProducts  = "products"
	NotificationTypeInventory = "inventory"
	NotificationTypeUsers     = "users"
	NotificationTypeSystem    = "system"
)

// Notification is the primary-store record. MirrorID holds the id of the
// Firestore copy once dispatch completes; the mirror carries this record's
// id back as mongoId. That cross-reference is the only link between the
// two stores.
type Notification struct {
	ID            string                 `json:"id" bson:"_id,omitempty"`
	Title         string                 `json:"title" bson:"title"`
	Message       string                 `json:"message" bson:"message"`
	Type          string                 `json:"type" bson:"type"`
	ProductID     string                 `json:"product_id,omitempty" bson:"product,omitempty"`
	SenderID      string                 `json:"sender_id,omitempty" bson:"sender,omitempty"`
	RecipientID   string                 `json:"recipient_id" bson:"recipientId"`
	RecipientRole string                 `json:"recipient_role,omitempty" bson:"recipientRole,omitempty"`
	Seen          bool                   `json:"seen" bson:"seen"`
	Meta          map[string]interface{} `json:"meta,omitempty" bson:"meta,omitempty"`
	CreatedAt     time.Time              `json:"created_at" bson:"createdAt"`
	MirrorID      string                 `json:"firestore_id,omitempty" bson:"firestoreId,omitempty"`
}
