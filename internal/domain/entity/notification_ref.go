package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationRefKind int

const (
	RefPrimary NotificationRefKind = iota
	RefMirror
)

// NotificationRef identifies a notification by either store's native id.
// Clients may address a notification with the primary ObjectID or the
// mirror's Firestore document id; a single resolver handles both.
type NotificationRef struct {
	Kind NotificationRefKind
	ID   string
}

// ParseNotificationRef classifies a raw identifier. A valid 24-hex ObjectID
// is assumed primary; anything else is treated as a mirror id. The resolver
// still falls back to a mirror lookup when a primary lookup misses.
func ParseNotificationRef(id string) NotificationRef {
	if primitive.IsValidObjectID(id) {
		return NotificationRef{Kind: RefPrimary, ID: id}
	}
	return NotificationRef{Kind: RefMirror, ID: id}
}
