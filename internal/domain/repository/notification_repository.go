package repository

import (
	"context"

	"vendora/internal/domain/entity"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	GetByID(ctx context.Context, id string) (*entity.Notification, error)
	GetByMirrorID(ctx context.Context, mirrorID string) (*entity.Notification, error)
	SetMirrorID(ctx context.Context, id, mirrorID string) error
	ListByRecipient(ctx context.Context, recipientID string) ([]*entity.Notification, error)
	ListByRole(ctx context.Context, role string) ([]*entity.Notification, error)
	ListUnseenByRecipient(ctx context.Context, recipientID string) ([]*entity.Notification, error)
	MarkSeen(ctx context.Context, id string) error
	MarkAllSeen(ctx context.Context, recipientID string) error
	Delete(ctx context.Context, id string) error
}

// NotificationMirrorRepository is the secondary live-update store. It is a
// best-effort projection of the primary records; the primary store stays
// the source of truth.
type NotificationMirrorRepository interface {
	// Add writes the mirror document and returns its store-assigned id.
	Add(ctx context.Context, notification *entity.Notification) (string, error)
	MarkSeen(ctx context.Context, mirrorID string) error
	// MarkAllSeen applies seen=true to every given mirror id in one batch.
	MarkAllSeen(ctx context.Context, mirrorIDs []string) error
	Delete(ctx context.Context, mirrorID string) error
}
