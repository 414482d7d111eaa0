package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"vendora/internal/domain/entity"
	"vendora/internal/domain/repository"
	"vendora/pkg/errors"
)

// mirrorDocument is the secondary-store shape of a notification. It carries
// the primary record's id as mongoId; createdAt is assigned by the server.
type mirrorDocument struct {
	RecipientID   string                 `firestore:"recipientId"`
	Title         string                 `firestore:"title"`
	Message       string                 `firestore:"message"`
	Type          string                 `firestore:"type"`
	ProductID     string                 `firestore:"productId,omitempty"`
	SenderID      string                 `firestore:"senderId,omitempty"`
	RecipientRole string                 `firestore:"recipientRole,omitempty"`
	Seen          bool                   `firestore:"seen"`
	Meta          map[string]interface{} `firestore:"meta,omitempty"`
	CreatedAt     time.Time              `firestore:"createdAt,serverTimestamp"`
	MongoID       string                 `firestore:"mongoId"`
}

type firestoreNotificationMirror struct {
	client *firestore.Client
}

func NewFirestoreNotificationMirror(client *firestore.Client) repository.NotificationMirrorRepository {
	return &firestoreNotificationMirror{
		client: client,
	}
}

func (r *firestoreNotificationMirror) Add(ctx context.Context, notification *entity.Notification) (string, error) {
	doc := mirrorDocument{
		RecipientID:   notification.RecipientID,
		Title:         notification.Title,
		Message:       notification.Message,
		Type:          notification.Type,
		ProductID:     notification.ProductID,
		SenderID:      notification.SenderID,
		RecipientRole: notification.RecipientRole,
		Seen:          notification.Seen,
		Meta:          notification.Meta,
		MongoID:       notification.ID,
	}

	ref, _, err := r.client.Collection("notifications").Add(ctx, doc)
	if err != nil {
		return "", errors.Internal("Failed to mirror notification", err)
	}

	return ref.ID, nil
}

func (r *firestoreNotificationMirror) MarkSeen(ctx context.Context, mirrorID string) error {
	_, err := r.client.Collection("notifications").Doc(mirrorID).Update(ctx, []firestore.Update{
		{Path: "seen", Value: true},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Notification mirror", err)
		}
		return errors.Internal("Failed to update notification mirror", err)
	}

	return nil
}

func (r *firestoreNotificationMirror) MarkAllSeen(ctx context.Context, mirrorIDs []string) error {
	if len(mirrorIDs) == 0 {
		return nil
	}

	batch := r.client.Batch()
	for _, id := range mirrorIDs {
		ref := r.client.Collection("notifications").Doc(id)
		batch.Update(ref, []firestore.Update{{Path: "seen", Value: true}})
	}

	if _, err := batch.Commit(ctx); err != nil {
		return errors.Internal("Failed to batch update notification mirrors", err)
	}

	return nil
}

func (r *firestoreNotificationMirror) Delete(ctx context.Context, mirrorID string) error {
	_, err := r.client.Collection("notifications").Doc(mirrorID).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete notification mirror", err)
	}

	return nil
}
