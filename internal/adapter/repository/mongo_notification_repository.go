package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vendora/internal/domain/entity"
	"vendora/internal/domain/repository"
	"vendora/pkg/errors"
)

type mongoNotificationRepository struct {
	collection *mongo.Collection
}

func NewMongoNotificationRepository(db *mongo.Database) repository.NotificationRepository {
	return &mongoNotificationRepository{
		collection: db.Collection("notifications"),
	}
}

func (r *mongoNotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	if notification.ID == "" {
		notification.ID = primitive.NewObjectID().Hex()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, notification)
	if err != nil {
		return errors.Internal("Failed to create notification", err)
	}

	return nil
}

func (r *mongoNotificationRepository) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoNotificationRepository) GetByMirrorID(ctx context.Context, mirrorID string) (*entity.Notification, error) {
	return r.findOne(ctx, bson.M{"firestoreId": mirrorID})
}

func (r *mongoNotificationRepository) findOne(ctx context.Context, filter bson.M) (*entity.Notification, error) {
	var notification entity.Notification
	err := r.collection.FindOne(ctx, filter).Decode(&notification)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Notification", err)
		}
		return nil, errors.Internal("Failed to get notification", err)
	}

	return &notification, nil
}

func (r *mongoNotificationRepository) SetMirrorID(ctx context.Context, id, mirrorID string) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"firestoreId": mirrorID}},
	)
	if err != nil {
		return errors.Internal("Failed to link notification mirror", err)
	}

	return nil
}

func (r *mongoNotificationRepository) ListByRecipient(ctx context.Context, recipientID string) ([]*entity.Notification, error) {
	return r.list(ctx, bson.M{"recipientId": recipientID})
}

func (r *mongoNotificationRepository) ListByRole(ctx context.Context, role string) ([]*entity.Notification, error) {
	return r.list(ctx, bson.M{"recipientRole": role})
}

func (r *mongoNotificationRepository) ListUnseenByRecipient(ctx context.Context, recipientID string) ([]*entity.Notification, error) {
	return r.list(ctx, bson.M{"recipientId": recipientID, "seen": false})
}

func (r *mongoNotificationRepository) list(ctx context.Context, filter bson.M) ([]*entity.Notification, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Internal("Failed to list notifications", err)
	}
	defer cursor.Close(ctx)

	var notifications []*entity.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, errors.Internal("Failed to decode notifications", err)
	}

	return notifications, nil
}

func (r *mongoNotificationRepository) MarkSeen(ctx context.Context, id string) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"seen": true}},
	)
	if err != nil {
		return errors.Internal("Failed to mark notification as read", err)
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Notification", nil)
	}

	return nil
}

func (r *mongoNotificationRepository) MarkAllSeen(ctx context.Context, recipientID string) error {
	_, err := r.collection.UpdateMany(ctx,
		bson.M{"recipientId": recipientID, "seen": false},
		bson.M{"$set": bson.M{"seen": true}},
	)
	if err != nil {
		return errors.Internal("Failed to mark notifications as read", err)
	}

	return nil
}

func (r *mongoNotificationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Internal("Failed to delete notification", err)
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("Notification", nil)
	}

	return nil
}
