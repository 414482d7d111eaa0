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

type mongoOrderRepository struct {
	collection *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &mongoOrderRepository{
		collection: db.Collection("orders"),
	}
}

func (r *mongoOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = primitive.NewObjectID().Hex()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return errors.Internal("Failed to create order", err)
	}

	return nil
}

func (r *mongoOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	var order entity.Order
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Order", err)
		}
		return nil, errors.Internal("Failed to get order", err)
	}

	return &order, nil
}

func (r *mongoOrderRepository) ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Order, int64, error) {
	return r.list(ctx, bson.M{"buyer": buyerID}, limit, offset)
}

func (r *mongoOrderRepository) ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Order, int64, error) {
	return r.list(ctx, bson.M{"items.seller": sellerID}, limit, offset)
}

func (r *mongoOrderRepository) list(ctx context.Context, filter bson.M, limit, offset int) ([]*entity.Order, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, errors.Internal("Failed to count orders", err)
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	if offset > 0 {
		opts.SetSkip(int64(offset))
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list orders", err)
	}
	defer cursor.Close(ctx)

	var orders []*entity.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, 0, errors.Internal("Failed to decode orders", err)
	}

	return orders, total, nil
}

func (r *mongoOrderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return errors.Internal("Failed to update order status", err)
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Order", nil)
	}

	return nil
}
