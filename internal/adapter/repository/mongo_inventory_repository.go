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

type mongoInventoryRepository struct {
	collection *mongo.Collection
}

func NewMongoInventoryRepository(db *mongo.Database) repository.InventoryRepository {
	return &mongoInventoryRepository{
		collection: db.Collection("inventory"),
	}
}

func (r *mongoInventoryRepository) GetByProductID(ctx context.Context, productID string) (*entity.Inventory, error) {
	var inventory entity.Inventory
	err := r.collection.FindOne(ctx, bson.M{"productId": productID}).Decode(&inventory)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Inventory", err)
		}
		return nil, errors.Internal("Failed to get inventory", err)
	}

	return &inventory, nil
}

// Reserve decrements stock with a single conditional update. Two concurrent
// reservations for the last unit resolve so that exactly one matches; the
// other sees no matching document and reports insufficient stock.
func (r *mongoInventoryRepository) Reserve(ctx context.Context, productID string, qty int) error {
	filter := bson.M{
		"productId":         productID,
		"quantityAvailable": bson.M{"$gte": qty},
	}
	update := bson.M{
		"$inc": bson.M{"quantityAvailable": -qty},
	}

	err := r.collection.FindOneAndUpdate(ctx, filter, update).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return repository.ErrInsufficientStock
		}
		return errors.Internal("Failed to reserve inventory", err)
	}

	return nil
}

func (r *mongoInventoryRepository) Release(ctx context.Context, productID string, qty int) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"productId": productID},
		bson.M{"$inc": bson.M{"quantityAvailable": qty}},
	)
	if err != nil {
		return errors.Internal("Failed to release inventory", err)
	}

	return nil
}

func (r *mongoInventoryRepository) Upsert(ctx context.Context, input repository.InventoryUpsert) (*entity.Inventory, error) {
	set := bson.M{"lastRestockedDate": time.Now()}
	if input.QuantityAvailable != nil {
		set["quantityAvailable"] = *input.QuantityAvailable
	}
	if input.WarehouseLocation != nil {
		set["warehouseLocation"] = *input.WarehouseLocation
	}
	if input.MinimumStockAlert != nil {
		set["minimumStockAlert"] = *input.MinimumStockAlert
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	// String ids keep both stores addressable by plain hex.
	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"_id": primitive.NewObjectID().Hex()},
	}

	var inventory entity.Inventory
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"productId": input.ProductID},
		update,
		opts,
	).Decode(&inventory)
	if err != nil {
		return nil, errors.Internal("Failed to upsert inventory", err)
	}

	return &inventory, nil
}
