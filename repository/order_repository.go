package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DarkcodeQuan/WebProject/models"
	"github.com/DarkcodeQuan/WebProject/pkg/apperrors"
)

type OrderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		collection: db.Collection("orders"),
	}
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	result, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return apperrors.StoreUnavailable("Failed to insert order", err)
	}
	if insertedID, ok := result.InsertedID.(primitive.ObjectID); ok {
		order.ID = insertedID
	}
	return nil
}

func (r *OrderRepository) FindByUser(ctx context.Context, userID string) ([]models.Order, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.NotFound("Could not find orders for provided user", err)
	}

	findOptions := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": objectID}, findOptions)
	if err != nil {
		return nil, apperrors.StoreUnavailable("Failed to fetch orders", err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err = cursor.All(ctx, &orders); err != nil {
		return nil, apperrors.StoreUnavailable("Failed to decode orders", err)
	}
	return orders, nil
}
