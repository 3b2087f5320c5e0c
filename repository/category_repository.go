package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/DarkcodeQuan/WebProject/models"
	"github.com/DarkcodeQuan/WebProject/pkg/apperrors"
)

type CategoryRepository struct {
	collection *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{
		collection: db.Collection("categories"),
	}
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperrors.StoreUnavailable("Failed to fetch categories", err)
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err = cursor.All(ctx, &categories); err != nil {
		return nil, apperrors.StoreUnavailable("Failed to decode categories", err)
	}
	return categories, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*models.Category, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NotFound("Could not find category with provided id", err)
	}

	var category models.Category
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("Could not find category with provided id", nil)
		}
		return nil, apperrors.StoreUnavailable("Failed to fetch category", err)
	}
	return &category, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	result, err := r.collection.InsertOne(ctx, category)
	if err != nil {
		return apperrors.StoreUnavailable("Failed to insert category", err)
	}
	if insertedID, ok := result.InsertedID.(primitive.ObjectID); ok {
		category.ID = insertedID
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NotFound("Could not find category with provided id", err)
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return apperrors.StoreUnavailable("Failed to delete category", err)
	}
	return nil
}
