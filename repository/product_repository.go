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

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{
		collection: db.Collection("products"),
	}
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	return r.findProducts(ctx, bson.M{})
}

// FindByID resolves a product by its hex identity. A malformed identity is
// reported as not-found rather than a parse failure so storage detail does
// not leak to callers.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NotFound("Could not find product with provided id", err)
	}

	var product models.Product
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("Could not find product with provided id", nil)
		}
		return nil, apperrors.StoreUnavailable("Failed to fetch product", err)
	}

	product.UpdateImageData()
	return &product, nil
}

func (r *ProductRepository) FindByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return nil, apperrors.NotFound("Could not find category with provided id", err)
	}
	return r.findProducts(ctx, bson.M{"cateId": objectID})
}

// FindByName matches products whose title contains the given text.
func (r *ProductRepository) FindByName(ctx context.Context, name string) ([]models.Product, error) {
	return r.findProducts(ctx, bson.M{"title": primitive.Regex{Pattern: ".*" + name + ".*"}})
}

func (r *ProductRepository) FindLowerPrice(ctx context.Context, price float64) ([]models.Product, error) {
	return r.findProducts(ctx, bson.M{"price": bson.M{"$lt": price}})
}

func (r *ProductRepository) FindGreaterPrice(ctx context.Context, price float64) ([]models.Product, error) {
	return r.findProducts(ctx, bson.M{"price": bson.M{"$gt": price}})
}

func (r *ProductRepository) FindInPriceRange(ctx context.Context, min, max float64) ([]models.Product, error) {
	filter := bson.M{"$and": bson.A{
		bson.M{"price": bson.M{"$gte": min}},
		bson.M{"price": bson.M{"$lte": max}},
	}}
	return r.findProducts(ctx, filter)
}

func (r *ProductRepository) FindMultiple(ctx context.Context, ids []string) ([]models.Product, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, apperrors.NotFound("Could not find product with provided id", err)
		}
		objectIDs = append(objectIDs, objectID)
	}
	return r.findProducts(ctx, bson.M{"_id": bson.M{"$in": objectIDs}})
}

// Save inserts a product without identity and updates one with identity.
// On update an empty image is left out of the $set document so a previously
// stored image is not clobbered.
func (r *ProductRepository) Save(ctx context.Context, product *models.Product) error {
	if product.ID.IsZero() {
		result, err := r.collection.InsertOne(ctx, product)
		if err != nil {
			return apperrors.StoreUnavailable("Failed to insert product", err)
		}
		if insertedID, ok := result.InsertedID.(primitive.ObjectID); ok {
			product.ID = insertedID
		}
		return nil
	}

	update := bson.M{
		"title":       product.Title,
		"cateId":      product.CategoryID,
		"summary":     product.Summary,
		"price":       product.Price,
		"description": product.Description,
	}
	if product.Image != "" {
		update["image"] = product.Image
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": product.ID}, bson.M{"$set": update})
	if err != nil {
		return apperrors.StoreUnavailable("Failed to update product", err)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NotFound("Could not find product with provided id", err)
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return apperrors.StoreUnavailable("Failed to delete product", err)
	}
	return nil
}

func (r *ProductRepository) findProducts(ctx context.Context, filter bson.M) ([]models.Product, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, apperrors.StoreUnavailable("Failed to fetch products", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, apperrors.StoreUnavailable("Failed to decode products", err)
	}

	for i := range products {
		products[i].UpdateImageData()
	}
	return products, nil
}
