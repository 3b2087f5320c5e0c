package models

import (
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DarkcodeQuan/WebProject/pkg/apperrors"
)

// Product image files live on the local filesystem and are served as static
// assets; both locations are pure functions of the image filename.
const (
	ImageStorageRoot  = "product-data"
	ImagePublicPrefix = "/products/assets"
)

// Product is a catalog entry stored in the "products" collection.
// ImagePath and ImageURL are derived from Image and never persisted.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	CategoryID  primitive.ObjectID `bson:"cateId" json:"category_id"`
	Summary     string             `bson:"summary" json:"summary"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Image       string             `bson:"image" json:"image"`
	ImagePath   string             `bson:"-" json:"image_path"`
	ImageURL    string             `bson:"-" json:"image_url"`
}

// ProductInput carries raw form fields for creating or updating a product.
// Price arrives as text and is coerced to a number here, at construction.
type ProductInput struct {
	Title       string `form:"title" json:"title"`
	CategoryID  string `form:"cateId" json:"category_id"`
	Summary     string `form:"summary" json:"summary"`
	Description string `form:"description" json:"description"`
	Price       string `form:"price" json:"price"`
	Image       string `form:"image" json:"image"`
}

// NewProduct validates and coerces raw input into a Product.
func NewProduct(input ProductInput) (*Product, error) {
	if input.Title == "" {
		return nil, apperrors.InvalidArgument("Product title is required", nil)
	}

	price, err := strconv.ParseFloat(input.Price, 64)
	if err != nil {
		return nil, apperrors.InvalidArgument("Product price must be a number", err)
	}
	if price < 0 {
		return nil, apperrors.InvalidArgument("Product price must not be negative", nil)
	}

	cateID, err := primitive.ObjectIDFromHex(input.CategoryID)
	if err != nil {
		return nil, apperrors.InvalidArgument("Invalid category id", err)
	}

	p := &Product{
		Title:       input.Title,
		CategoryID:  cateID,
		Summary:     input.Summary,
		Description: input.Description,
		Price:       price,
		Image:       input.Image,
	}
	p.UpdateImageData()
	return p, nil
}

// UpdateImageData recomputes the derived image locations from Image.
func (p *Product) UpdateImageData() {
	p.ImagePath = fmt.Sprintf("%s/images/%s", ImageStorageRoot, p.Image)
	p.ImageURL = fmt.Sprintf("%s/images/%s", ImagePublicPrefix, p.Image)
}

// ReplaceImage swaps the image file reference and refreshes derived fields.
func (p *Product) ReplaceImage(newImage string) {
	p.Image = newImage
	p.UpdateImageData()
}
