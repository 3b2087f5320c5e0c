package services

import (
	"context"

	"github.com/DarkcodeQuan/WebProject/models"
	"github.com/DarkcodeQuan/WebProject/repository"
)

// Price band cutoffs. Cheap is strictly below the lower cutoff, expensive
// strictly above the upper one, medium covers both cutoffs inclusively.
const (
	priceCheapBelow     = 100000
	priceExpensiveAbove = 500000
)

// ProductFilter carries the independent criteria a catalog search may
// combine. A zero Search, a CategoryID of "all" (or empty) and a Price
// outside {cheap, medium, expensive} each mean "no constraint".
type ProductFilter struct {
	Search     string
	CategoryID string
	Price      string
}

// CatalogService answers product and category listing queries.
type CatalogService struct {
	products   repository.ProductRepo
	categories repository.CategoryRepo
}

func NewCatalogService(products repository.ProductRepo, categories repository.CategoryRepo) *CatalogService {
	return &CatalogService{
		products:   products,
		categories: categories,
	}
}

// ListProducts returns the full catalog.
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.products.FindAll(ctx)
}

// ListCategories returns all categories.
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.FindAll(ctx)
}

// GetProduct returns one product by identity.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.products.FindByID(ctx, id)
}

// FilterProducts narrows the full product set by each active criterion in
// turn: name, then category, then price band. Every criterion is fetched as
// its own full subset and folded into the running result with mergeByTitle.
//
// The fold keys on title equality, not identity, so products sharing a title
// are indistinguishable at this step. Long-standing behavior; callers and
// tests rely on it, see DESIGN.md before changing.
func (s *CatalogService) FilterProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	result, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if filter.Search != "" {
		matches, err := s.products.FindByName(ctx, filter.Search)
		if err != nil {
			return nil, err
		}
		result = mergeByTitle(result, matches)
	}

	if filter.CategoryID != "" && filter.CategoryID != "all" {
		matches, err := s.products.FindByCategory(ctx, filter.CategoryID)
		if err != nil {
			return nil, err
		}
		result = mergeByTitle(result, matches)
	}

	switch filter.Price {
	case "cheap":
		matches, err := s.products.FindLowerPrice(ctx, priceCheapBelow)
		if err != nil {
			return nil, err
		}
		result = mergeByTitle(result, matches)
	case "expensive":
		matches, err := s.products.FindGreaterPrice(ctx, priceExpensiveAbove)
		if err != nil {
			return nil, err
		}
		result = mergeByTitle(result, matches)
	case "medium":
		matches, err := s.products.FindInPriceRange(ctx, priceCheapBelow, priceExpensiveAbove)
		if err != nil {
			return nil, err
		}
		result = mergeByTitle(result, matches)
	}

	return result, nil
}

// mergeByTitle intersects two product lists, keeping entries of the left
// operand whose title appears on the right. The nested scan can duplicate a
// left entry when several right entries share its title.
func mergeByTitle(root, temp []models.Product) []models.Product {
	products := []models.Product{}
	for _, r := range root {
		for _, t := range temp {
			if r.Title == t.Title {
				products = append(products, r)
			}
		}
	}
	return products
}
