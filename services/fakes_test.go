package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DarkcodeQuan/WebProject/models"
	"github.com/DarkcodeQuan/WebProject/pkg/apperrors"
)

// fakeProductRepo serves products from memory, mirroring the comparison
// semantics of the real collection queries (strict bounds for lower/greater,
// inclusive bounds for the range, substring match for names).
type fakeProductRepo struct {
	products []models.Product
	saveErr  error
	saved    []models.Product
}

func (f *fakeProductRepo) FindAll(ctx context.Context) ([]models.Product, error) {
	return append([]models.Product{}, f.products...), nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id string) (*models.Product, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, apperrors.NotFound("Could not find product with provided id", err)
	}
	for _, p := range f.products {
		if p.ID.Hex() == id {
			product := p
			return &product, nil
		}
	}
	return nil, apperrors.NotFound("Could not find product with provided id", nil)
}

func (f *fakeProductRepo) FindByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return nil, apperrors.NotFound("Could not find category with provided id", err)
	}
	var result []models.Product
	for _, p := range f.products {
		if p.CategoryID == objectID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakeProductRepo) FindByName(ctx context.Context, name string) ([]models.Product, error) {
	var result []models.Product
	for _, p := range f.products {
		if strings.Contains(p.Title, name) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakeProductRepo) FindLowerPrice(ctx context.Context, price float64) ([]models.Product, error) {
	var result []models.Product
	for _, p := range f.products {
		if p.Price < price {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakeProductRepo) FindGreaterPrice(ctx context.Context, price float64) ([]models.Product, error) {
	var result []models.Product
	for _, p := range f.products {
		if p.Price > price {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakeProductRepo) FindInPriceRange(ctx context.Context, min, max float64) ([]models.Product, error) {
	var result []models.Product
	for _, p := range f.products {
		if p.Price >= min && p.Price <= max {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakeProductRepo) FindMultiple(ctx context.Context, ids []string) ([]models.Product, error) {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, err := primitive.ObjectIDFromHex(id); err != nil {
			return nil, apperrors.NotFound("Could not find product with provided id", err)
		}
		want[id] = true
	}
	var result []models.Product
	for _, p := range f.products {
		if want[p.ID.Hex()] {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakeProductRepo) Save(ctx context.Context, product *models.Product) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	f.saved = append(f.saved, *product)
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type fakeCategoryRepo struct {
	categories []models.Category
}

func (f *fakeCategoryRepo) FindAll(ctx context.Context) ([]models.Category, error) {
	return append([]models.Category{}, f.categories...), nil
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id string) (*models.Category, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, apperrors.NotFound("Could not find category with provided id", err)
	}
	for _, cat := range f.categories {
		if cat.ID.Hex() == id {
			category := cat
			return &category, nil
		}
	}
	return nil, apperrors.NotFound("Could not find category with provided id", nil)
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	category.ID = primitive.NewObjectID()
	f.categories = append(f.categories, *category)
	return nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id string) error {
	return nil
}

// fakeSessionRepo keeps sessions in a map. Save stores a deep-enough copy so
// later in-memory mutations do not leak into the "persisted" state.
type fakeSessionRepo struct {
	sessions map[string]models.Session
	saveErr  error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]models.Session)}
}

func (f *fakeSessionRepo) Get(ctx context.Context, id string) (*models.Session, error) {
	stored, ok := f.sessions[id]
	if !ok {
		return nil, nil
	}
	session := stored
	cart := *stored.Cart
	cart.Items = append([]models.CartItem{}, stored.Cart.Items...)
	session.Cart = &cart
	return &session, nil
}

func (f *fakeSessionRepo) Save(ctx context.Context, session *models.Session) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	stored := *session
	cart := *session.Cart
	cart.Items = append([]models.CartItem{}, session.Cart.Items...)
	stored.Cart = &cart
	f.sessions[session.ID] = stored
	return nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, id string) error {
	delete(f.sessions, id)
	return nil
}

// fakeOrderRepo records created orders and can be told to fail.
type fakeOrderRepo struct {
	orders    []models.Order
	createErr error
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *models.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	order.ID = primitive.NewObjectID()
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeOrderRepo) FindByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var result []models.Order
	for _, o := range f.orders {
		if o.UserID.Hex() == userID {
			result = append(result, o)
		}
	}
	return result, nil
}
