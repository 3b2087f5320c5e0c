package repository

import (
	"context"

	"github.com/DarkcodeQuan/WebProject/models"
)

// ProductRepo defines the operations the catalog and cart layers use.
// Identities are plain hex strings so callers never touch driver types.
type ProductRepo interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindByCategory(ctx context.Context, categoryID string) ([]models.Product, error)
	FindByName(ctx context.Context, name string) ([]models.Product, error)
	FindLowerPrice(ctx context.Context, price float64) ([]models.Product, error)
	FindGreaterPrice(ctx context.Context, price float64) ([]models.Product, error)
	FindInPriceRange(ctx context.Context, min, max float64) ([]models.Product, error)
	FindMultiple(ctx context.Context, ids []string) ([]models.Product, error)
	Save(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
}

// CategoryRepo defines the operations used for category management.
type CategoryRepo interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id string) error
}

// OrderRepo persists immutable orders.
type OrderRepo interface {
	Create(ctx context.Context, order *models.Order) error
	FindByUser(ctx context.Context, userID string) ([]models.Order, error)
}

// UserRepo looks up and creates users.
type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// SessionRepo stores per-visitor sessions. Get returns (nil, nil) for an
// unknown session ID.
type SessionRepo interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, id string) error
}
