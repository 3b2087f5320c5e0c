package services

import (
	"context"

	"github.com/DarkcodeQuan/WebProject/models"
	"github.com/DarkcodeQuan/WebProject/pkg/apperrors"
	"github.com/DarkcodeQuan/WebProject/repository"
)

// CartService mutates the session-scoped cart and keeps its prices in step
// with the catalog.
type CartService struct {
	products repository.ProductRepo
	sessions repository.SessionRepo
}

func NewCartService(products repository.ProductRepo, sessions repository.SessionRepo) *CartService {
	return &CartService{
		products: products,
		sessions: sessions,
	}
}

// AddItem looks up the product and merges it into the session cart.
func (s *CartService) AddItem(ctx context.Context, session *models.Session, productID string, quantity int) error {
	if quantity < 1 {
		return apperrors.InvalidArgument("Quantity must be at least 1", nil)
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}

	session.Cart.AddItem(*product, quantity)
	return s.sessions.Save(ctx, session)
}

// RemoveItem drops the product's line from the session cart.
func (s *CartService) RemoveItem(ctx context.Context, session *models.Session, productID string) error {
	session.Cart.RemoveItem(productID)
	return s.sessions.Save(ctx, session)
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (s *CartService) UpdateQuantity(ctx context.Context, session *models.Session, productID string, quantity int) error {
	session.Cart.UpdateQuantity(productID, quantity)
	return s.sessions.Save(ctx, session)
}

// RefreshPrices re-fetches the current catalog price for every cart line and
// recomputes totals, so a stale cart never checks out at an outdated price.
// Lines whose product has disappeared from the catalog are dropped.
func (s *CartService) RefreshPrices(ctx context.Context, cart *models.Cart) error {
	if cart.IsEmpty() {
		return nil
	}

	products, err := s.products.FindMultiple(ctx, cart.ProductIDs())
	if err != nil {
		return err
	}

	current := make(map[string]models.Product, len(products))
	for _, p := range products {
		current[p.ID.Hex()] = p
	}

	items := cart.Items[:0]
	for _, item := range cart.Items {
		p, ok := current[item.ProductID]
		if !ok {
			continue
		}
		item.Title = p.Title
		item.UnitPrice = p.Price
		items = append(items, item)
	}
	cart.Items = items
	cart.RecomputeTotals()
	return nil
}
