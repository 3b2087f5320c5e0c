package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DarkcodeQuan/WebProject/models"
	"github.com/DarkcodeQuan/WebProject/pkg/apperrors"
	"github.com/DarkcodeQuan/WebProject/repository"
)

// OrderService creates orders at checkout and lists a user's order history.
type OrderService struct {
	orders   repository.OrderRepo
	sessions repository.SessionRepo
	cart     *CartService
}

func NewOrderService(orders repository.OrderRepo, sessions repository.SessionRepo, cart *CartService) *OrderService {
	return &OrderService{
		orders:   orders,
		sessions: sessions,
		cart:     cart,
	}
}

// Checkout snapshots the session cart into an immutable order for the user,
// persists it, and only then clears the cart. Any persistence failure aborts
// the checkout with the cart untouched.
func (s *OrderService) Checkout(ctx context.Context, session *models.Session) (*models.Order, error) {
	userID, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return nil, apperrors.NotFound("Could not find user for this session", err)
	}

	if err := s.cart.RefreshPrices(ctx, session.Cart); err != nil {
		return nil, err
	}
	if session.Cart.IsEmpty() {
		return nil, apperrors.InvalidArgument("Cannot check out an empty cart", nil)
	}

	order := models.NewOrder(userID, session.Cart)
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	session.Cart = models.NewCart()
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return order, nil
}

// ListForUser returns the user's orders, newest first.
func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orders.FindByUser(ctx, userID)
}
