package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is an immutable snapshot of a cart line at checkout time.
type OrderItem struct {
	ProductID string  `bson:"productId" json:"product_id"`
	Title     string  `bson:"title" json:"title"`
	UnitPrice float64 `bson:"unitPrice" json:"unit_price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	LineTotal float64 `bson:"lineTotal" json:"line_total"`
}

// Order is created once at checkout and never mutated afterwards.
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId" json:"user_id"`
	Items     []OrderItem        `bson:"items" json:"items"`
	Total     float64            `bson:"total" json:"total"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
}

// NewOrder snapshots the given cart into an order for the user.
func NewOrder(userID primitive.ObjectID, cart *Cart) *Order {
	items := make([]OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, OrderItem{
			ProductID: line.ProductID,
			Title:     line.Title,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal,
		})
	}

	return &Order{
		UserID:    userID,
		Items:     items,
		Total:     cart.GrandTotal,
		CreatedAt: time.Now().UTC(),
	}
}
