package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DarkcodeQuan/WebProject/models"
	"github.com/DarkcodeQuan/WebProject/pkg/apperrors"
)

func newSession() *models.Session {
	return &models.Session{
		ID:   primitive.NewObjectID().Hex(),
		Cart: models.NewCart(),
	}
}

func TestAddItemThenRemoveLeavesEmptyCart(t *testing.T) {
	cat := primitive.NewObjectID()
	product := newProduct("Hat", 50000, cat)
	products := &fakeProductRepo{products: []models.Product{product}}
	sessions := newFakeSessionRepo()
	svc := NewCartService(products, sessions)

	session := newSession()
	require.NoError(t, svc.AddItem(context.Background(), session, product.ID.Hex(), 2))
	require.Len(t, session.Cart.Items, 1)
	assert.Equal(t, 100000.0, session.Cart.GrandTotal)

	require.NoError(t, svc.RemoveItem(context.Background(), session, product.ID.Hex()))
	assert.True(t, session.Cart.IsEmpty())
	assert.Equal(t, 0.0, session.Cart.GrandTotal)
}

func TestAddItemTwiceMergesIntoOneLine(t *testing.T) {
	cat := primitive.NewObjectID()
	product := newProduct("Hat", 50000, cat)
	products := &fakeProductRepo{products: []models.Product{product}}
	svc := NewCartService(products, newFakeSessionRepo())

	session := newSession()
	require.NoError(t, svc.AddItem(context.Background(), session, product.ID.Hex(), 1))
	require.NoError(t, svc.AddItem(context.Background(), session, product.ID.Hex(), 1))

	require.Len(t, session.Cart.Items, 1)
	assert.Equal(t, 2, session.Cart.Items[0].Quantity)
	assert.Equal(t, 100000.0, session.Cart.GrandTotal)
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc := NewCartService(&fakeProductRepo{}, newFakeSessionRepo())

	session := newSession()
	err := svc.AddItem(context.Background(), session, primitive.NewObjectID().Hex(), 1)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.True(t, session.Cart.IsEmpty())
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	cat := primitive.NewObjectID()
	product := newProduct("Hat", 50000, cat)
	products := &fakeProductRepo{products: []models.Product{product}}
	svc := NewCartService(products, newFakeSessionRepo())

	session := newSession()
	require.NoError(t, svc.AddItem(context.Background(), session, product.ID.Hex(), 3))
	require.NoError(t, svc.UpdateQuantity(context.Background(), session, product.ID.Hex(), 0))

	assert.True(t, session.Cart.IsEmpty())
}

func TestRefreshPricesPicksUpCatalogChanges(t *testing.T) {
	cat := primitive.NewObjectID()
	product := newProduct("Hat", 50000, cat)
	products := &fakeProductRepo{products: []models.Product{product}}
	svc := NewCartService(products, newFakeSessionRepo())

	session := newSession()
	require.NoError(t, svc.AddItem(context.Background(), session, product.ID.Hex(), 2))

	// catalog price changes after the item was added
	products.products[0].Price = 75000

	require.NoError(t, svc.RefreshPrices(context.Background(), session.Cart))
	assert.Equal(t, 75000.0, session.Cart.Items[0].UnitPrice)
	assert.Equal(t, 150000.0, session.Cart.Items[0].LineTotal)
	assert.Equal(t, 150000.0, session.Cart.GrandTotal)
}

func TestRefreshPricesDropsVanishedProducts(t *testing.T) {
	cat := primitive.NewObjectID()
	kept := newProduct("Hat", 50000, cat)
	gone := newProduct("Coat", 60000, cat)
	products := &fakeProductRepo{products: []models.Product{kept, gone}}
	svc := NewCartService(products, newFakeSessionRepo())

	session := newSession()
	require.NoError(t, svc.AddItem(context.Background(), session, kept.ID.Hex(), 1))
	require.NoError(t, svc.AddItem(context.Background(), session, gone.ID.Hex(), 1))

	// the coat is removed from the catalog
	products.products = products.products[:1]

	require.NoError(t, svc.RefreshPrices(context.Background(), session.Cart))
	require.Len(t, session.Cart.Items, 1)
	assert.Equal(t, kept.ID.Hex(), session.Cart.Items[0].ProductID)
	assert.Equal(t, 50000.0, session.Cart.GrandTotal)
}
