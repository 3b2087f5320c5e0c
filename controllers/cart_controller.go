package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DarkcodeQuan/WebProject/middleware"
	"github.com/DarkcodeQuan/WebProject/services"
)

type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

type cartItemRequest struct {
	ProductID string `json:"product_id" form:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" form:"quantity"`
}

// GetCart returns the session's cart.
func (cc *CartController) GetCart(c *gin.Context) {
	session := middleware.GetSession(c)
	c.JSON(http.StatusOK, session.Cart)
}

// AddItem merges a product into the session cart.
func (cc *CartController) AddItem(c *gin.Context) {
	session := middleware.GetSession(c)

	var req cartItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := cc.cart.AddItem(c.Request.Context(), session, req.ProductID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session.Cart)
}

// UpdateItem sets a line's quantity; zero or less removes the line.
func (cc *CartController) UpdateItem(c *gin.Context) {
	session := middleware.GetSession(c)

	var req cartItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	if err := cc.cart.UpdateQuantity(c.Request.Context(), session, req.ProductID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session.Cart)
}

// RemoveItem deletes a product's line from the session cart.
func (cc *CartController) RemoveItem(c *gin.Context) {
	session := middleware.GetSession(c)

	if err := cc.cart.RemoveItem(c.Request.Context(), session, c.Param("productId")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session.Cart)
}
