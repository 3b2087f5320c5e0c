package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DarkcodeQuan/WebProject/middleware"
	"github.com/DarkcodeQuan/WebProject/services"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// Checkout turns the session cart into an order for the logged-in user.
func (oc *OrderController) Checkout(c *gin.Context) {
	session := middleware.GetSession(c)

	order, err := oc.orders.Checkout(c.Request.Context(), session)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// ListOrders returns the logged-in user's order history.
func (oc *OrderController) ListOrders(c *gin.Context) {
	session := middleware.GetSession(c)

	orders, err := oc.orders.ListForUser(c.Request.Context(), session.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
