package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/DarkcodeQuan/WebProject/pkg/logger"
	"github.com/DarkcodeQuan/WebProject/repository"
	"github.com/DarkcodeQuan/WebProject/services"
)

// RefreshCartPrices re-fetches current catalog prices for a non-empty cart
// before the handler runs, so totals shown or checked out are never stale.
func RefreshCartPrices(cart *services.CartService, sessions repository.SessionRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetSession(c)
		if session == nil || session.Cart.IsEmpty() {
			c.Next()
			return
		}

		before := session.Cart.GrandTotal
		if err := cart.RefreshPrices(c.Request.Context(), session.Cart); err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		if session.Cart.GrandTotal != before {
			if err := sessions.Save(c.Request.Context(), session); err != nil {
				logger.Error(c, "Failed to persist refreshed cart prices", err)
			}
		}

		c.Next()
	}
}
