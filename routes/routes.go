package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DarkcodeQuan/WebProject/controllers"
	"github.com/DarkcodeQuan/WebProject/middleware"
)

// RegisterRoutes wires all application routes, passing in the controllers.
func RegisterRoutes(
	r *gin.Engine,
	products *controllers.ProductController,
	categories *controllers.CategoryController,
	cart *controllers.CartController,
	orders *controllers.OrderController,
	auth *controllers.AuthController,
	admin *controllers.AdminController,
) {
	productRoutes := r.Group("/products")
	{
		productRoutes.GET("/", products.GetProducts)
		productRoutes.GET("/search", products.SearchProducts)
		productRoutes.GET("/:id", products.GetProductByID)
	}

	r.GET("/categories", categories.GetCategories)

	cartRoutes := r.Group("/cart")
	{
		cartRoutes.GET("/", cart.GetCart)
		cartRoutes.POST("/items", cart.AddItem)
		cartRoutes.PATCH("/items", cart.UpdateItem)
		cartRoutes.DELETE("/items/:productId", cart.RemoveItem)
	}

	orderRoutes := r.Group("/orders")
	orderRoutes.Use(middleware.Protected())
	{
		orderRoutes.GET("/", orders.ListOrders)
		orderRoutes.POST("/checkout", orders.Checkout)
	}

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/signup", auth.Signup)
		authRoutes.POST("/login", auth.Login)
		authRoutes.POST("/logout", auth.Logout)
	}

	adminRoutes := r.Group("/admin")
	adminRoutes.Use(middleware.RequireAdmin())
	{
		adminRoutes.POST("/products", admin.CreateProduct)
		adminRoutes.PATCH("/products/:id", admin.UpdateProduct)
		adminRoutes.POST("/products/:id/image", admin.UpdateProductImage)
		adminRoutes.DELETE("/products/:id", admin.DeleteProduct)
		adminRoutes.POST("/categories", admin.CreateCategory)
		adminRoutes.DELETE("/categories/:id", admin.DeleteCategory)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}
