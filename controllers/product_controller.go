package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DarkcodeQuan/WebProject/services"
)

type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// GetProducts returns the full catalog together with all categories.
func (pc *ProductController) GetProducts(c *gin.Context) {
	categories, err := pc.catalog.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	products, err := pc.catalog.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"products":   products,
	})
}

// SearchProducts narrows the catalog by the search text, category and price
// band query parameters.
func (pc *ProductController) SearchProducts(c *gin.Context) {
	filter := services.ProductFilter{
		Search:     c.Query("search"),
		CategoryID: c.DefaultQuery("cateId", "all"),
		Price:      c.Query("price"),
	}

	categories, err := pc.catalog.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	products, err := pc.catalog.FilterProducts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"products":   products,
	})
}

// GetProductByID returns one product's details.
func (pc *ProductController) GetProductByID(c *gin.Context) {
	product, err := pc.catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}
