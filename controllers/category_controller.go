package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DarkcodeQuan/WebProject/services"
)

type CategoryController struct {
	catalog *services.CatalogService
}

func NewCategoryController(catalog *services.CatalogService) *CategoryController {
	return &CategoryController{catalog: catalog}
}

// GetCategories lists all categories.
func (cc *CategoryController) GetCategories(c *gin.Context) {
	categories, err := cc.catalog.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
