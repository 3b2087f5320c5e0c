package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DarkcodeQuan/WebProject/models"
	"github.com/DarkcodeQuan/WebProject/pkg/apperrors"
	"github.com/DarkcodeQuan/WebProject/repository"
)

// AdminController covers the back-office CRUD on products and categories.
type AdminController struct {
	products   repository.ProductRepo
	categories repository.CategoryRepo
}

func NewAdminController(products repository.ProductRepo, categories repository.CategoryRepo) *AdminController {
	return &AdminController{
		products:   products,
		categories: categories,
	}
}

// CreateProduct validates raw form input and inserts a new product.
func (ac *AdminController) CreateProduct(c *gin.Context) {
	var input models.ProductInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	product, err := models.NewProduct(input)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := ac.products.Save(c.Request.Context(), product); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct rewrites a product's fields. An empty image in the input
// keeps the stored image untouched.
func (ac *AdminController) UpdateProduct(c *gin.Context) {
	existing, err := ac.products.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var input models.ProductInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	product, err := models.NewProduct(input)
	if err != nil {
		respondError(c, err)
		return
	}
	product.ID = existing.ID

	if err := ac.products.Save(c.Request.Context(), product); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// UpdateProductImage swaps a product's image file reference.
func (ac *AdminController) UpdateProductImage(c *gin.Context) {
	var req struct {
		Image string `json:"image" form:"image" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	product, err := ac.products.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	product.ReplaceImage(req.Image)
	if err := ac.products.Save(c.Request.Context(), product); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a product from the catalog.
func (ac *AdminController) DeleteProduct(c *gin.Context) {
	if err := ac.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// CreateCategory inserts a new category.
func (ac *AdminController) CreateCategory(c *gin.Context) {
	var req struct {
		Name string `json:"name" form:"name" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, apperrors.InvalidArgument("Category name is required", nil))
		return
	}

	category := &models.Category{Name: req.Name}
	if err := ac.categories.Create(c.Request.Context(), category); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// DeleteCategory removes a category.
func (ac *AdminController) DeleteCategory(c *gin.Context) {
	if err := ac.categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
