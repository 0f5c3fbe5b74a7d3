package controllers

import (
	"net/http"

	apperrors "pharmacy-store/common/errors"
	"pharmacy-store/models"
	"pharmacy-store/services"

	"github.com/gin-gonic/gin"
)

// ProductController maps the catalog endpoints onto the product service.
type ProductController struct {
	products IProductService
}

func NewProductController(products IProductService) *ProductController {
	return &ProductController{products: products}
}

// GetProducts handles GET /api/products (public).
func (pc *ProductController) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, pc.products.ListProducts(c.Request.Context()))
}

// CreateProduct handles POST /api/products.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var candidate models.Product
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
		return
	}

	created, err := pc.products.CreateProduct(c.Request.Context(), candidate)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Product added successfully", "product": created})
}

// UpdateProduct handles PUT /api/products/:id. The path id wins over any id
// in the body.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var patch services.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
		return
	}

	updated, err := pc.products.UpdateProduct(c.Request.Context(), id, patch)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": updated})
}

// DeleteProduct handles DELETE /api/products/:id.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if err := pc.products.DeleteProduct(c.Request.Context(), id); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
