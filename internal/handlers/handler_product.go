package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/fluxora_app/internal/core/ports/services"
	"github.com/SscSPs/fluxora_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// productHandler handles HTTP requests related to the product catalog.
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

func newProductHandler(ps portssvc.ProductSvcFacade) *productHandler {
	return &productHandler{productService: ps}
}

// RegisterProductRoutes registers the catalog routes and the category option tables.
func RegisterProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := newProductHandler(productService)

	products := rg.Group("/products")
	{
		products.GET("", h.listProducts)
		products.POST("", h.createProduct)
		products.GET("/:product_id", h.getProduct)
		products.PUT("/:product_id", h.updateProduct)
		products.DELETE("/:product_id", h.deleteProduct)
	}
	rg.GET("/categories", listCategories)
}

// listProducts godoc
// @Summary List products
// @Description Retrieves the whole catalog of the user ordered by name
// @Tags products
// @Produce  json
// @Success 200 {array} dto.ProductResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list products"
// @Security BearerAuth
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	products, err := h.productService.ListProducts(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list products")
		return
	}
	c.JSON(http.StatusOK, dto.ToListProductResponse(products))
}

// getProduct godoc
// @Summary Get a product
// @Tags products
// @Produce  json
// @Param   product_id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve product"
// @Security BearerAuth
// @Router /products/{product_id} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	product, err := h.productService.GetProductByID(c.Request.Context(), c.Param("product_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// createProduct godoc
// @Summary Create a product
// @Tags products
// @Accept  json
// @Produce  json
// @Param   product body dto.ProductRequest true "Product"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse "Invalid input, category or unit"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create product"
// @Security BearerAuth
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create product")
		return
	}
	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// updateProduct godoc
// @Summary Replace a product
// @Tags products
// @Accept  json
// @Produce  json
// @Param   product_id path string true "Product ID"
// @Param   product body dto.ProductRequest true "Product"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse "Invalid input, category or unit"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Failure 500 {object} ErrorResponse "Failed to update product"
// @Security BearerAuth
// @Router /products/{product_id} [put]
func (h *productHandler) updateProduct(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("product_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// deleteProduct godoc
// @Summary Delete a product
// @Description Fails with 409 while any shopping item still references the product
// @Tags products
// @Param   product_id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Failure 409 {object} ErrorResponse "Product in use"
// @Failure 500 {object} ErrorResponse "Failed to delete product"
// @Security BearerAuth
// @Router /products/{product_id} [delete]
func (h *productHandler) deleteProduct(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.productService.DeleteProduct(c.Request.Context(), c.Param("product_id"), userID); err != nil {
		respondError(c, err, "Failed to delete product")
		return
	}
	c.Status(http.StatusNoContent)
}

// listCategories godoc
// @Summary List category options
// @Description Transaction categories grouped by income and expense, product categories and units
// @Tags products
// @Produce  json
// @Success 200 {object} dto.CategoriesResponse
// @Security BearerAuth
// @Router /categories [get]
func listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewCategoriesResponse())
}
