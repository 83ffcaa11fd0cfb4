// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/romawatches/storefront/internal/domain/product"
	"github.com/sirupsen/logrus"
)

// ProductHandler handles catalogue endpoints
type ProductHandler struct {
	productService *product.Service
	logger         *logrus.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *product.Service, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// GetProducts handles GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	filter := product.ParseFilter(c.Request.URL.Query())

	products, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Products retrieved successfully", gin.H{
		"data":  products,
		"total": len(products),
		"sort":  filter.Sort,
	})
}

// GetLatestProducts handles GET /products/latest
func (h *ProductHandler) GetLatestProducts(c *gin.Context) {
	products, err := h.productService.Latest(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Latest products retrieved successfully", gin.H{"data": products})
}

// GetFacets handles GET /products/facets
func (h *ProductHandler) GetFacets(c *gin.Context) {
	facets, err := h.productService.Facets(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Filters retrieved successfully", gin.H{"data": facets})
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	p, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Product retrieved successfully", gin.H{"data": p})
}
