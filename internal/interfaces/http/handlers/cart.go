// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/romawatches/storefront/internal/domain/cart"
	"github.com/romawatches/storefront/internal/domain/product"
	"github.com/romawatches/storefront/internal/interfaces/http/middleware"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
	logger      *logrus.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger,
	}
}

// ProductRequest names a product to put in the cart
type ProductRequest struct {
	ProductID uint `json:"productId" binding:"required"`
}

// UpdateQuantityRequest sets a line's quantity
type UpdateQuantityRequest struct {
	CartItemID uint `json:"cartItemId" binding:"required"`
	Quantity   int  `json:"quantity"`
}

// RemoveItemRequest names a line to delete
type RemoveItemRequest struct {
	CartItemID uint `json:"cartItemId" binding:"required"`
}

// CartLine is a cart item as shown on the cart page
type CartLine struct {
	ID        uint            `json:"id"`
	ProductID uint            `json:"productId"`
	Product   product.Product `json:"product"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CartView is the cart page
type CartView struct {
	Items     []CartLine      `json:"items"`
	ItemCount int             `json:"itemCount"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

func newCartView(c *cart.Cart) CartView {
	view := CartView{
		Items:     make([]CartLine, 0, len(c.Items)),
		ItemCount: c.ItemCount(),
		Subtotal:  c.Subtotal(),
	}
	for i := range c.Items {
		item := &c.Items[i]
		view.Items = append(view.Items, CartLine{
			ID:        item.ID,
			ProductID: item.ProductID,
			Product:   item.Product,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal(),
		})
	}
	return view
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	userCart, err := h.cartService.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Cart retrieved successfully", gin.H{"data": newCartView(userCart)})
}

// GetCount handles GET /cart/count. Anonymous visitors have an empty cart.
func (h *CartHandler) GetCount(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondSuccess(c, http.StatusOK, "Cart count retrieved successfully", gin.H{"cartCount": 0})
		return
	}

	count, err := h.cartService.Count(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Cart count retrieved successfully", gin.H{"cartCount": count})
}

// AddToCart handles POST /cart/add
func (h *CartHandler) AddToCart(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "productId is required")
		return
	}

	count, err := h.cartService.AddItem(c.Request.Context(), userID, req.ProductID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Added to cart", gin.H{"cartCount": count})
}

// UpdateQuantity handles POST /cart/update
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "cartItemId is required")
		return
	}

	update, err := h.cartService.UpdateQuantity(c.Request.Context(), userID, req.CartItemID, req.Quantity)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Cart updated", gin.H{
		"itemSubtotal": update.ItemSubtotal,
		"total":        update.Total,
		"cartCount":    update.ItemCount,
	})
}

// RemoveItem handles POST /cart/remove
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req RemoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "cartItemId is required")
		return
	}

	totals, err := h.cartService.RemoveItem(c.Request.Context(), userID, req.CartItemID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Item removed from cart", gin.H{
		"total":     totals.Subtotal,
		"cartCount": totals.ItemCount,
	})
}

// BuyNow handles POST /cart/buy-now
func (h *CartHandler) BuyNow(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "productId is required")
		return
	}

	count, err := h.cartService.BuyNow(c.Request.Context(), userID, req.ProductID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Ready to check out", gin.H{
		"cartCount":   count,
		"redirectUrl": "/checkout",
	})
}

// Restore handles POST /cart/restore
func (h *CartHandler) Restore(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	count, err := h.cartService.Restore(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Your cart has been restored", gin.H{"cartCount": count})
}
