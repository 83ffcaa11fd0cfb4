// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/romawatches/storefront/internal/domain/checkout"
	"github.com/romawatches/storefront/internal/domain/order"
	"github.com/sirupsen/logrus"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
	logger          *logrus.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service, logger *logrus.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		logger:          logger,
	}
}

// ConfirmPaymentRequest names the order whose transfer was made
type ConfirmPaymentRequest struct {
	OrderID uint `json:"orderId" binding:"required"`
}

func orderURL(o *order.Order) string {
	return fmt.Sprintf("/orders/%d", o.ID)
}

// GetSummary handles GET /checkout
func (h *CheckoutHandler) GetSummary(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	summary, err := h.checkoutService.Summary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Checkout summary retrieved successfully", gin.H{"data": summary})
}

// Process handles POST /checkout/process
func (h *CheckoutHandler) Process(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req checkout.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request data")
		return
	}

	result, err := h.checkoutService.Process(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	placed := result.Order
	extra := gin.H{
		"orderId":     placed.ID,
		"orderCode":   placed.Code(),
		"status":      placed.Status,
		"redirectUrl": orderURL(placed),
	}
	if p := result.Payment; p != nil {
		extra["qrCodeUrl"] = p.QRCodeURL
		extra["accountNumber"] = p.AccountNumber
		extra["accountHolder"] = p.AccountHolder
		extra["bankCode"] = p.BankCode
		extra["amount"] = p.Amount
		extra["description"] = p.Description
	}

	respondSuccess(c, http.StatusOK, checkout.SuccessMessage(placed.PaymentMethod), extra)
}

// ConfirmPayment handles POST /checkout/confirm-payment
func (h *CheckoutHandler) ConfirmPayment(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "orderId is required")
		return
	}

	confirmed, err := h.checkoutService.ConfirmPayment(c.Request.Context(), userID, req.OrderID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Payment confirmed. We will verify your transfer shortly.", gin.H{
		"orderId":     confirmed.ID,
		"status":      confirmed.Status,
		"redirectUrl": orderURL(confirmed),
	})
}

// GetPaymentInstructions handles GET /checkout/payment/:id
func (h *CheckoutHandler) GetPaymentInstructions(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	instructions, err := h.checkoutService.PaymentInstructions(c.Request.Context(), userID, orderID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Payment instructions retrieved successfully", gin.H{
		"orderId": orderID,
		"data":    instructions,
	})
}
