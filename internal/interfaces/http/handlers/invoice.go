// internal/interfaces/http/handlers/invoice.go
package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/romawatches/storefront/internal/domain/order"
	"github.com/sirupsen/logrus"
)

// InvoiceRenderer produces an order's invoice document
type InvoiceRenderer interface {
	GenerateInvoice(o *order.Order) (*bytes.Buffer, error)
}

// InvoiceHandler handles invoice-related endpoints
type InvoiceHandler struct {
	orderService *order.Service
	renderer     InvoiceRenderer
	logger       *logrus.Logger
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(orderService *order.Service, renderer InvoiceRenderer, logger *logrus.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		orderService: orderService,
		renderer:     renderer,
		logger:       logger,
	}
}

// GenerateInvoice handles GET /orders/:id/invoice
func (h *InvoiceHandler) GenerateInvoice(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	// Ownership is checked by the lookup
	o, err := h.orderService.Get(c.Request.Context(), userID, orderID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	pdfBuffer, err := h.renderer.GenerateInvoice(o)
	if err != nil {
		respondError(c, h.logger, fmt.Errorf("failed to generate invoice for order %d: %w", o.ID, err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", o.Reference()))
	c.Header("Content-Length", strconv.Itoa(pdfBuffer.Len()))
	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}
