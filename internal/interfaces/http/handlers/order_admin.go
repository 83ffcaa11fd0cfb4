// internal/interfaces/http/handlers/order_admin.go
package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/romawatches/storefront/internal/domain/order"
	"github.com/romawatches/storefront/internal/pkg/export"
	"github.com/sirupsen/logrus"
)

// AdminOrderHandler handles back-office order endpoints
type AdminOrderHandler struct {
	orderService *order.Service
	logger       *logrus.Logger
}

// NewAdminOrderHandler creates a new admin order handler
func NewAdminOrderHandler(orderService *order.Service, logger *logrus.Logger) *AdminOrderHandler {
	return &AdminOrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// UpdateStatusRequest is a back-office status change
type UpdateStatusRequest struct {
	OrderID   uint   `json:"orderId" binding:"required"`
	NewStatus string `json:"newStatus" binding:"required"`
}

// ListOrders handles GET /admin/orders?search=
func (h *AdminOrderHandler) ListOrders(c *gin.Context) {
	search := c.Query("search")

	orders, err := h.orderService.AdminList(c.Request.Context(), search)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Orders retrieved successfully", gin.H{
		"data":   newOrderViews(orders),
		"total":  len(orders),
		"search": search,
	})
}

// GetOrder handles GET /admin/orders/:id
func (h *AdminOrderHandler) GetOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	o, err := h.orderService.AdminGet(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Order retrieved successfully", gin.H{
		"data":              newOrderView(o),
		"availableStatuses": order.NextStatuses(o.Status),
	})
}

// ExportOrders handles GET /admin/orders/export?search=
func (h *AdminOrderHandler) ExportOrders(c *gin.Context) {
	orders, err := h.orderService.AdminList(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var buf bytes.Buffer
	if err := export.Orders(&buf, orders); err != nil {
		respondError(c, h.logger, err)
		return
	}

	filename := fmt.Sprintf("orders-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Length", strconv.Itoa(buf.Len()))
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

// UpdateStatus handles POST /admin/order/update-status
func (h *AdminOrderHandler) UpdateStatus(c *gin.Context) {
	adminID, ok := requireUser(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "orderId and newStatus are required")
		return
	}

	updated, err := h.orderService.UpdateStatus(c.Request.Context(), adminID, req.OrderID, req.NewStatus)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Order status updated", gin.H{
		"orderId":     updated.ID,
		"status":      updated.Status,
		"statusLabel": updated.Status.Label(),
	})
}
