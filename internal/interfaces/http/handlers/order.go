// internal/interfaces/http/handlers/order.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/romawatches/storefront/internal/domain/order"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// OrderHandler handles the customer's order endpoints
type OrderHandler struct {
	orderService *order.Service
	logger       *logrus.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *order.Service, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// OrderIDRequest names an order
type OrderIDRequest struct {
	OrderID uint `json:"orderId" binding:"required"`
}

// OrderView is an order with its display fields
type OrderView struct {
	*order.Order
	Code              string          `json:"code"`
	StatusLabel       string          `json:"statusLabel"`
	PaymentState      string          `json:"paymentState"`
	PaymentStateLabel string          `json:"paymentStateLabel"`
	ItemCount         int             `json:"itemCount"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	CanCancel         bool            `json:"canCancel"`
}

func newOrderView(o *order.Order) OrderView {
	state := o.PaymentState()
	return OrderView{
		Order:             o,
		Code:              o.Code(),
		StatusLabel:       o.Status.Label(),
		PaymentState:      string(state),
		PaymentStateLabel: state.Label(),
		ItemCount:         o.ItemCount(),
		Subtotal:          o.Subtotal(),
		CanCancel:         o.CanBeCancelledByUser() && o.Status != order.OrderStatusCancelled,
	}
}

func newOrderViews(orders []order.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, newOrderView(&orders[i]))
	}
	return views
}

// GetOrders handles GET /orders?status=
func (h *OrderHandler) GetOrders(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	filter := order.ParseHistoryFilter(c.Query("status"))
	orders, err := h.orderService.History(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Orders retrieved successfully", gin.H{
		"data":   newOrderViews(orders),
		"status": filter,
	})
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	o, err := h.orderService.Get(c.Request.Context(), userID, orderID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Order retrieved successfully", gin.H{"data": newOrderView(o)})
}

// CancelOrder handles POST /order/cancel
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req OrderIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "orderId is required")
		return
	}

	cancelled, err := h.orderService.Cancel(c.Request.Context(), userID, req.OrderID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Order cancelled", gin.H{
		"orderId": cancelled.ID,
		"status":  cancelled.Status,
	})
}
