// internal/domain/order/status.go
package order

import (
	"fmt"
	"strings"
)

// OrderStatus represents the order lifecycle state
type OrderStatus string

const (
	OrderStatusUnconfirmed OrderStatus = "Unconfirmed"
	OrderStatusPending     OrderStatus = "Pending"
	OrderStatusApproved    OrderStatus = "Approved"
	OrderStatusCompleted   OrderStatus = "Completed"
	OrderStatusCancelled   OrderStatus = "Cancelled"
)

var allStatuses = []OrderStatus{
	OrderStatusUnconfirmed,
	OrderStatusPending,
	OrderStatusApproved,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

var statusLabels = map[OrderStatus]string{
	OrderStatusUnconfirmed: "Đang chờ xác nhận",
	OrderStatusPending:     "Đã xác nhận",
	OrderStatusApproved:    "Đang giao hàng",
	OrderStatusCompleted:   "Đã giao hàng",
	OrderStatusCancelled:   "Đã hủy",
}

// ParseOrderStatus parses a status name case-insensitively
func ParseOrderStatus(s string) (OrderStatus, error) {
	s = strings.TrimSpace(s)
	for _, status := range allStatuses {
		if strings.EqualFold(string(status), s) {
			return status, nil
		}
	}
	return "", ErrInvalidStatus.WithMessage(fmt.Sprintf("unknown order status %q", s))
}

// Valid reports whether s is a known status
func (s OrderStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// IsTerminal reports whether no transition can leave s
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// Label returns the customer-facing status text
func (s OrderStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// CanTransition reports whether an order in status from may move to status to.
// Terminal states never change, a status never "changes" to itself, cancellation is
// open to every other state, and an unconfirmed order cannot complete directly.
// Every other move between known states is allowed, so operators may skip steps.
func CanTransition(from, to OrderStatus) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from.IsTerminal() {
		return false
	}
	if from == to {
		return false
	}
	if to == OrderStatusCancelled {
		return true
	}
	if from == OrderStatusUnconfirmed && to == OrderStatusCompleted {
		return false
	}
	return true
}

// NextStatuses lists the statuses an order in from may move to, in lifecycle order
func NextStatuses(from OrderStatus) []OrderStatus {
	next := []OrderStatus{}
	for _, to := range allStatuses {
		if CanTransition(from, to) {
			next = append(next, to)
		}
	}
	return next
}

// ValidateTransition returns ErrInvalidStatusTransition when CanTransition rejects the move
func ValidateTransition(from, to OrderStatus) error {
	if !CanTransition(from, to) {
		return ErrInvalidStatusTransition.WithMessage(
			fmt.Sprintf("cannot change order status from %s to %s", from, to))
	}
	return nil
}

// PaymentMethod represents how the customer pays
type PaymentMethod string

const (
	PaymentMethodCOD          PaymentMethod = "COD"
	PaymentMethodInStore      PaymentMethod = "InStore"
	PaymentMethodBankTransfer PaymentMethod = "BankTransfer"
)

var paymentMethods = []PaymentMethod{
	PaymentMethodCOD,
	PaymentMethodInStore,
	PaymentMethodBankTransfer,
}

var paymentMethodLabels = map[PaymentMethod]string{
	PaymentMethodCOD:          "Thanh toán khi nhận hàng",
	PaymentMethodInStore:      "Thanh toán tại cửa hàng",
	PaymentMethodBankTransfer: "Chuyển khoản ngân hàng",
}

// Label returns the customer-facing payment method text
func (m PaymentMethod) Label() string {
	if label, ok := paymentMethodLabels[m]; ok {
		return label
	}
	return string(m)
}

// ParsePaymentMethod parses a payment method name case-insensitively
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	s = strings.TrimSpace(s)
	for _, method := range paymentMethods {
		if strings.EqualFold(string(method), s) {
			return method, nil
		}
	}
	return "", ErrInvalidPaymentMethod
}

// InitialStatus returns the status a new order starts in: bank transfers wait
// for the customer to confirm payment, everything else ships right away.
func (m PaymentMethod) InitialStatus() OrderStatus {
	if m == PaymentMethodBankTransfer {
		return OrderStatusUnconfirmed
	}
	return OrderStatusApproved
}

// PaymentState summarises whether an order has been paid
type PaymentState string

const (
	PaymentStateCancelled       PaymentState = "cancelled"
	PaymentStateAwaitingPayment PaymentState = "awaiting_payment"
	PaymentStatePaid            PaymentState = "paid"
)

var paymentStateLabels = map[PaymentState]string{
	PaymentStateCancelled:       "Đã hủy",
	PaymentStateAwaitingPayment: "Chờ thanh toán",
	PaymentStatePaid:            "Đã thanh toán",
}

// Label returns the customer-facing payment text
func (p PaymentState) Label() string {
	return paymentStateLabels[p]
}
