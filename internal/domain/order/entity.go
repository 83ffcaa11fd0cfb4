// internal/domain/order/entity.go
package order

import (
	"fmt"
	"time"

	"github.com/romawatches/storefront/internal/domain/product"
	"github.com/shopspring/decimal"
)

// Order is the immutable record of a checkout. Only Status changes after creation.
type Order struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	UserID        uint            `gorm:"not null;index" json:"userId"`
	FullName      string          `gorm:"not null;size:200" json:"fullName"`
	PhoneNumber   string          `gorm:"not null;size:20" json:"phoneNumber"`
	Province      string          `gorm:"not null;size:100" json:"province"`
	Ward          string          `gorm:"not null;size:100" json:"ward"`
	Address       string          `gorm:"not null;size:500" json:"address"`
	PaymentMethod PaymentMethod   `gorm:"not null;size:20" json:"paymentMethod"`
	Status        OrderStatus     `gorm:"not null;size:20;index" json:"status"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"totalAmount"`
	ShippingFee   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"shippingFee"`
	CreatedAt     time.Time       `gorm:"index" json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`

	// Relationships
	Items         []OrderItem          `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
	StatusHistory []OrderStatusHistory `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"statusHistory,omitempty"`
}

// OrderItem is a purchased product with the unit price charged at checkout
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"not null;index" json:"orderId"`
	ProductID uint            `gorm:"not null;index" json:"productId"`
	Product   product.Product `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"product"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"price"`
	CreatedAt time.Time       `json:"createdAt"`
}

// OrderStatusHistory tracks order status changes
type OrderStatusHistory struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	OrderID    uint        `gorm:"not null;index" json:"orderId"`
	FromStatus OrderStatus `gorm:"size:20" json:"fromStatus"`
	Status     OrderStatus `gorm:"not null;size:20" json:"status"`
	Comment    string      `gorm:"type:text" json:"comment"`
	CreatedBy  uint        `gorm:"index" json:"createdBy"` // User ID who made the change
	CreatedAt  time.Time   `json:"createdAt"`
}

// TableName overrides
func (Order) TableName() string              { return "orders" }
func (OrderItem) TableName() string          { return "order_items" }
func (OrderStatusHistory) TableName() string { return "order_status_history" }

// Subtotal returns quantity times the captured price
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Reference is the short order reference used in transfer descriptions, e.g. RW42
func (o *Order) Reference() string {
	return fmt.Sprintf("RW%d", o.ID)
}

// Code is the order number shown to customers and searched by admins, e.g. #RW42
func (o *Order) Code() string {
	return "#" + o.Reference()
}

// ItemCount returns the number of units ordered
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}

// Subtotal returns the sum of the item subtotals
func (o *Order) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].Subtotal())
	}
	return total
}

// CanBeCancelledByUser checks if the customer may cancel the order
func (o *Order) CanBeCancelledByUser() bool {
	return o.Status != OrderStatusCompleted
}

// AwaitsBankTransfer reports whether the customer still has to confirm a bank transfer
func (o *Order) AwaitsBankTransfer() bool {
	return o.PaymentMethod == PaymentMethodBankTransfer && o.Status == OrderStatusUnconfirmed
}

// PaymentState derives the payment state from the method and status
func (o *Order) PaymentState() PaymentState {
	if o.Status == OrderStatusCancelled {
		return PaymentStateCancelled
	}
	if o.PaymentMethod == PaymentMethodBankTransfer {
		if o.Status == OrderStatusUnconfirmed || o.Status == OrderStatusPending {
			return PaymentStateAwaitingPayment
		}
		return PaymentStatePaid
	}
	if o.Status == OrderStatusApproved || o.Status == OrderStatusCompleted {
		return PaymentStatePaid
	}
	return PaymentStateAwaitingPayment
}

// AddStatusHistory adds a new status change to history
func (o *Order) AddStatusHistory(from, to OrderStatus, comment string, createdBy uint) {
	o.StatusHistory = append(o.StatusHistory, OrderStatusHistory{
		OrderID:    o.ID,
		FromStatus: from,
		Status:     to,
		Comment:    comment,
		CreatedBy:  createdBy,
		CreatedAt:  time.Now().UTC(),
	})
}
