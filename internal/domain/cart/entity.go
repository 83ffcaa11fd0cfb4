// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/romawatches/storefront/internal/domain/product"
	"github.com/shopspring/decimal"
)

// Cart is a user's shopping cart. It is created on the first add and never deleted.
type Cart struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"not null;uniqueIndex" json:"userId"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CartItem is one product line of a cart. Prices are read live from the product.
type CartItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	CartID    uint            `gorm:"not null;uniqueIndex:idx_cart_items_cart_product" json:"cartId"`
	ProductID uint            `gorm:"not null;uniqueIndex:idx_cart_items_cart_product;index" json:"productId"`
	Product   product.Product `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"product"`
	Quantity  int             `gorm:"not null;default:1;check:chk_cart_items_quantity,quantity >= 1" json:"quantity"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// TableName overrides
func (Cart) TableName() string     { return "carts" }
func (CartItem) TableName() string { return "cart_items" }

// Subtotal returns quantity times the current product price
func (i *CartItem) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Line is a (product, quantity) pair, the unit of a saved cart snapshot
type Line struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

// Lines returns the cart contents as product/quantity pairs
func (c *Cart) Lines() []Line {
	lines := make([]Line, 0, len(c.Items))
	for _, item := range c.Items {
		lines = append(lines, Line{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return lines
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// ItemCount returns the sum of all quantities
func (c *Cart) ItemCount() int {
	if c == nil {
		return 0
	}
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Subtotal returns the sum of all line subtotals
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	if c == nil {
		return total
	}
	for i := range c.Items {
		total = total.Add(c.Items[i].Subtotal())
	}
	return total
}

// Item returns the line with itemID, if present
func (c *Cart) Item(itemID uint) (*CartItem, bool) {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i], true
		}
	}
	return nil, false
}

// CartTotals summarises a cart for API responses
type CartTotals struct {
	LineCount int             `json:"lineCount"`
	ItemCount int             `json:"itemCount"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Totals computes the cart summary
func (c *Cart) Totals() CartTotals {
	lines := 0
	if c != nil {
		lines = len(c.Items)
	}
	return CartTotals{
		LineCount: lines,
		ItemCount: c.ItemCount(),
		Subtotal:  c.Subtotal(),
	}
}
