// internal/domain/cart/repository.go
package cart

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository persists carts and their lines
type Repository interface {
	// FindByUser returns the user's cart with products loaded. A user without a cart
	// gets an empty, unsaved Cart (ID 0).
	FindByUser(ctx context.Context, userID uint) (*Cart, error)
	GetOrCreate(ctx context.Context, userID uint) (*Cart, error)
	// FindItem returns ErrCartItemNotFound unless itemID is in userID's cart
	FindItem(ctx context.Context, userID, itemID uint) (*CartItem, error)
	// IncrementItem adds delta to the product's line, inserting the line if absent
	IncrementItem(ctx context.Context, cartID, productID uint, delta int) error
	SetQuantity(ctx context.Context, itemID uint, quantity int) error
	DeleteItem(ctx context.Context, itemID uint) error
	ReplaceItems(ctx context.Context, cartID uint, lines []Line) error
	ClearItems(ctx context.Context, cartID uint) error
}

// GormRepository is the relational Repository
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a cart repository over db
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) FindByUser(ctx context.Context, userID uint) (*Cart, error) {
	var cart Cart
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.id ASC") }).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &Cart{UserID: userID, Items: []CartItem{}}, nil
		}
		return nil, fmt.Errorf("failed to get cart for user %d: %w", userID, err)
	}
	return &cart, nil
}

func (r *GormRepository) GetOrCreate(ctx context.Context, userID uint) (*Cart, error) {
	cart := Cart{UserID: userID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Omit(clause.Associations).
		Create(&cart).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create cart for user %d: %w", userID, err)
	}

	if cart.ID == 0 {
		if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error; err != nil {
			return nil, fmt.Errorf("failed to get cart for user %d: %w", userID, err)
		}
	}
	return &cart, nil
}

func (r *GormRepository) FindItem(ctx context.Context, userID, itemID uint) (*CartItem, error) {
	var item CartItem
	err := r.db.WithContext(ctx).
		Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.user_id = ?", itemID, userID).
		Preload("Product").
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, fmt.Errorf("failed to get cart item %d: %w", itemID, err)
	}
	return &item, nil
}

// IncrementItem is a single upsert, so concurrent adds of the same product never lose an increment
func (r *GormRepository) IncrementItem(ctx context.Context, cartID, productID uint, delta int) error {
	item := CartItem{CartID: cartID, ProductID: productID, Quantity: delta}
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("cart_items.quantity + EXCLUDED.quantity"),
				"updated_at": gorm.Expr("EXCLUDED.updated_at"),
			}),
		}).
		Create(&item).Error
	if err != nil {
		return fmt.Errorf("failed to add product %d to cart %d: %w", productID, cartID, err)
	}
	return nil
}

func (r *GormRepository) SetQuantity(ctx context.Context, itemID uint, quantity int) error {
	result := r.db.WithContext(ctx).Model(&CartItem{}).Where("id = ?", itemID).Update("quantity", quantity)
	if result.Error != nil {
		return fmt.Errorf("failed to update cart item %d: %w", itemID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (r *GormRepository) DeleteItem(ctx context.Context, itemID uint) error {
	result := r.db.WithContext(ctx).Delete(&CartItem{}, itemID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete cart item %d: %w", itemID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (r *GormRepository) ReplaceItems(ctx context.Context, cartID uint, lines []Line) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cartID).Delete(&CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear cart %d: %w", cartID, err)
		}
		if len(lines) == 0 {
			return nil
		}

		items := make([]CartItem, 0, len(lines))
		for _, line := range lines {
			items = append(items, CartItem{CartID: cartID, ProductID: line.ProductID, Quantity: line.Quantity})
		}
		if err := tx.Omit(clause.Associations).Create(&items).Error; err != nil {
			return fmt.Errorf("failed to fill cart %d: %w", cartID, err)
		}
		return nil
	})
}

func (r *GormRepository) ClearItems(ctx context.Context, cartID uint) error {
	if err := r.db.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart %d: %w", cartID, err)
	}
	return nil
}
