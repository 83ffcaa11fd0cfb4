// internal/domain/order/repository.go
package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Repository persists orders
type Repository interface {
	// Create inserts the order together with its items and status history
	Create(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id uint) (*Order, error)
	// FindForUser returns ErrOrderNotFound unless the order belongs to userID
	FindForUser(ctx context.Context, userID, id uint) (*Order, error)
	// ListForUser returns the user's orders, newest first. No statuses means all.
	ListForUser(ctx context.Context, userID uint, statuses []OrderStatus) ([]Order, error)
	// Search matches customer name or order code, newest first. An empty query lists everything.
	Search(ctx context.Context, query string) ([]Order, error)
	// UpdateStatus moves the order from one status to another and records the change.
	// It fails with ErrStatusChanged when the order is no longer in status from.
	UpdateStatus(ctx context.Context, id uint, from, to OrderStatus, change OrderStatusHistory) error
}

// GormRepository is the relational Repository
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates an order repository over db
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(ctx context.Context, order *Order) error {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *GormRepository) detailed(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id ASC") }).
		Preload("Items.Product").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB { return db.Order("order_status_history.created_at ASC") })
}

func (r *GormRepository) FindByID(ctx context.Context, id uint) (*Order, error) {
	var order Order
	if err := r.detailed(ctx).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to retrieve order: %w", err)
	}
	return &order, nil
}

func (r *GormRepository) FindForUser(ctx context.Context, userID, id uint) (*Order, error) {
	var order Order
	if err := r.detailed(ctx).Where("user_id = ?", userID).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to retrieve order: %w", err)
	}
	return &order, nil
}

func (r *GormRepository) ListForUser(ctx context.Context, userID uint, statuses []OrderStatus) ([]Order, error) {
	query := r.db.WithContext(ctx).
		Preload("Items.Product").
		Where("user_id = ?", userID)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}

	var orders []Order
	if err := query.Order("created_at DESC, id DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}
	return orders, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *GormRepository) Search(ctx context.Context, search string) ([]Order, error) {
	query := r.db.WithContext(ctx).Preload("Items").Preload("Items.Product")
	if s := strings.ToLower(strings.TrimSpace(search)); s != "" {
		pattern := "%" + likeEscaper.Replace(s) + "%"
		query = query.Where("LOWER(full_name) LIKE ? OR CONCAT('#rw', id) LIKE ?", pattern, pattern)
	}

	var orders []Order
	if err := query.Order("created_at DESC, id DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to search orders: %w", err)
	}
	return orders, nil
}

func (r *GormRepository) UpdateStatus(ctx context.Context, id uint, from, to OrderStatus, change OrderStatusHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Order{}).
			Where("id = ? AND status = ?", id, from).
			Updates(map[string]interface{}{
				"status":     to,
				"updated_at": time.Now().UTC(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update order status: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&Order{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check order: %w", err)
			}
			if count == 0 {
				return ErrOrderNotFound
			}
			return ErrStatusChanged
		}

		change.ID = 0
		change.OrderID = id
		change.FromStatus = from
		change.Status = to
		if change.CreatedAt.IsZero() {
			change.CreatedAt = time.Now().UTC()
		}
		if err := tx.Create(&change).Error; err != nil {
			return fmt.Errorf("failed to create status history: %w", err)
		}
		return nil
	})
}
