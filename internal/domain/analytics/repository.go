// internal/domain/analytics/repository.go
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/romawatches/storefront/internal/domain/order"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository aggregates order data. Totals count orders created at or after since;
// the recent orders and best sellers cover every order.
type Repository interface {
	Revenue(ctx context.Context, since time.Time, statuses []order.OrderStatus) (decimal.Decimal, error)
	CountOrders(ctx context.Context, since time.Time, excluding []order.OrderStatus) (int64, error)
	UnitsSold(ctx context.Context, since time.Time, statuses []order.OrderStatus) (int64, error)
	RecentOrders(ctx context.Context, excluding []order.OrderStatus, limit int) ([]order.Order, error)
	// TopProducts ranks products by quantity sold, best first
	TopProducts(ctx context.Context, statuses []order.OrderStatus, limit int) ([]ProductSales, error)
}

// GormRepository runs the aggregates as SQL
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates an analytics repository over db
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Revenue(ctx context.Context, since time.Time, statuses []order.OrderStatus) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	err := r.db.WithContext(ctx).
		Raw("SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE created_at >= ? AND status IN ?", since, statuses).
		Row().Scan(&revenue)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get revenue: %w", err)
	}
	return revenue, nil
}

func (r *GormRepository) CountOrders(ctx context.Context, since time.Time, excluding []order.OrderStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders WHERE created_at >= ? AND status NOT IN ?", since, excluding).
		Scan(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

func (r *GormRepository) UnitsSold(ctx context.Context, since time.Time, statuses []order.OrderStatus) (int64, error) {
	var sold int64
	err := r.db.WithContext(ctx).
		Raw(`
			SELECT COALESCE(SUM(oi.quantity), 0)
			FROM order_items oi
			JOIN orders o ON o.id = oi.order_id
			WHERE o.created_at >= ? AND o.status IN ?
		`, since, statuses).
		Scan(&sold).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count products sold: %w", err)
	}
	return sold, nil
}

func (r *GormRepository) RecentOrders(ctx context.Context, excluding []order.OrderStatus, limit int) ([]order.Order, error) {
	var orders []order.Order
	err := r.db.WithContext(ctx).
		Where("status NOT IN ?", excluding).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recent orders: %w", err)
	}
	return orders, nil
}

func (r *GormRepository) TopProducts(ctx context.Context, statuses []order.OrderStatus, limit int) ([]ProductSales, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			p.brand,
			p.image_url,
			SUM(oi.quantity) AS quantity,
			SUM(oi.quantity * oi.price) AS revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN products p ON p.id = oi.product_id
		WHERE o.status IN ?
		GROUP BY p.id, p.name, p.brand, p.image_url
		ORDER BY quantity DESC, p.id ASC
		LIMIT ?
	`, statuses, limit).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to get top products: %w", err)
	}
	defer rows.Close()

	var products []ProductSales
	for rows.Next() {
		var p ProductSales
		if err := rows.Scan(&p.ProductID, &p.Name, &p.Brand, &p.ImageURL, &p.Quantity, &p.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan top product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read top products: %w", err)
	}
	return products, nil
}
