// internal/infrastructure/database/memory/analytics.go
package memory

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/romawatches/storefront/internal/domain/analytics"
	"github.com/romawatches/storefront/internal/domain/order"
	"github.com/romawatches/storefront/internal/domain/product"
	"github.com/shopspring/decimal"
)

// Analytics returns the dashboard aggregates over the stored orders
func (s *Store) Analytics() analytics.Repository { return &AnalyticsRepository{store: s} }

// AnalyticsRepository is the in-memory analytics.Repository
type AnalyticsRepository struct {
	store *Store
}

func (r *AnalyticsRepository) Revenue(_ context.Context, since time.Time, statuses []order.OrderStatus) (decimal.Decimal, error) {
	revenue := decimal.Zero
	for _, o := range r.orders(since, statuses, true) {
		revenue = revenue.Add(o.TotalAmount)
	}
	return revenue, nil
}

func (r *AnalyticsRepository) CountOrders(_ context.Context, since time.Time, excluding []order.OrderStatus) (int64, error) {
	return int64(len(r.orders(since, excluding, false))), nil
}

func (r *AnalyticsRepository) UnitsSold(_ context.Context, since time.Time, statuses []order.OrderStatus) (int64, error) {
	var sold int64
	for _, o := range r.orders(since, statuses, true) {
		sold += int64(o.ItemCount())
	}
	return sold, nil
}

func (r *AnalyticsRepository) RecentOrders(_ context.Context, excluding []order.OrderStatus, limit int) ([]order.Order, error) {
	orders := r.orders(time.Time{}, excluding, false)
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID > orders[j].ID
	})
	if len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

func (r *AnalyticsRepository) TopProducts(_ context.Context, statuses []order.OrderStatus, limit int) ([]analytics.ProductSales, error) {
	byProduct := map[uint]*analytics.ProductSales{}
	for _, o := range r.orders(time.Time{}, statuses, true) {
		for _, item := range o.Items {
			sales, ok := byProduct[item.ProductID]
			if !ok {
				p := r.lookupProduct(item.ProductID)
				sales = &analytics.ProductSales{
					ProductID: item.ProductID,
					Name:      p.Name,
					Brand:     p.Brand,
					ImageURL:  p.ImageURL,
					Revenue:   decimal.Zero,
				}
				byProduct[item.ProductID] = sales
			}
			sales.Quantity += int64(item.Quantity)
			sales.Revenue = sales.Revenue.Add(item.Subtotal())
		}
	}

	products := make([]analytics.ProductSales, 0, len(byProduct))
	for _, sales := range byProduct {
		products = append(products, *sales)
	}
	sort.Slice(products, func(i, j int) bool {
		if products[i].Quantity != products[j].Quantity {
			return products[i].Quantity > products[j].Quantity
		}
		return products[i].ProductID < products[j].ProductID
	})
	if len(products) > limit {
		products = products[:limit]
	}
	return products, nil
}

// orders returns the orders created since, keeping (include) or dropping the given statuses
func (r *AnalyticsRepository) orders(since time.Time, statuses []order.OrderStatus, include bool) []order.Order {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var orders []order.Order
	for _, o := range r.store.state.orders {
		if o.CreatedAt.Before(since) {
			continue
		}
		if slices.Contains(statuses, o.Status) != include {
			continue
		}
		orders = append(orders, cloneOrder(o))
	}
	return orders
}

func (r *AnalyticsRepository) lookupProduct(id uint) product.Product {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.state.products[id]
}
