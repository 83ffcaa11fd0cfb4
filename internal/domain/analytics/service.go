// internal/domain/analytics/service.go
package analytics

import (
	"context"
	"time"

	"github.com/romawatches/storefront/internal/config"
	"github.com/romawatches/storefront/internal/domain/order"
	"github.com/shopspring/decimal"
)

const (
	defaultWindow     = 30 * 24 * time.Hour
	recentOrdersLimit = 5
	topProductsLimit  = 5
)

// Orders that count as sales
var settledStatuses = []order.OrderStatus{order.OrderStatusApproved, order.OrderStatusCompleted}

// Orders the shop has not accepted yet
var unconfirmedStatuses = []order.OrderStatus{order.OrderStatusUnconfirmed}

// Service handles analytics business logic
type Service struct {
	repo   Repository
	config *config.Config
	now    func() time.Time
}

// NewService creates a new analytics service
func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:   repo,
		config: cfg,
		now:    time.Now,
	}
}

// Dashboard represents the back-office landing page statistics
type Dashboard struct {
	Since        time.Time       `json:"since"`
	Revenue      decimal.Decimal `json:"revenue"`
	NewOrders    int64           `json:"newOrders"`
	ProductsSold int64           `json:"productsSold"`
	RecentOrders []RecentOrder   `json:"recentOrders"`
	TopProducts  []ProductSales  `json:"topProducts"`
}

// RecentOrder is a row of the latest orders table
type RecentOrder struct {
	ID          uint              `json:"id"`
	Code        string            `json:"code"`
	FullName    string            `json:"fullName"`
	TotalAmount decimal.Decimal   `json:"totalAmount"`
	Status      order.OrderStatus `json:"status"`
	StatusLabel string            `json:"statusLabel"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// ProductSales is a best seller
type ProductSales struct {
	ProductID uint            `json:"productId"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	ImageURL  string          `json:"imageUrl"`
	Quantity  int64           `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// Dashboard returns the totals for the configured window ending now, plus the
// latest orders and best sellers of all time
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	window := s.config.Catalog.DashboardWindow
	if window <= 0 {
		window = defaultWindow
	}
	since := s.now().UTC().Add(-window)

	revenue, err := s.repo.Revenue(ctx, since, settledStatuses)
	if err != nil {
		return nil, err
	}

	newOrders, err := s.repo.CountOrders(ctx, since, unconfirmedStatuses)
	if err != nil {
		return nil, err
	}

	sold, err := s.repo.UnitsSold(ctx, since, settledStatuses)
	if err != nil {
		return nil, err
	}

	orders, err := s.repo.RecentOrders(ctx, unconfirmedStatuses, recentOrdersLimit)
	if err != nil {
		return nil, err
	}

	top, err := s.repo.TopProducts(ctx, settledStatuses, topProductsLimit)
	if err != nil {
		return nil, err
	}
	if top == nil {
		top = []ProductSales{}
	}

	dashboard := &Dashboard{
		Since:        since,
		Revenue:      revenue,
		NewOrders:    newOrders,
		ProductsSold: sold,
		RecentOrders: make([]RecentOrder, 0, len(orders)),
		TopProducts:  top,
	}
	for i := range orders {
		o := &orders[i]
		dashboard.RecentOrders = append(dashboard.RecentOrders, RecentOrder{
			ID:          o.ID,
			Code:        o.Code(),
			FullName:    o.FullName,
			TotalAmount: o.TotalAmount,
			Status:      o.Status,
			StatusLabel: o.Status.Label(),
			CreatedAt:   o.CreatedAt,
		})
	}

	return dashboard, nil
}
