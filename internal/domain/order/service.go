// internal/domain/order/service.go
package order

import (
	"context"
	"fmt"
	"strings"

	"github.com/romawatches/storefront/internal/config"
	"github.com/sirupsen/logrus"
)

// Service handles order history, cancellation and back-office status changes
type Service struct {
	repo     Repository
	notifier Notifier
	config   *config.Config
	logger   *logrus.Logger
}

// NewService creates a new order service
func NewService(repo Repository, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		repo:     repo,
		notifier: NopNotifier,
		config:   cfg,
		logger:   logger,
	}
}

// WithNotifier sends status change notifications through n
func (s *Service) WithNotifier(n Notifier) *Service {
	s.notifier = n
	return s
}

// HistoryFilter groups a customer's orders
type HistoryFilter string

const (
	HistoryAll        HistoryFilter = "all"
	HistoryProcessing HistoryFilter = "processing"
	HistoryCompleted  HistoryFilter = "completed"
	HistoryCancelled  HistoryFilter = "cancelled"
)

// ParseHistoryFilter returns the filter for s, defaulting to all orders
func ParseHistoryFilter(s string) HistoryFilter {
	switch HistoryFilter(strings.ToLower(strings.TrimSpace(s))) {
	case HistoryProcessing:
		return HistoryProcessing
	case HistoryCompleted:
		return HistoryCompleted
	case HistoryCancelled:
		return HistoryCancelled
	default:
		return HistoryAll
	}
}

// Statuses returns the statuses in the group, nil for all
func (f HistoryFilter) Statuses() []OrderStatus {
	switch f {
	case HistoryProcessing:
		return []OrderStatus{OrderStatusUnconfirmed, OrderStatusPending, OrderStatusApproved}
	case HistoryCompleted:
		return []OrderStatus{OrderStatusCompleted}
	case HistoryCancelled:
		return []OrderStatus{OrderStatusCancelled}
	default:
		return nil
	}
}

// History returns the user's orders in the group, newest first
func (s *Service) History(ctx context.Context, userID uint, filter HistoryFilter) ([]Order, error) {
	orders, err := s.repo.ListForUser(ctx, userID, filter.Statuses())
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []Order{}
	}
	return orders, nil
}

// Get returns one of the user's orders
func (s *Service) Get(ctx context.Context, userID, orderID uint) (*Order, error) {
	return s.repo.FindForUser(ctx, userID, orderID)
}

// Cancel cancels one of the user's orders. Anything but a completed order can be cancelled;
// cancelling an already cancelled order changes nothing.
func (s *Service) Cancel(ctx context.Context, userID, orderID uint) (*Order, error) {
	order, err := s.repo.FindForUser(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if !order.CanBeCancelledByUser() {
		return nil, ErrOrderNotCancellable
	}
	if order.Status == OrderStatusCancelled {
		return order, nil
	}

	change := OrderStatusHistory{Comment: "Cancelled by customer", CreatedBy: userID}
	if err := s.repo.UpdateStatus(ctx, order.ID, order.Status, OrderStatusCancelled, change); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"order_id":    order.ID,
		"user_id":     userID,
		"from_status": order.Status,
	}).Info("Order cancelled by customer")

	from := order.Status
	order.Status = OrderStatusCancelled
	s.notifier.StatusChanged(ctx, order, from)
	return order, nil
}

// AdminList returns all orders matching search, newest first
func (s *Service) AdminList(ctx context.Context, search string) ([]Order, error) {
	orders, err := s.repo.Search(ctx, search)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []Order{}
	}
	return orders, nil
}

// AdminGet returns any order
func (s *Service) AdminGet(ctx context.Context, orderID uint) (*Order, error) {
	return s.repo.FindByID(ctx, orderID)
}

// UpdateStatus applies a back-office status change through the transition table
func (s *Service) UpdateStatus(ctx context.Context, adminID, orderID uint, newStatus string) (*Order, error) {
	to, err := ParseOrderStatus(newStatus)
	if err != nil {
		return nil, err
	}

	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := ValidateTransition(order.Status, to); err != nil {
		return nil, err
	}

	change := OrderStatusHistory{
		Comment:   fmt.Sprintf("Status changed by admin from %s to %s", order.Status, to),
		CreatedBy: adminID,
	}
	if err := s.repo.UpdateStatus(ctx, order.ID, order.Status, to, change); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"order_id":    order.ID,
		"admin_id":    adminID,
		"from_status": order.Status,
		"to_status":   to,
	}).Info("Order status updated")

	from := order.Status
	order.Status = to
	s.notifier.StatusChanged(ctx, order, from)
	return order, nil
}
