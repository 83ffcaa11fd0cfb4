// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/romawatches/storefront/internal/config"
	"github.com/romawatches/storefront/internal/domain/product"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ProductFinder looks up catalogue products
type ProductFinder interface {
	FindByID(ctx context.Context, id uint) (*product.Product, error)
}

// Service handles cart business logic
type Service struct {
	repo      Repository
	products  ProductFinder
	snapshots SnapshotStore
	config    *config.Config
	logger    *logrus.Logger
	now       func() time.Time
}

// NewService creates a new cart service
func NewService(repo Repository, products ProductFinder, snapshots SnapshotStore, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		repo:      repo,
		products:  products,
		snapshots: snapshots,
		config:    cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// QuantityUpdate is the result of changing a line's quantity
type QuantityUpdate struct {
	ItemSubtotal decimal.Decimal `json:"itemSubtotal"`
	Total        decimal.Decimal `json:"total"`
	ItemCount    int             `json:"cartCount"`
}

// Get returns the user's cart with live product prices
func (s *Service) Get(ctx context.Context, userID uint) (*Cart, error) {
	return s.repo.FindByUser(ctx, userID)
}

// Count returns the total quantity across the user's cart
func (s *Service) Count(ctx context.Context, userID uint) (int, error) {
	cart, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return cart.ItemCount(), nil
}

// AddItem adds one unit of productID, merging into an existing line. Returns the new item count.
func (s *Service) AddItem(ctx context.Context, userID, productID uint) (int, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return 0, err
	}

	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return 0, err
	}

	if err := s.repo.IncrementItem(ctx, cart.ID, productID, 1); err != nil {
		return 0, err
	}

	return s.Count(ctx, userID)
}

// UpdateQuantity sets the quantity of one of the user's lines
func (s *Service) UpdateQuantity(ctx context.Context, userID, itemID uint, quantity int) (*QuantityUpdate, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	if _, err := s.repo.FindItem(ctx, userID, itemID); err != nil {
		return nil, err
	}

	if err := s.repo.SetQuantity(ctx, itemID, quantity); err != nil {
		return nil, err
	}

	cart, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	update := &QuantityUpdate{
		Total:     cart.Subtotal(),
		ItemCount: cart.ItemCount(),
	}
	if item, ok := cart.Item(itemID); ok {
		update.ItemSubtotal = item.Subtotal()
	}
	return update, nil
}

// RemoveItem deletes one of the user's lines
func (s *Service) RemoveItem(ctx context.Context, userID, itemID uint) (*CartTotals, error) {
	if _, err := s.repo.FindItem(ctx, userID, itemID); err != nil {
		return nil, err
	}

	if err := s.repo.DeleteItem(ctx, itemID); err != nil {
		return nil, err
	}

	cart, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	totals := cart.Totals()
	return &totals, nil
}

// BuyNow sets the current cart aside and leaves only productID (quantity 1) in it.
// A cart still holding nothing but the previous buy-now line keeps the existing
// snapshot; any other non-empty cart replaces it.
func (s *Service) BuyNow(ctx context.Context, userID, productID uint) (int, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return 0, err
	}

	cart, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	if cart.ID == 0 {
		if cart, err = s.repo.GetOrCreate(ctx, userID); err != nil {
			return 0, err
		}
	}

	if !cart.IsEmpty() {
		if err := s.saveSnapshot(ctx, userID, cart.Lines()); err != nil {
			return 0, err
		}
	}

	if err := s.repo.ReplaceItems(ctx, cart.ID, []Line{{ProductID: productID, Quantity: 1}}); err != nil {
		return 0, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":    userID,
		"product_id": productID,
	}).Info("Cart set aside for buy now")

	return 1, nil
}

func (s *Service) saveSnapshot(ctx context.Context, userID uint, lines []Line) error {
	previous, err := s.snapshots.Load(ctx, userID)
	switch {
	case err == nil:
		if isBuyNowLine(lines, previous) {
			return nil
		}
	case !errors.Is(err, ErrSnapshotNotFound):
		return err
	}

	snapshot := &Snapshot{UserID: userID, Lines: lines, SavedAt: s.now().UTC()}
	return s.snapshots.Save(ctx, snapshot, s.config.Cart.SnapshotTTL)
}

// isBuyNowLine reports whether lines is exactly the untouched line a previous
// buy-now left behind: one product, quantity 1, not part of the saved cart.
func isBuyNowLine(lines []Line, previous *Snapshot) bool {
	if len(lines) != 1 || lines[0].Quantity != 1 {
		return false
	}
	for _, saved := range previous.Lines {
		if saved.ProductID == lines[0].ProductID {
			return false
		}
	}
	return true
}

// Restore puts the saved cart back, replacing whatever the cart holds now, and
// deletes the snapshot. Lines whose product no longer exists are dropped.
func (s *Service) Restore(ctx context.Context, userID uint) (int, error) {
	snapshot, err := s.snapshots.Load(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrSnapshotNotFound) {
			return 0, ErrNothingToRestore
		}
		return 0, err
	}

	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return 0, err
	}

	lines, err := s.availableLines(ctx, snapshot.Lines)
	if err != nil {
		return 0, err
	}

	if err := s.repo.ReplaceItems(ctx, cart.ID, lines); err != nil {
		return 0, err
	}

	if err := s.snapshots.Delete(ctx, userID); err != nil {
		return 0, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"lines":   len(lines),
	}).Info("Saved cart restored")

	return s.Count(ctx, userID)
}

// RestoreIfEmpty restores the saved cart only into an empty cart. It reports whether anything was restored.
func (s *Service) RestoreIfEmpty(ctx context.Context, userID uint) (bool, error) {
	cart, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return false, err
	}
	if !cart.IsEmpty() {
		return false, nil
	}

	if _, err := s.Restore(ctx, userID); err != nil {
		if errors.Is(err, ErrNothingToRestore) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Clear empties the user's cart and drops any saved snapshot
func (s *Service) Clear(ctx context.Context, userID uint) error {
	cart, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return err
	}
	if cart.ID != 0 {
		if err := s.repo.ClearItems(ctx, cart.ID); err != nil {
			return err
		}
	}
	return s.DiscardSnapshot(ctx, userID)
}

// DiscardSnapshot drops the user's saved cart, if any
func (s *Service) DiscardSnapshot(ctx context.Context, userID uint) error {
	if err := s.snapshots.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to discard saved cart: %w", err)
	}
	return nil
}

func (s *Service) availableLines(ctx context.Context, lines []Line) ([]Line, error) {
	available := make([]Line, 0, len(lines))
	for _, line := range lines {
		if line.Quantity < 1 {
			continue
		}
		if _, err := s.products.FindByID(ctx, line.ProductID); err != nil {
			if errors.Is(err, product.ErrProductNotFound) {
				continue
			}
			return nil, err
		}
		available = append(available, line)
	}
	return available, nil
}
