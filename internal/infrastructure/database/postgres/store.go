// internal/infrastructure/database/postgres/store.go
package postgres

import (
	"context"

	"github.com/romawatches/storefront/internal/domain/cart"
	"github.com/romawatches/storefront/internal/domain/checkout"
	"github.com/romawatches/storefront/internal/domain/order"
	"gorm.io/gorm"
)

// Store runs checkout against PostgreSQL
type Store struct {
	db     *gorm.DB
	carts  *cart.GormRepository
	orders *order.GormRepository
}

// NewStore creates a store bound to db
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:     db,
		carts:  cart.NewGormRepository(db),
		orders: order.NewGormRepository(db),
	}
}

// Carts returns the cart repository
func (s *Store) Carts() cart.Repository { return s.carts }

// Orders returns the order repository
func (s *Store) Orders() order.Repository { return s.orders }

// Transaction runs fn inside a database transaction. Returning an error rolls it back.
func (s *Store) Transaction(ctx context.Context, fn func(tx checkout.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
