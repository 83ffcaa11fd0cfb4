// internal/infrastructure/database/memory/store.go
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/romawatches/storefront/internal/domain/cart"
	"github.com/romawatches/storefront/internal/domain/checkout"
	"github.com/romawatches/storefront/internal/domain/order"
	"github.com/romawatches/storefront/internal/domain/product"
	"github.com/romawatches/storefront/internal/domain/user"
	"github.com/shopspring/decimal"
)

// Store keeps every table in process memory. It backs the service tests and
// local runs without PostgreSQL.
type Store struct {
	mu    *sync.Mutex
	state *state
	now   func() time.Time
}

type state struct {
	products  map[uint]product.Product
	carts     map[uint]cart.Cart
	cartItems map[uint]cart.CartItem
	orders    map[uint]order.Order
	users     map[uint]user.User
	lastID    map[string]uint
}

func newState() *state {
	return &state{
		products:  map[uint]product.Product{},
		carts:     map[uint]cart.Cart{},
		cartItems: map[uint]cart.CartItem{},
		orders:    map[uint]order.Order{},
		users:     map[uint]user.User{},
		lastID:    map[string]uint{},
	}
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		mu:    &sync.Mutex{},
		state: newState(),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *state) nextID(table string) uint {
	s.lastID[table]++
	return s.lastID[table]
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.carts {
		c.carts[k] = v
	}
	for k, v := range s.cartItems {
		c.cartItems[k] = v
	}
	for k, v := range s.orders {
		c.orders[k] = cloneOrder(v)
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.lastID {
		c.lastID[k] = v
	}
	return c
}

func cloneOrder(o order.Order) order.Order {
	o.Items = append([]order.OrderItem(nil), o.Items...)
	o.StatusHistory = append([]order.OrderStatusHistory(nil), o.StatusHistory...)
	return o
}

// Products returns the product repository
func (s *Store) Products() product.Repository { return &ProductRepository{store: s} }

// Carts returns the cart repository
func (s *Store) Carts() cart.Repository { return &CartRepository{store: s} }

// Orders returns the order repository
func (s *Store) Orders() order.Repository { return &OrderRepository{store: s} }

// Users returns the user repository
func (s *Store) Users() user.Repository { return &UserRepository{store: s} }

// Transaction runs fn and rolls every table back when it fails. It is not
// isolated from writers running concurrently outside the transaction.
func (s *Store) Transaction(ctx context.Context, fn func(tx checkout.Store) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	saved := s.state.clone()
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.state = saved
		s.mu.Unlock()
		return err
	}
	return nil
}

// AddProduct inserts p, assigning an ID and creation time when unset
func (s *Store) AddProduct(p product.Product) product.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == 0 {
		p.ID = s.state.nextID("products")
	} else if p.ID > s.state.lastID["products"] {
		s.state.lastID["products"] = p.ID
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}
	p.UpdatedAt = p.CreatedAt
	s.state.products[p.ID] = p
	return p
}

// SetProductPrice changes a product's live price
func (s *Store) SetProductPrice(id uint, price decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.state.products[id]; ok {
		p.Price = price
		p.UpdatedAt = s.now()
		s.state.products[id] = p
	}
}

// DeleteProduct removes a product from the catalogue
func (s *Store) DeleteProduct(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.state.products, id)
}

// OrderCount returns the number of stored orders
func (s *Store) OrderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.orders)
}
