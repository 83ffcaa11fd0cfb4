// internal/infrastructure/database/memory/repositories.go
package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/romawatches/storefront/internal/domain/cart"
	"github.com/romawatches/storefront/internal/domain/order"
	"github.com/romawatches/storefront/internal/domain/product"
	"github.com/romawatches/storefront/internal/domain/user"
)

// ProductRepository is the in-memory product.Repository
type ProductRepository struct {
	store *Store
}

func (r *ProductRepository) FindByID(_ context.Context, id uint) (*product.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.state.products[id]
	if !ok {
		return nil, product.ErrProductNotFound
	}
	return &p, nil
}

func (r *ProductRepository) List(_ context.Context, filter product.Filter) ([]product.Product, error) {
	return product.Apply(r.all(), filter), nil
}

func (r *ProductRepository) Latest(_ context.Context, limit int) ([]product.Product, error) {
	products := product.Apply(r.all(), product.Filter{Sort: product.SortNewest})
	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}
	return products, nil
}

func (r *ProductRepository) all() []product.Product {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	products := make([]product.Product, 0, len(r.store.state.products))
	for _, p := range r.store.state.products {
		products = append(products, p)
	}
	return products
}

// CartRepository is the in-memory cart.Repository
type CartRepository struct {
	store *Store
}

func (r *CartRepository) FindByUser(_ context.Context, userID uint) (*cart.Cart, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, ok := r.cartOf(userID)
	if !ok {
		return &cart.Cart{UserID: userID, Items: []cart.CartItem{}}, nil
	}
	c.Items = r.itemsOf(c.ID)
	return &c, nil
}

func (r *CartRepository) GetOrCreate(_ context.Context, userID uint) (*cart.Cart, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if c, ok := r.cartOf(userID); ok {
		return &c, nil
	}

	now := r.store.now()
	c := cart.Cart{
		ID:        r.store.state.nextID("carts"),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.store.state.carts[c.ID] = c
	return &c, nil
}

func (r *CartRepository) FindItem(_ context.Context, userID, itemID uint) (*cart.CartItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.state.cartItems[itemID]
	if !ok || r.store.state.carts[item.CartID].UserID != userID {
		return nil, cart.ErrCartItemNotFound
	}
	item.Product = r.store.state.products[item.ProductID]
	return &item, nil
}

func (r *CartRepository) IncrementItem(_ context.Context, cartID, productID uint, delta int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.state.carts[cartID]; !ok {
		return fmt.Errorf("cart %d does not exist", cartID)
	}

	now := r.store.now()
	for id, item := range r.store.state.cartItems {
		if item.CartID == cartID && item.ProductID == productID {
			item.Quantity += delta
			item.UpdatedAt = now
			r.store.state.cartItems[id] = item
			return nil
		}
	}

	r.insertItem(cartID, productID, delta)
	return nil
}

func (r *CartRepository) SetQuantity(_ context.Context, itemID uint, quantity int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.state.cartItems[itemID]
	if !ok {
		return cart.ErrCartItemNotFound
	}
	item.Quantity = quantity
	item.UpdatedAt = r.store.now()
	r.store.state.cartItems[itemID] = item
	return nil
}

func (r *CartRepository) DeleteItem(_ context.Context, itemID uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.state.cartItems[itemID]; !ok {
		return cart.ErrCartItemNotFound
	}
	delete(r.store.state.cartItems, itemID)
	return nil
}

func (r *CartRepository) ReplaceItems(_ context.Context, cartID uint, lines []cart.Line) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.clear(cartID)
	for _, line := range lines {
		r.insertItem(cartID, line.ProductID, line.Quantity)
	}
	return nil
}

func (r *CartRepository) ClearItems(_ context.Context, cartID uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.clear(cartID)
	return nil
}

func (r *CartRepository) cartOf(userID uint) (cart.Cart, bool) {
	for _, c := range r.store.state.carts {
		if c.UserID == userID {
			return c, true
		}
	}
	return cart.Cart{}, false
}

func (r *CartRepository) itemsOf(cartID uint) []cart.CartItem {
	items := []cart.CartItem{}
	for _, item := range r.store.state.cartItems {
		if item.CartID == cartID {
			item.Product = r.store.state.products[item.ProductID]
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func (r *CartRepository) insertItem(cartID, productID uint, quantity int) {
	now := r.store.now()
	item := cart.CartItem{
		ID:        r.store.state.nextID("cart_items"),
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.store.state.cartItems[item.ID] = item
}

func (r *CartRepository) clear(cartID uint) {
	for id, item := range r.store.state.cartItems {
		if item.CartID == cartID {
			delete(r.store.state.cartItems, id)
		}
	}
}

// OrderRepository is the in-memory order.Repository
type OrderRepository struct {
	store *Store
}

func (r *OrderRepository) Create(_ context.Context, o *order.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.store.now()
	o.ID = r.store.state.nextID("orders")
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = now
	for i := range o.Items {
		o.Items[i].ID = r.store.state.nextID("order_items")
		o.Items[i].OrderID = o.ID
		o.Items[i].CreatedAt = now
	}
	for i := range o.StatusHistory {
		o.StatusHistory[i].ID = r.store.state.nextID("order_status_history")
		o.StatusHistory[i].OrderID = o.ID
	}

	r.store.state.orders[o.ID] = cloneOrder(*o)
	return nil
}

func (r *OrderRepository) FindByID(_ context.Context, id uint) (*order.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	o, ok := r.store.state.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	return r.detailed(o), nil
}

func (r *OrderRepository) FindForUser(_ context.Context, userID, id uint) (*order.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	o, ok := r.store.state.orders[id]
	if !ok || o.UserID != userID {
		return nil, order.ErrOrderNotFound
	}
	return r.detailed(o), nil
}

func (r *OrderRepository) ListForUser(_ context.Context, userID uint, statuses []order.OrderStatus) ([]order.Order, error) {
	return r.list(func(o *order.Order) bool {
		return o.UserID == userID && (len(statuses) == 0 || slices.Contains(statuses, o.Status))
	}), nil
}

func (r *OrderRepository) Search(_ context.Context, query string) ([]order.Order, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	return r.list(func(o *order.Order) bool {
		if q == "" {
			return true
		}
		return strings.Contains(strings.ToLower(o.FullName), q) ||
			strings.Contains(strings.ToLower(o.Code()), q)
	}), nil
}

func (r *OrderRepository) UpdateStatus(_ context.Context, id uint, from, to order.OrderStatus, change order.OrderStatusHistory) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	o, ok := r.store.state.orders[id]
	if !ok {
		return order.ErrOrderNotFound
	}
	if o.Status != from {
		return order.ErrStatusChanged
	}

	now := r.store.now()
	change.ID = r.store.state.nextID("order_status_history")
	change.OrderID = id
	change.FromStatus = from
	change.Status = to
	if change.CreatedAt.IsZero() {
		change.CreatedAt = now
	}

	o = cloneOrder(o)
	o.Status = to
	o.UpdatedAt = now
	o.StatusHistory = append(o.StatusHistory, change)
	r.store.state.orders[id] = o
	return nil
}

func (r *OrderRepository) list(match func(o *order.Order) bool) []order.Order {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	orders := []order.Order{}
	for _, o := range r.store.state.orders {
		if match(&o) {
			orders = append(orders, *r.detailed(o))
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID > orders[j].ID
	})
	return orders
}

func (r *OrderRepository) detailed(o order.Order) *order.Order {
	o = cloneOrder(o)
	for i := range o.Items {
		o.Items[i].Product = r.store.state.products[o.Items[i].ProductID]
	}
	return &o
}

// UserRepository is the in-memory user.Repository
type UserRepository struct {
	store *Store
}

func (r *UserRepository) FindByID(_ context.Context, id uint) (*user.User, error) {
	return r.first(func(u *user.User) bool { return u.ID == id })
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*user.User, error) {
	return r.first(func(u *user.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *UserRepository) FindByGoogleID(_ context.Context, googleID string) (*user.User, error) {
	return r.first(func(u *user.User) bool { return u.GoogleID != nil && *u.GoogleID == googleID })
}

func (r *UserRepository) Create(_ context.Context, u *user.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.state.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return user.ErrEmailTaken
		}
	}

	now := r.store.now()
	u.ID = r.store.state.nextID("users")
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.Role == "" {
		u.Role = user.RoleUser
	}
	r.store.state.users[u.ID] = *u
	return nil
}

func (r *UserRepository) Update(_ context.Context, u *user.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.state.users[u.ID]; !ok {
		return user.ErrUserNotFound
	}
	u.UpdatedAt = r.store.now()
	r.store.state.users[u.ID] = *u
	return nil
}

func (r *UserRepository) first(match func(u *user.User) bool) (*user.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.state.users {
		if match(&u) {
			return &u, nil
		}
	}
	return nil, user.ErrUserNotFound
}
