package cart_test

import (
	"context"
	"testing"
	"time"

	"github.com/romawatches/storefront/internal/config"
	"github.com/romawatches/storefront/internal/domain/cart"
	"github.com/romawatches/storefront/internal/domain/product"
	"github.com/romawatches/storefront/internal/infrastructure/database/memory"
	"github.com/romawatches/storefront/internal/pkg/apperror"
	"github.com/romawatches/storefront/internal/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store     *memory.Store
	snapshots *cart.MemorySnapshotStore
	service   *cart.Service
	clock     time.Time
	a, b, c   product.Product
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		store: memory.NewStore(),
		clock: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	f.snapshots = cart.NewMemorySnapshotStore(func() time.Time { return f.clock })

	f.a = f.store.AddProduct(product.Product{Name: "Tissot PRX Powermatic 80", Brand: "Tissot", Price: decimal.NewFromInt(5_000_000)})
	f.b = f.store.AddProduct(product.Product{Name: "Casio Edifice EFR-526L", Brand: "Casio", Price: decimal.NewFromInt(3_000_000)})
	f.c = f.store.AddProduct(product.Product{Name: "Seiko Presage Cocktail Time", Brand: "Seiko", Price: decimal.NewFromInt(12_500_000)})

	cfg := &config.Config{Cart: config.CartConfig{SnapshotTTL: 30 * time.Minute}}
	f.service = cart.NewService(f.store.Carts(), f.store.Products(), f.snapshots, cfg, logger.Discard())
	return f
}

// fill puts product A x2 and B x1 in userID's cart
func (f *fixture) fill(t *testing.T, userID uint) {
	t.Helper()
	ctx := context.Background()
	for _, id := range []uint{f.a.ID, f.a.ID, f.b.ID} {
		_, err := f.service.AddItem(ctx, userID, id)
		require.NoError(t, err)
	}
}

func lines(c *cart.Cart) map[uint]int {
	out := map[uint]int{}
	for _, item := range c.Items {
		out[item.ProductID] = item.Quantity
	}
	return out
}

func TestAddItemMergesLines(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	count, err := f.service.AddItem(ctx, 1, f.a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = f.service.AddItem(ctx, 1, f.a.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	c, err := f.service.Get(ctx, 1)
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(10_000_000).Equal(c.Subtotal()))
}

func TestAddItemUnknownProduct(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.AddItem(ctx, 1, 999)
	assert.ErrorIs(t, err, product.ErrProductNotFound)

	count, err := f.service.Count(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCountWithoutCart(t *testing.T) {
	f := newFixture(t)

	count, err := f.service.Count(context.Background(), 42)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUpdateQuantity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.fill(t, 1)

	c, err := f.service.Get(ctx, 1)
	require.NoError(t, err)
	itemA := c.Items[0]

	update, err := f.service.UpdateQuantity(ctx, 1, itemA.ID, 3)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(15_000_000).Equal(update.ItemSubtotal))
	assert.True(t, decimal.NewFromInt(18_000_000).Equal(update.Total))
	assert.Equal(t, 4, update.ItemCount)
}

func TestUpdateQuantityRejectsNonPositive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.fill(t, 1)

	c, err := f.service.Get(ctx, 1)
	require.NoError(t, err)

	for _, quantity := range []int{0, -1} {
		_, err := f.service.UpdateQuantity(ctx, 1, c.Items[0].ID, quantity)
		assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	}

	after, err := f.service.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, lines(c), lines(after))
}

func TestOtherUsersItemsAreNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.fill(t, 1)
	_, err := f.service.AddItem(ctx, 2, f.c.ID)
	require.NoError(t, err)

	owner, err := f.service.Get(ctx, 1)
	require.NoError(t, err)
	other, err := f.service.Get(ctx, 2)
	require.NoError(t, err)
	foreign := owner.Items[0].ID

	_, err = f.service.UpdateQuantity(ctx, 2, foreign, 5)
	assert.ErrorIs(t, err, cart.ErrCartItemNotFound)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	_, err = f.service.RemoveItem(ctx, 2, foreign)
	assert.ErrorIs(t, err, cart.ErrCartItemNotFound)

	ownerAfter, err := f.service.Get(ctx, 1)
	require.NoError(t, err)
	otherAfter, err := f.service.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, lines(owner), lines(ownerAfter))
	assert.Equal(t, lines(other), lines(otherAfter))
}

func TestRemoveItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.fill(t, 1)

	c, err := f.service.Get(ctx, 1)
	require.NoError(t, err)

	totals, err := f.service.RemoveItem(ctx, 1, c.Items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 1, totals.ItemCount)
	assert.True(t, decimal.NewFromInt(3_000_000).Equal(totals.Subtotal))

	totals, err = f.service.RemoveItem(ctx, 1, c.Items[1].ID)
	require.NoError(t, err)
	assert.Zero(t, totals.ItemCount)

	// the cart itself survives
	empty, err := f.service.Get(ctx, 1)
	require.NoError(t, err)
	assert.NotZero(t, empty.ID)
	assert.True(t, empty.IsEmpty())
}

func TestBuyNowAndRestore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.fill(t, 1)

	count, err := f.service.BuyNow(ctx, 1, f.c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	c, err := f.service.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, map[uint]int{f.c.ID: 1}, lines(c))

	snapshot, err := f.snapshots.Load(ctx, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []cart.Line{{ProductID: f.a.ID, Quantity: 2}, {ProductID: f.b.ID, Quantity: 1}}, snapshot.Lines)

	count, err = f.service.Restore(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	c, err = f.service.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, map[uint]int{f.a.ID: 2, f.b.ID: 1}, lines(c))

	_, err = f.snapshots.Load(ctx, 1)
	assert.ErrorIs(t, err, cart.ErrSnapshotNotFound)
}

func TestBuyNowTwiceKeepsTheOriginalCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.fill(t, 1)

	_, err := f.service.BuyNow(ctx, 1, f.c.ID)
	require.NoError(t, err)
	_, err = f.service.BuyNow(ctx, 1, f.b.ID)
	require.NoError(t, err)

	_, err = f.service.Restore(ctx, 1)
	require.NoError(t, err)

	c, err := f.service.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, map[uint]int{f.a.ID: 2, f.b.ID: 1}, lines(c))
}

func TestBuyNowSavesItemsAddedAfterPreviousBuyNow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.fill(t, 1)

	_, err := f.service.BuyNow(ctx, 1, f.c.ID)
	require.NoError(t, err)
	_, err = f.service.AddItem(ctx, 1, f.b.ID)
	require.NoError(t, err)

	_, err = f.service.BuyNow(ctx, 1, f.a.ID)
	require.NoError(t, err)

	_, err = f.service.Restore(ctx, 1)
	require.NoError(t, err)

	c, err := f.service.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, map[uint]int{f.c.ID: 1, f.b.ID: 1}, lines(c))
}

func TestBuyNowSavesChangedBuyNowQuantity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.fill(t, 1)

	_, err := f.service.BuyNow(ctx, 1, f.c.ID)
	require.NoError(t, err)
	_, err = f.service.AddItem(ctx, 1, f.c.ID)
	require.NoError(t, err)

	_, err = f.service.BuyNow(ctx, 1, f.a.ID)
	require.NoError(t, err)

	snapshot, err := f.snapshots.Load(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []cart.Line{{ProductID: f.c.ID, Quantity: 2}}, snapshot.Lines)
}

func TestBuyNowUnknownProductLeavesCartAlone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.fill(t, 1)

	_, err := f.service.BuyNow(ctx, 1, 999)
	assert.ErrorIs(t, err, product.ErrProductNotFound)

	c, err := f.service.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, map[uint]int{f.a.ID: 2, f.b.ID: 1}, lines(c))

	_, err = f.snapshots.Load(ctx, 1)
	assert.ErrorIs(t, err, cart.ErrSnapshotNotFound)
}

func TestBuyNowWithEmptyCartSavesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.BuyNow(ctx, 1, f.c.ID)
	require.NoError(t, err)

	_, err = f.service.Restore(ctx, 1)
	assert.ErrorIs(t, err, cart.ErrNothingToRestore)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestRestoreSkipsDeletedProducts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.fill(t, 1)

	_, err := f.service.BuyNow(ctx, 1, f.c.ID)
	require.NoError(t, err)
	f.store.DeleteProduct(f.b.ID)

	count, err := f.service.Restore(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSnapshotExpires(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.fill(t, 1)

	_, err := f.service.BuyNow(ctx, 1, f.c.ID)
	require.NoError(t, err)

	f.clock = f.clock.Add(31 * time.Minute)

	_, err = f.service.Restore(ctx, 1)
	assert.ErrorIs(t, err, cart.ErrNothingToRestore)
}

func TestRestoreIfEmptyNeverMerges(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.fill(t, 1)

	_, err := f.service.BuyNow(ctx, 1, f.c.ID)
	require.NoError(t, err)

	restored, err := f.service.RestoreIfEmpty(ctx, 1)
	require.NoError(t, err)
	assert.False(t, restored)

	c, err := f.service.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, map[uint]int{f.c.ID: 1}, lines(c))

	_, err = f.snapshots.Load(ctx, 1)
	assert.NoError(t, err, "snapshot kept for a later restore")
}

func TestClearDropsSnapshot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.fill(t, 1)

	_, err := f.service.BuyNow(ctx, 1, f.c.ID)
	require.NoError(t, err)
	require.NoError(t, f.service.Clear(ctx, 1))

	count, err := f.service.Count(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, count)

	restored, err := f.service.RestoreIfEmpty(ctx, 1)
	require.NoError(t, err)
	assert.False(t, restored)
}

func TestRestoreIfEmptyFillsEmptyCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.fill(t, 1)

	count, err := f.service.BuyNow(ctx, 1, f.c.ID)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	c, err := f.service.Get(ctx, 1)
	require.NoError(t, err)
	_, err = f.service.RemoveItem(ctx, 1, c.Items[0].ID)
	require.NoError(t, err)

	restored, err := f.service.RestoreIfEmpty(ctx, 1)
	require.NoError(t, err)
	assert.True(t, restored)

	c, err = f.service.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, map[uint]int{f.a.ID: 2, f.b.ID: 1}, lines(c))
}

func TestCartUsesLivePrices(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.fill(t, 1)

	f.store.SetProductPrice(f.a.ID, decimal.NewFromInt(6_000_000))

	c, err := f.service.Get(ctx, 1)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(15_000_000).Equal(c.Subtotal()))
}
