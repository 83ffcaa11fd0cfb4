package checkout_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/romawatches/storefront/internal/config"
	"github.com/romawatches/storefront/internal/domain/cart"
	"github.com/romawatches/storefront/internal/domain/checkout"
	"github.com/romawatches/storefront/internal/domain/order"
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
	carts     *cart.Service
	service   *checkout.Service
	a, b, c   product.Product
}

func testConfig() *config.Config {
	return &config.Config{
		Cart: config.CartConfig{SnapshotTTL: 30 * time.Minute},
		Checkout: config.CheckoutConfig{
			ShippingFee:         decimal.Zero,
			BankAccountNumber:   "62688888888686",
			BankAccountDisplay:  "626 8888 8888 686",
			BankAccountHolder:   "VU CHI THANH",
			BankCode:            "MB",
			QRBaseURL:           "https://qr.sepay.vn/img",
			TransferDescription: "thanh toan don hang RomaWatches",
		},
	}
}

func newFixture(t *testing.T, cfg *config.Config) *fixture {
	t.Helper()

	f := &fixture{
		store:     memory.NewStore(),
		snapshots: cart.NewMemorySnapshotStore(nil),
	}
	f.a = f.store.AddProduct(product.Product{Name: "Tissot PRX", Brand: "Tissot", Price: decimal.NewFromInt(5_000_000)})
	f.b = f.store.AddProduct(product.Product{Name: "Casio Edifice", Brand: "Casio", Price: decimal.NewFromInt(3_000_000)})
	f.c = f.store.AddProduct(product.Product{Name: "Seiko Presage", Brand: "Seiko", Price: decimal.NewFromInt(12_500_000)})

	f.carts = cart.NewService(f.store.Carts(), f.store.Products(), f.snapshots, cfg, logger.Discard())
	f.service = checkout.NewService(f.store, f.carts, cfg, logger.Discard())
	return f
}

func (f *fixture) fill(t *testing.T, userID uint) {
	t.Helper()
	for _, id := range []uint{f.a.ID, f.a.ID, f.b.ID} {
		_, err := f.carts.AddItem(context.Background(), userID, id)
		require.NoError(t, err)
	}
}

func shipping(method string) checkout.Request {
	return checkout.Request{
		ShippingInfo: checkout.ShippingInfo{
			FullName:    "Nguyễn Văn An",
			PhoneNumber: "0901234567",
			Province:    "Hà Nội",
			Ward:        "Phường Hàng Bạc",
			Address:     "12 Hàng Bạc",
		},
		PaymentMethod: method,
	}
}

func TestProcessEmptyCart(t *testing.T) {
	f := newFixture(t, testConfig())

	_, err := f.service.Process(context.Background(), 1, shipping("COD"))
	assert.ErrorIs(t, err, checkout.ErrEmptyCart)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Zero(t, f.store.OrderCount())
}

func TestProcessCashOnDelivery(t *testing.T) {
	f := newFixture(t, testConfig())
	ctx := context.Background()
	f.fill(t, 1)

	result, err := f.service.Process(ctx, 1, shipping("COD"))
	require.NoError(t, err)
	assert.Nil(t, result.Payment)

	placed := result.Order
	assert.Equal(t, order.OrderStatusApproved, placed.Status)
	assert.Equal(t, order.PaymentMethodCOD, placed.PaymentMethod)
	assert.True(t, decimal.NewFromInt(13_000_000).Equal(placed.TotalAmount), placed.TotalAmount.String())
	assert.True(t, placed.ShippingFee.IsZero())

	stored, err := f.store.Orders().FindForUser(ctx, 1, placed.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 2)
	prices := map[uint]decimal.Decimal{}
	for _, item := range stored.Items {
		prices[item.ProductID] = item.Price
	}
	assert.True(t, decimal.NewFromInt(5_000_000).Equal(prices[f.a.ID]))
	assert.True(t, decimal.NewFromInt(3_000_000).Equal(prices[f.b.ID]))
	require.Len(t, stored.StatusHistory, 1)
	assert.Equal(t, order.OrderStatusApproved, stored.StatusHistory[0].Status)

	count, err := f.carts.Count(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestOrderKeepsPriceAtCheckout(t *testing.T) {
	f := newFixture(t, testConfig())
	ctx := context.Background()
	f.fill(t, 1)

	result, err := f.service.Process(ctx, 1, shipping("InStore"))
	require.NoError(t, err)
	assert.Equal(t, order.OrderStatusApproved, result.Order.Status)

	f.store.SetProductPrice(f.a.ID, decimal.NewFromInt(9_900_000))

	stored, err := f.store.Orders().FindByID(ctx, result.Order.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(13_000_000).Equal(stored.TotalAmount))
	assert.True(t, decimal.NewFromInt(13_000_000).Equal(stored.Subtotal()))
}

func TestProcessBankTransfer(t *testing.T) {
	f := newFixture(t, testConfig())
	ctx := context.Background()
	f.fill(t, 1)

	result, err := f.service.Process(ctx, 1, shipping("banktransfer"))
	require.NoError(t, err)

	placed := result.Order
	assert.Equal(t, order.OrderStatusUnconfirmed, placed.Status)
	assert.Equal(t, order.PaymentMethodBankTransfer, placed.PaymentMethod)

	require.NotNil(t, result.Payment)
	ref := placed.Reference()
	assert.Equal(t, "626 8888 8888 686", result.Payment.AccountNumber)
	assert.Equal(t, "VU CHI THANH", result.Payment.AccountHolder)
	assert.Equal(t, "thanh toan don hang RomaWatches "+ref, result.Payment.Description)
	assert.Equal(t,
		"https://qr.sepay.vn/img?acc=62688888888686&bank=MB&amount=13000000&des=thanh%20toan%20don%20hang%20RomaWatches%20"+ref,
		result.Payment.QRCodeURL)

	count, err := f.carts.Count(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, count, "bank transfer carts stay until payment is confirmed")
}

func TestConfirmPayment(t *testing.T) {
	f := newFixture(t, testConfig())
	ctx := context.Background()
	f.fill(t, 1)

	result, err := f.service.Process(ctx, 1, shipping("BankTransfer"))
	require.NoError(t, err)

	_, err = f.service.ConfirmPayment(ctx, 2, result.Order.ID)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)

	confirmed, err := f.service.ConfirmPayment(ctx, 1, result.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.OrderStatusPending, confirmed.Status)

	count, err := f.carts.Count(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, count)

	again, err := f.service.ConfirmPayment(ctx, 1, result.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.OrderStatusPending, again.Status)

	stored, err := f.store.Orders().FindByID(ctx, result.Order.ID)
	require.NoError(t, err)
	transitions := 0
	for _, h := range stored.StatusHistory {
		if h.Status == order.OrderStatusPending {
			transitions++
		}
	}
	assert.Equal(t, 1, transitions)

	_, err = f.service.PaymentInstructions(ctx, 1, result.Order.ID)
	assert.ErrorIs(t, err, checkout.ErrPaymentNotAwaited)
}

func TestConfirmPaymentLeavesOtherOrdersAlone(t *testing.T) {
	f := newFixture(t, testConfig())
	ctx := context.Background()
	f.fill(t, 1)

	result, err := f.service.Process(ctx, 1, shipping("COD"))
	require.NoError(t, err)

	confirmed, err := f.service.ConfirmPayment(ctx, 1, result.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.OrderStatusApproved, confirmed.Status)
}

func TestPaymentInstructions(t *testing.T) {
	f := newFixture(t, testConfig())
	ctx := context.Background()
	f.fill(t, 1)

	result, err := f.service.Process(ctx, 1, shipping("BankTransfer"))
	require.NoError(t, err)

	payment, err := f.service.PaymentInstructions(ctx, 1, result.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Payment, payment)

	_, err = f.service.PaymentInstructions(ctx, 2, result.Order.ID)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestProcessValidation(t *testing.T) {
	f := newFixture(t, testConfig())
	ctx := context.Background()
	f.fill(t, 1)

	blank := shipping("COD")
	blank.Ward = "   "
	_, err := f.service.Process(ctx, 1, blank)
	assert.ErrorIs(t, err, checkout.ErrInvalidShippingInfo)
	assert.EqualError(t, err, "ward is required")

	long := shipping("COD")
	long.PhoneNumber = "090123456789012345678"
	_, err = f.service.Process(ctx, 1, long)
	assert.ErrorIs(t, err, checkout.ErrInvalidShippingInfo)
	assert.EqualError(t, err, "phone must be at most 20 characters")

	_, err = f.service.Process(ctx, 1, shipping("Crypto"))
	assert.ErrorIs(t, err, order.ErrInvalidPaymentMethod)

	assert.Zero(t, f.store.OrderCount())
	count, err := f.carts.Count(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestProcessTrimsShippingInfo(t *testing.T) {
	f := newFixture(t, testConfig())
	f.fill(t, 1)

	req := shipping("COD")
	req.FullName = "  Nguyễn Văn An  "
	result, err := f.service.Process(context.Background(), 1, req)
	require.NoError(t, err)
	assert.Equal(t, "Nguyễn Văn An", result.Order.FullName)
}

func TestProcessAddsShippingFee(t *testing.T) {
	cfg := testConfig()
	cfg.Checkout.ShippingFee = decimal.NewFromInt(30_000)
	f := newFixture(t, cfg)
	f.fill(t, 1)

	result, err := f.service.Process(context.Background(), 1, shipping("COD"))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(13_030_000).Equal(result.Order.TotalAmount))
	assert.True(t, decimal.NewFromInt(30_000).Equal(result.Order.ShippingFee))
}

func TestProcessDiscardsSnapshot(t *testing.T) {
	f := newFixture(t, testConfig())
	ctx := context.Background()
	f.fill(t, 1)

	_, err := f.carts.BuyNow(ctx, 1, f.c.ID)
	require.NoError(t, err)

	result, err := f.service.Process(ctx, 1, shipping("COD"))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(12_500_000).Equal(result.Order.TotalAmount))

	_, err = f.snapshots.Load(ctx, 1)
	assert.ErrorIs(t, err, cart.ErrSnapshotNotFound)
}

func TestSummaryRestoresAbandonedBuyNow(t *testing.T) {
	f := newFixture(t, testConfig())
	ctx := context.Background()
	f.fill(t, 1)

	_, err := f.carts.BuyNow(ctx, 1, f.c.ID)
	require.NoError(t, err)
	require.NoError(t, f.store.Carts().ClearItems(ctx, 1))

	summary, err := f.service.Summary(ctx, 1)
	require.NoError(t, err)
	assert.True(t, summary.Restored)
	assert.Equal(t, 3, summary.ItemCount)
	assert.True(t, decimal.NewFromInt(13_000_000).Equal(summary.Total))

	_, err = f.service.Summary(ctx, 2)
	assert.ErrorIs(t, err, checkout.ErrEmptyCart)
}

type failingStore struct {
	checkout.Store
}

type failingOrders struct {
	order.Repository
}

func (failingOrders) Create(context.Context, *order.Order) error {
	return errors.New("connection reset")
}

func (s failingStore) Orders() order.Repository { return failingOrders{s.Store.Orders()} }

func (s failingStore) Transaction(ctx context.Context, fn func(tx checkout.Store) error) error {
	return s.Store.Transaction(ctx, func(tx checkout.Store) error {
		return fn(failingStore{tx})
	})
}

func TestProcessRollsBackOnFailure(t *testing.T) {
	f := newFixture(t, testConfig())
	ctx := context.Background()
	f.fill(t, 1)

	svc := checkout.NewService(failingStore{f.store}, f.carts, testConfig(), logger.Discard())
	_, err := svc.Process(ctx, 1, shipping("COD"))
	require.Error(t, err)
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))

	assert.Zero(t, f.store.OrderCount())
	count, err := f.carts.Count(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
