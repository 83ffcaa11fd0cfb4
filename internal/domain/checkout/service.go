// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/romawatches/storefront/internal/config"
	"github.com/romawatches/storefront/internal/domain/cart"
	"github.com/romawatches/storefront/internal/domain/order"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Store is the unit of work a checkout runs in
type Store interface {
	Carts() cart.Repository
	Orders() order.Repository
	// Transaction runs fn against a Store whose writes commit together or not at all
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

// Service turns carts into orders
type Service struct {
	store    Store
	carts    *cart.Service
	notifier order.Notifier
	validate *validator.Validate
	config   *config.Config
	logger   *logrus.Logger
}

// NewService creates a new checkout service
func NewService(store Store, carts *cart.Service, cfg *config.Config, logger *logrus.Logger) *Service {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	return &Service{
		store:    store,
		carts:    carts,
		notifier: order.NopNotifier,
		validate: validate,
		config:   cfg,
		logger:   logger,
	}
}

// WithNotifier sends order confirmations through n
func (s *Service) WithNotifier(n order.Notifier) *Service {
	s.notifier = n
	return s
}

// ShippingInfo is where the order is delivered
type ShippingInfo struct {
	FullName    string `json:"fullName" validate:"required,max=200"`
	PhoneNumber string `json:"phone" validate:"required,max=20"`
	Province    string `json:"province" validate:"required,max=100"`
	Ward        string `json:"ward" validate:"required,max=100"`
	Address     string `json:"address" validate:"required,max=500"`
}

func (i *ShippingInfo) normalize() {
	i.FullName = strings.TrimSpace(i.FullName)
	i.PhoneNumber = strings.TrimSpace(i.PhoneNumber)
	i.Province = strings.TrimSpace(i.Province)
	i.Ward = strings.TrimSpace(i.Ward)
	i.Address = strings.TrimSpace(i.Address)
}

// Request represents a checkout submission
type Request struct {
	ShippingInfo
	PaymentMethod string `json:"paymentMethod"`
}

// Summary is the checkout page view of the cart
type Summary struct {
	Items       []cart.CartItem `json:"items"`
	ItemCount   int             `json:"itemCount"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	ShippingFee decimal.Decimal `json:"shippingFee"`
	Total       decimal.Decimal `json:"total"`
	Restored    bool            `json:"restored"`
}

// Result is a placed order plus, for bank transfers, how to pay it
type Result struct {
	Order   *order.Order
	Payment *PaymentInstructions
}

// Summary returns the cart about to be ordered. A cart emptied by an abandoned
// "buy now" is restored first.
func (s *Service) Summary(ctx context.Context, userID uint) (*Summary, error) {
	restored, err := s.carts.RestoreIfEmpty(ctx, userID)
	if err != nil {
		return nil, err
	}

	c, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	fee := s.shippingFee(c)
	subtotal := c.Subtotal()
	return &Summary{
		Items:       c.Items,
		ItemCount:   c.ItemCount(),
		Subtotal:    subtotal,
		ShippingFee: fee,
		Total:       subtotal.Add(fee),
		Restored:    restored,
	}, nil
}

// Process places an order from the user's cart
func (s *Service) Process(ctx context.Context, userID uint, req Request) (*Result, error) {
	info := req.ShippingInfo
	info.normalize()
	if err := s.validateShipping(&info); err != nil {
		return nil, err
	}

	method, err := order.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	var placed *order.Order
	err = s.store.Transaction(ctx, func(tx Store) error {
		c, err := tx.Carts().FindByUser(ctx, userID)
		if err != nil {
			return err
		}
		if c.IsEmpty() {
			return ErrEmptyCart
		}

		o := s.buildOrder(userID, info, method, c)
		if err := tx.Orders().Create(ctx, o); err != nil {
			return err
		}

		// Bank transfer carts stay until the customer confirms payment
		if method != order.PaymentMethodBankTransfer {
			if err := tx.Carts().ClearItems(ctx, c.ID); err != nil {
				return err
			}
		}

		placed = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	if method != order.PaymentMethodBankTransfer {
		if err := s.carts.DiscardSnapshot(ctx, userID); err != nil {
			s.logger.WithError(err).WithField("user_id", userID).Error("Failed to discard saved cart after checkout")
		}
	}

	s.logger.WithFields(logrus.Fields{
		"order_id":       placed.ID,
		"user_id":        userID,
		"payment_method": placed.PaymentMethod,
		"status":         placed.Status,
		"total":          placed.TotalAmount.String(),
	}).Info("Order placed")

	s.notifier.OrderPlaced(ctx, placed)

	result := &Result{Order: placed}
	if method == order.PaymentMethodBankTransfer {
		result.Payment = NewPaymentInstructions(s.config.Checkout, placed)
	}
	return result, nil
}

// ConfirmPayment records that the customer has made the bank transfer for orderID.
// The cart and any saved cart are cleared on every call.
func (s *Service) ConfirmPayment(ctx context.Context, userID, orderID uint) (*order.Order, error) {
	o, err := s.store.Orders().FindForUser(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if o.AwaitsBankTransfer() {
		change := order.OrderStatusHistory{Comment: "Customer confirmed bank transfer", CreatedBy: userID}
		err := s.store.Orders().UpdateStatus(ctx, o.ID, order.OrderStatusUnconfirmed, order.OrderStatusPending, change)
		switch {
		case err == nil:
			o.Status = order.OrderStatusPending
			s.logger.WithFields(logrus.Fields{
				"order_id": o.ID,
				"user_id":  userID,
			}).Info("Bank transfer confirmed by customer")
		case errors.Is(err, order.ErrStatusChanged):
			// confirmed concurrently
			if o, err = s.store.Orders().FindForUser(ctx, userID, orderID); err != nil {
				return nil, err
			}
		default:
			return nil, err
		}
	}

	if err := s.carts.Clear(ctx, userID); err != nil {
		return nil, err
	}
	return o, nil
}

// PaymentInstructions re-issues the transfer details of an order still awaiting payment
func (s *Service) PaymentInstructions(ctx context.Context, userID, orderID uint) (*PaymentInstructions, error) {
	o, err := s.store.Orders().FindForUser(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if !o.AwaitsBankTransfer() {
		return nil, ErrPaymentNotAwaited
	}
	return NewPaymentInstructions(s.config.Checkout, o), nil
}

func (s *Service) buildOrder(userID uint, info ShippingInfo, method order.PaymentMethod, c *cart.Cart) *order.Order {
	fee := s.shippingFee(c)
	o := &order.Order{
		UserID:        userID,
		FullName:      info.FullName,
		PhoneNumber:   info.PhoneNumber,
		Province:      info.Province,
		Ward:          info.Ward,
		Address:       info.Address,
		PaymentMethod: method,
		Status:        method.InitialStatus(),
		ShippingFee:   fee,
		TotalAmount:   c.Subtotal().Add(fee),
		Items:         make([]order.OrderItem, 0, len(c.Items)),
	}

	for _, item := range c.Items {
		o.Items = append(o.Items, order.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Product.Price,
		})
	}

	o.AddStatusHistory("", o.Status, fmt.Sprintf("Order placed with %s", method), userID)
	return o
}

// shippingFee is a flat configured fee
func (s *Service) shippingFee(_ *cart.Cart) decimal.Decimal {
	return s.config.Checkout.ShippingFee
}

func (s *Service) validateShipping(info *ShippingInfo) error {
	err := s.validate.Struct(info)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return ErrInvalidShippingInfo
	}

	first := fieldErrs[0]
	switch first.Tag() {
	case "required":
		return ErrInvalidShippingInfo.WithMessage(fmt.Sprintf("%s is required", first.Field()))
	case "max":
		return ErrInvalidShippingInfo.WithMessage(fmt.Sprintf("%s must be at most %s characters", first.Field(), first.Param()))
	default:
		return ErrInvalidShippingInfo.WithMessage(fmt.Sprintf("%s is invalid", first.Field()))
	}
}
