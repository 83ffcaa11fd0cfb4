// internal/pkg/email/notifier.go
package email

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/romawatches/storefront/internal/config"
	"github.com/romawatches/storefront/internal/domain/checkout"
	"github.com/romawatches/storefront/internal/domain/order"
	"github.com/romawatches/storefront/internal/domain/user"
	"github.com/romawatches/storefront/internal/pkg/pdf"
	"github.com/sirupsen/logrus"
)

const deliveryTimeout = 30 * time.Second

// OrderFinder loads an order with its items and products
type OrderFinder interface {
	FindByID(ctx context.Context, id uint) (*order.Order, error)
}

// UserFinder loads the customer an order belongs to
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*user.User, error)
}

var statusMessages = map[order.OrderStatus]string{
	order.OrderStatusUnconfirmed: "Đơn hàng đang chờ bạn xác nhận chuyển khoản.",
	order.OrderStatusPending:     "Chúng tôi đã xác nhận đơn hàng và đang chuẩn bị giao.",
	order.OrderStatusApproved:    "Đơn hàng đang được giao tới bạn.",
	order.OrderStatusCompleted:   "Đơn hàng đã được giao. Cảm ơn bạn đã mua sắm tại RomaWatches.",
	order.OrderStatusCancelled:   "Đơn hàng đã bị hủy. Vui lòng liên hệ chúng tôi nếu có thắc mắc.",
}

// OrderNotifier emails customers when they place an order and when its status changes.
// Emails are sent in the background; Wait blocks until in-flight deliveries finish.
type OrderNotifier struct {
	emails *EmailService
	orders OrderFinder
	users  UserFinder
	config *config.Config
	logger *logrus.Logger
	wg     sync.WaitGroup
}

// NewOrderNotifier creates a new order notifier
func NewOrderNotifier(emails *EmailService, orders OrderFinder, users UserFinder, cfg *config.Config, logger *logrus.Logger) *OrderNotifier {
	return &OrderNotifier{
		emails: emails,
		orders: orders,
		users:  users,
		config: cfg,
		logger: logger,
	}
}

// OrderPlaced sends the order confirmation
func (n *OrderNotifier) OrderPlaced(ctx context.Context, o *order.Order) {
	orderID := o.ID
	n.dispatch(ctx, orderID, EmailTypeOrderConfirmation, func(ctx context.Context) error {
		return n.sendOrderConfirmation(ctx, orderID)
	})
}

// StatusChanged sends the status update
func (n *OrderNotifier) StatusChanged(ctx context.Context, o *order.Order, from order.OrderStatus) {
	orderID := o.ID
	n.dispatch(ctx, orderID, EmailTypeOrderStatusUpdate, func(ctx context.Context) error {
		return n.sendStatusUpdate(ctx, orderID, from)
	})
}

// Wait blocks until every queued email has been sent or has failed
func (n *OrderNotifier) Wait() {
	n.wg.Wait()
}

func (n *OrderNotifier) dispatch(ctx context.Context, orderID uint, kind EmailType, send func(ctx context.Context) error) {
	if !n.emails.Enabled() {
		return
	}

	// The request context ends with the response
	ctx = context.WithoutCancel(ctx)

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		ctx, cancel := context.WithTimeout(ctx, deliveryTimeout)
		defer cancel()

		if err := send(ctx); err != nil {
			n.logger.WithError(err).WithFields(logrus.Fields{
				"order_id":   orderID,
				"email_type": kind,
			}).Error("Failed to send order email")
			return
		}

		n.logger.WithFields(logrus.Fields{
			"order_id":   orderID,
			"email_type": kind,
		}).Info("Order email sent")
	}()
}

func (n *OrderNotifier) load(ctx context.Context, orderID uint) (*order.Order, *user.User, error) {
	o, err := n.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load order %d: %w", orderID, err)
	}
	customer, err := n.users.FindByID(ctx, o.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load customer %d: %w", o.UserID, err)
	}
	return o, customer, nil
}

func (n *OrderNotifier) sendOrderConfirmation(ctx context.Context, orderID uint) error {
	o, customer, err := n.load(ctx, orderID)
	if err != nil {
		return err
	}

	data := OrderConfirmationData{
		EmailTemplateData: EmailTemplateData{UserName: displayName(customer), UserEmail: customer.Email},
		OrderNumber:       o.Code(),
		OrderDate:         o.CreatedAt.Format("02/01/2006 15:04"),
		OrderURL:          n.orderURL(o),
		StatusLabel:       o.Status.Label(),
		PaymentMethod:     o.PaymentMethod.Label(),
		Items:             make([]OrderItem, 0, len(o.Items)),
		Subtotal:          pdf.FormatVND(o.Subtotal()),
		ShippingFee:       pdf.FormatVND(o.ShippingFee),
		OrderTotal:        pdf.FormatVND(o.TotalAmount),
		Shipping: Address{
			FullName: o.FullName,
			Phone:    o.PhoneNumber,
			Address:  o.Address,
			Ward:     o.Ward,
			Province: o.Province,
		},
	}

	for i := range o.Items {
		item := &o.Items[i]
		data.Items = append(data.Items, OrderItem{
			Name:     item.Product.Name,
			Brand:    item.Product.Brand,
			Quantity: item.Quantity,
			Price:    pdf.FormatVND(item.Price),
			Total:    pdf.FormatVND(item.Subtotal()),
		})
	}

	if o.AwaitsBankTransfer() {
		p := checkout.NewPaymentInstructions(n.config.Checkout, o)
		data.Transfer = &TransferDetails{
			QRCodeURL:     p.QRCodeURL,
			AccountNumber: p.AccountNumber,
			AccountHolder: p.AccountHolder,
			BankCode:      p.BankCode,
			Amount:        pdf.FormatVND(p.Amount),
			Description:   p.Description,
		}
	}

	return n.emails.SendOrderConfirmationEmail(ctx, data)
}

func (n *OrderNotifier) sendStatusUpdate(ctx context.Context, orderID uint, from order.OrderStatus) error {
	o, customer, err := n.load(ctx, orderID)
	if err != nil {
		return err
	}

	return n.emails.SendOrderStatusUpdateEmail(ctx, OrderStatusUpdateData{
		EmailTemplateData: EmailTemplateData{UserName: displayName(customer), UserEmail: customer.Email},
		OrderNumber:       o.Code(),
		PreviousStatus:    from.Label(),
		Status:            o.Status.Label(),
		StatusMessage:     statusMessages[o.Status],
		OrderURL:          n.orderURL(o),
	})
}

func (n *OrderNotifier) orderURL(o *order.Order) string {
	return fmt.Sprintf("%s/orders/%d", strings.TrimRight(n.config.Email.BaseURL, "/"), o.ID)
}

func displayName(u *user.User) string {
	if name := u.FullName(); name != "" {
		return name
	}
	return u.Email
}
