// internal/domain/order/notifier.go
package order

import "context"

// Notifier tells customers what happened to their orders. Calls must not block
// the request: implementations deliver in the background and log their failures.
type Notifier interface {
	OrderPlaced(ctx context.Context, o *Order)
	StatusChanged(ctx context.Context, o *Order, from OrderStatus)
}

type nopNotifier struct{}

func (nopNotifier) OrderPlaced(context.Context, *Order)                {}
func (nopNotifier) StatusChanged(context.Context, *Order, OrderStatus) {}

// NopNotifier discards every notification
var NopNotifier Notifier = nopNotifier{}
