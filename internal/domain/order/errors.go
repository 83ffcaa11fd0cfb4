package order

import "github.com/romawatches/storefront/internal/pkg/apperror"

var (
	ErrOrderNotFound           = apperror.NotFound("order_not_found", "order not found")
	ErrInvalidStatus           = apperror.Validation("invalid_status", "invalid order status")
	ErrInvalidStatusTransition = apperror.Conflict("invalid_status_transition", "order status cannot be changed")
	ErrInvalidPaymentMethod    = apperror.Validation("invalid_payment_method", "invalid payment method")
	ErrOrderNotCancellable     = apperror.Conflict("order_not_cancellable", "completed orders cannot be cancelled")
	ErrStatusChanged           = apperror.Conflict("order_status_changed", "the order was updated by someone else, reload and try again")
)
