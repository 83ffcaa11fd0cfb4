package checkout

import "github.com/romawatches/storefront/internal/pkg/apperror"

var (
	ErrEmptyCart           = apperror.Validation("empty_cart", "your cart is empty")
	ErrInvalidShippingInfo = apperror.Validation("validation_error", "please fill in all shipping information")
	ErrPaymentNotAwaited   = apperror.Conflict("payment_not_awaited", "this order is not waiting for a bank transfer")
)
