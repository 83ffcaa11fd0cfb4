package cart

import "github.com/romawatches/storefront/internal/pkg/apperror"

var (
	ErrCartItemNotFound = apperror.NotFound("cart_item_not_found", "cart item not found")
	ErrInvalidQuantity  = apperror.Validation("invalid_quantity", "quantity must be at least 1")
	ErrNothingToRestore = apperror.NotFound("nothing_to_restore", "there is no saved cart to restore")
	ErrSnapshotNotFound = apperror.NotFound("snapshot_not_found", "saved cart not found")
)
