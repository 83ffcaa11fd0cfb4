package product

import "github.com/romawatches/storefront/internal/pkg/apperror"

var ErrProductNotFound = apperror.NotFound("product_not_found", "product not found")
