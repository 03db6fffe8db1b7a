package apperr

import "github.com/tuanvumaihuynh/pos/pkg/zerror"

const (
	ValidationErrorCode      = "VALIDATION_FAILED"
	ProductNotFoundErrorCode = "PRODUCT_NOT_FOUND"
	EmptyCartErrorCode       = "EMPTY_CART"
)

var (
	ValidationErr      = zerror.NewValidationFailed(ValidationErrorCode, "validation error")
	ProductNotFoundErr = zerror.NewNotFound(ProductNotFoundErrorCode, "product not found")
	EmptyCartErr       = zerror.NewUnprocessableEntity(EmptyCartErrorCode, "cart is empty")
)
