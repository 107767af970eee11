package inventory

import "errors"

var (
	ErrInvalidReason   = errors.New("invalid movement reason")
	ErrZeroQuantity    = errors.New("movement quantity cannot be zero")
	ErrProductNotFound = errors.New("product not found")
)
