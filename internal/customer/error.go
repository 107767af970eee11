package customer

import "errors"

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrNameRequired     = errors.New("customer name is required")
	ErrInvalidPayment   = errors.New("credit payment must be positive")
)
