package ledger

import "errors"

var (
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrInvalidMethod = errors.New("invalid payment method")
	ErrInvalidAmount = errors.New("transaction amount must be positive")
)
