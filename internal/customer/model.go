package customer

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a shop customer record. CreditBalance tracks unpaid
// udhaar (store credit) with 2 fractional digits.
type Customer struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Phone         *string         `json:"phone,omitempty"`
	Address       *string         `json:"address,omitempty"`
	CreditBalance decimal.Decimal `json:"credit_balance"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type CreateCustomerInput struct {
	Name    string  `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

type UpdateCustomerInput struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}
