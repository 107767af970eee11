package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeSale          TransactionType = "sale"
	TypePurchase      TransactionType = "purchase"
	TypeCreditPayment TransactionType = "credit_payment"
	TypeExpense       TransactionType = "expense"
)

type PaymentMethod string

const (
	MethodCash   PaymentMethod = "cash"
	MethodUPI    PaymentMethod = "upi"
	MethodCard   PaymentMethod = "card"
	MethodCredit PaymentMethod = "credit"
)

// Transaction is an append-only financial audit record, distinct from
// an Order. Rows are never updated or deleted.
type Transaction struct {
	ID            uint            `json:"id"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	OrderID       *uint           `json:"order_id,omitempty"`
	CustomerID    *uint           `json:"customer_id,omitempty"`
	Note          *string         `json:"note,omitempty"`
	RecordedBy    string          `json:"recorded_by"`
	CreatedAt     time.Time       `json:"created_at"`
}

// DailySalesReport aggregates sale transactions for one calendar day.
type DailySalesReport struct {
	Date     string          `json:"date"`
	Total    decimal.Decimal `json:"total"`
	UPITotal decimal.Decimal `json:"upi_total"`
	Count    int64           `json:"count"`
}

func ValidTransactionType(t TransactionType) bool {
	switch t {
	case TypeSale, TypePurchase, TypeCreditPayment, TypeExpense:
		return true
	}
	return false
}

func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case MethodCash, MethodUPI, MethodCard, MethodCredit:
		return true
	}
	return false
}
