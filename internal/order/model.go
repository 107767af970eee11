package order

import (
	"time"

	"kirana-be/internal/ledger"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentPartial PaymentStatus = "partial"
)

// Order is one sales transaction header. CustomerID is optional: a nil
// value is a walk-in sale. Monetary totals carry 2 fractional digits
// and are caller-supplied, never recomputed from the items.
type Order struct {
	ID             uint                 `json:"id"`
	OrderNumber    string               `json:"order_number"`
	CustomerID     *uint                `json:"customer_id,omitempty"`
	Status         OrderStatus          `json:"status"`
	PaymentStatus  PaymentStatus        `json:"payment_status"`
	PaymentMethod  ledger.PaymentMethod `json:"payment_method"`
	TotalAmount    decimal.Decimal      `json:"total_amount"`
	PaidAmount     decimal.Decimal      `json:"paid_amount"`
	DiscountAmount decimal.Decimal      `json:"discount_amount"`
	GSTAmount      decimal.Decimal      `json:"gst_amount"`
	CreatedBy      string               `json:"created_by"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
	Items          []*OrderItem         `json:"items"`
}

// OrderItem is a quantity of one product sold within one order.
// Quantity carries 3 fractional digits (loose goods sold by weight),
// prices carry 2. TotalPrice is caller-supplied and not enforced to
// equal quantity × unitPrice.
type OrderItem struct {
	ID          uint            `json:"id"`
	OrderID     uint            `json:"order_id"`
	ProductID   uint            `json:"product_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	GSTRate     decimal.Decimal `json:"gst_rate"`
	ProductName string          `json:"product_name,omitempty"`
}

type OrderHeaderInput struct {
	CustomerID     *uint                `json:"customer_id"`
	Status         OrderStatus          `json:"status"`
	PaymentStatus  PaymentStatus        `json:"payment_status"`
	PaymentMethod  ledger.PaymentMethod `json:"payment_method"`
	TotalAmount    decimal.Decimal      `json:"total_amount"`
	PaidAmount     decimal.Decimal      `json:"paid_amount"`
	DiscountAmount decimal.Decimal      `json:"discount_amount"`
	GSTAmount      decimal.Decimal      `json:"gst_amount"`
}

type OrderItemInput struct {
	ProductID  uint            `json:"product_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	GSTRate    decimal.Decimal `json:"gst_rate"`
}

type PlaceOrderInput struct {
	Order OrderHeaderInput `json:"order"`
	Items []OrderItemInput `json:"items"`
}

type OrderFilterInput struct {
	Status   *OrderStatus
	DateFrom *time.Time
	DateTo   *time.Time
}

type OrderSortField string

const (
	OrderSortFieldCreatedAt OrderSortField = "created_at"
	OrderSortFieldTotal     OrderSortField = "total_amount"
)

type SortDirection string

const (
	SortDirectionAsc  SortDirection = "ASC"
	SortDirectionDesc SortDirection = "DESC"
)

type OrderSortInput struct {
	Field     OrderSortField
	Direction SortDirection
}

func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentPartial:
		return true
	}
	return false
}
