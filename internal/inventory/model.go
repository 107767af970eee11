package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

type MovementReason string

const (
	ReasonSale       MovementReason = "sale"
	ReasonPurchase   MovementReason = "purchase"
	ReasonReturn     MovementReason = "return"
	ReasonDamage     MovementReason = "damage"
	ReasonAdjustment MovementReason = "adjustment"
)

// StockMovement is an append-only audit row for a change to a
// product's on-hand quantity. Quantity is the signed delta: negative
// for outflow. The order reference exists for audit only, never for
// ownership; movements are never updated or deleted.
type StockMovement struct {
	ID        uint            `json:"id"`
	ProductID uint            `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reason    MovementReason  `json:"reason"`
	OrderID   *uint           `json:"order_id,omitempty"`
	Note      *string         `json:"note,omitempty"`
	CreatedBy string          `json:"created_by"`
	CreatedAt time.Time       `json:"created_at"`
}

type AdjustStockInput struct {
	ProductID uint            `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reason    MovementReason  `json:"reason"`
	Note      *string         `json:"note"`
}

func ValidMovementReason(r MovementReason) bool {
	switch r {
	case ReasonSale, ReasonPurchase, ReasonReturn, ReasonDamage, ReasonAdjustment:
		return true
	}
	return false
}
