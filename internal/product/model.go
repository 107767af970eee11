package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item. Price carries 2 fractional digits,
// stock quantities carry 3 (weight/volume-sold goods may be fractional).
type Product struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	NameLocal *string         `json:"name_local,omitempty"`
	Category  *string         `json:"category,omitempty"`
	Unit      string          `json:"unit"`
	Barcode   *string         `json:"barcode,omitempty"`
	Price     decimal.Decimal `json:"price"`
	Stock     decimal.Decimal `json:"stock"`
	MinStock  decimal.Decimal `json:"min_stock"`
	GSTRate   decimal.Decimal `json:"gst_rate"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// LowStock reports whether on-hand quantity is at or below the
// minimum threshold. Boundary inclusive: stock == minStock is low.
func (p *Product) LowStock() bool {
	return p.Stock.LessThanOrEqual(p.MinStock)
}

type CreateProductInput struct {
	Name      string          `json:"name"`
	NameLocal *string         `json:"name_local"`
	Category  *string         `json:"category"`
	Unit      string          `json:"unit"`
	Barcode   *string         `json:"barcode"`
	Price     decimal.Decimal `json:"price"`
	Stock     decimal.Decimal `json:"stock"`
	MinStock  decimal.Decimal `json:"min_stock"`
	GSTRate   decimal.Decimal `json:"gst_rate"`
}

type UpdateProductInput struct {
	Name      *string          `json:"name"`
	NameLocal *string          `json:"name_local"`
	Category  *string          `json:"category"`
	Unit      *string          `json:"unit"`
	Barcode   *string          `json:"barcode"`
	Price     *decimal.Decimal `json:"price"`
	MinStock  *decimal.Decimal `json:"min_stock"`
	GSTRate   *decimal.Decimal `json:"gst_rate"`
}

type ProductFilterInput struct {
	Search   *string
	Category *string
}
