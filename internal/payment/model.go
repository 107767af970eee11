package payment

import "github.com/shopspring/decimal"

// PaymentLink is what the presentation layer needs to prompt a UPI
// payment: the upi://pay URI plus a pre-composed QR-image URL for
// clients that do not render QR codes locally.
type PaymentLink struct {
	URI        string          `json:"uri"`
	QRImageURL string          `json:"qr_image_url"`
	Amount     decimal.Decimal `json:"amount"`
	Note       string          `json:"note,omitempty"`
	Reference  string          `json:"reference,omitempty"`
}
