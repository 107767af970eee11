package payment

import (
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// LinkBuilder composes upi://pay URIs for a single payee. Only the
// string format is produced here; the UPI protocol itself lives in the
// customer's banking app.
type LinkBuilder struct {
	payeeVPA     string
	payeeName    string
	qrServiceURL string
}

func NewLinkBuilder(payeeVPA, payeeName, qrServiceURL string) *LinkBuilder {
	return &LinkBuilder{
		payeeVPA:     payeeVPA,
		payeeName:    payeeName,
		qrServiceURL: qrServiceURL,
	}
}

// BuildURI renders the payment request. Amount is always formatted
// with two fractional digits; empty note and reference are omitted.
func (b *LinkBuilder) BuildURI(amount decimal.Decimal, note, reference string) string {
	params := url.Values{}
	params.Set("pa", b.payeeVPA)
	params.Set("pn", b.payeeName)
	params.Set("am", amount.StringFixed(2))
	params.Set("cu", "INR")
	if note != "" {
		params.Set("tn", note)
	}
	if reference != "" {
		params.Set("tr", reference)
	}

	return "upi://pay?" + params.Encode()
}

// QRImageURL points at the external QR rendering service for the given
// URI. Clients that render QR codes locally can ignore it.
func (b *LinkBuilder) QRImageURL(uri string, size int) string {
	if size <= 0 {
		size = 256
	}

	params := url.Values{}
	params.Set("data", uri)
	params.Set("size", strconv.Itoa(size)+"x"+strconv.Itoa(size))

	return b.qrServiceURL + "?" + params.Encode()
}

// BuildLink is the full presentation payload for one payment prompt.
func (b *LinkBuilder) BuildLink(amount decimal.Decimal, note, reference string) *PaymentLink {
	uri := b.BuildURI(amount, note, reference)

	return &PaymentLink{
		URI:        uri,
		QRImageURL: b.QRImageURL(uri, 256),
		Amount:     amount.Round(2),
		Note:       note,
		Reference:  reference,
	}
}
