package rest

import (
	"net/http"
	"strconv"

	"kirana-be/internal/payment"
	"kirana-be/internal/utils"

	"github.com/shopspring/decimal"
)

type PaymentHandler struct {
	builder *payment.LinkBuilder
	qr      *payment.QRClient
}

func NewPaymentHandler(builder *payment.LinkBuilder, qr *payment.QRClient) *PaymentHandler {
	return &PaymentHandler{builder: builder, qr: qr}
}

// BuildLink returns the upi://pay URI and QR-image URL for a given
// amount. The order itself is unaffected by anything here.
func (h *PaymentHandler) BuildLink(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	amount, err := decimal.NewFromString(q.Get("amount"))
	if err != nil || !amount.IsPositive() {
		utils.WriteJSONError(w, "amount must be a positive decimal", http.StatusBadRequest)
		return
	}

	link := h.builder.BuildLink(amount, q.Get("note"), q.Get("ref"))
	writeJSON(w, http.StatusOK, link)
}

// QRImage proxies the rendered QR PNG for clients without a local
// renderer. On upstream failure the caller should fall back to the URI.
func (h *PaymentHandler) QRImage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	amount, err := decimal.NewFromString(q.Get("amount"))
	if err != nil || !amount.IsPositive() {
		utils.WriteJSONError(w, "amount must be a positive decimal", http.StatusBadRequest)
		return
	}

	size := 256
	if v := q.Get("size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			size = n
		}
	}

	uri := h.builder.BuildURI(amount, q.Get("note"), q.Get("ref"))

	img, err := h.qr.FetchImage(r.Context(), uri, size)
	if err != nil {
		utils.WriteJSONError(w, "qr service unavailable", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img)
}
