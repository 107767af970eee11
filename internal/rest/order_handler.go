package rest

import (
	"net/http"
	"time"

	"kirana-be/internal/order"
	"kirana-be/internal/utils"

	"github.com/gorilla/mux"
)

type OrderHandler struct {
	svc order.Service
}

func NewOrderHandler(svc order.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// PlaceOrder accepts `{ "order": {...}, "items": [...] }` and returns
// the created order. Malformed payloads map to 400 before any write;
// storage failures roll back and map to 500.
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var input order.PlaceOrderInput
	if err := decodeJSON(r, &input); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.svc.PlaceOrder(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter order.OrderFilterInput
	hasFilter := false

	if v := q.Get("status"); v != "" {
		status := order.OrderStatus(v)
		filter.Status = &status
		hasFilter = true
	}
	if v := q.Get("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.DateFrom = &t
			hasFilter = true
		}
	}
	if v := q.Get("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.DateTo = &t
			hasFilter = true
		}
	}

	var filterPtr *order.OrderFilterInput
	if hasFilter {
		filterPtr = &filter
	}

	limit, page := parsePagination(q.Get("limit"), q.Get("page"))

	orders, err := h.svc.GetOrders(r.Context(), filterPtr, nil, limit, page)
	if err != nil {
		writeError(w, err)
		return
	}

	if orders == nil {
		orders = []*order.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteJSONError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	o, err := h.svc.GetOrderDetail(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, o)
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteJSONError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	var body struct {
		Status        *order.OrderStatus   `json:"status"`
		PaymentStatus *order.PaymentStatus `json:"payment_status"`
	}
	if err := decodeJSON(r, &body); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if body.Status != nil {
		if err := h.svc.UpdateOrderStatus(r.Context(), id, *body.Status); err != nil {
			writeError(w, err)
			return
		}
	}
	if body.PaymentStatus != nil {
		if err := h.svc.UpdatePaymentStatus(r.Context(), id, *body.PaymentStatus); err != nil {
			writeError(w, err)
			return
		}
	}

	o, err := h.svc.GetOrderDetail(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, o)
}
