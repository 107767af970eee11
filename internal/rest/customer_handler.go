package rest

import (
	"net/http"

	"kirana-be/internal/customer"
	"kirana-be/internal/ledger"
	"kirana-be/internal/utils"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type CustomerHandler struct {
	svc customer.Service
}

func NewCustomerHandler(svc customer.Service) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var input customer.CreateCustomerInput
	if err := decodeJSON(r, &input); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.svc.CreateCustomer(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, page := parsePagination(q.Get("limit"), q.Get("page"))

	customers, err := h.svc.SearchCustomers(r.Context(), q.Get("search"), limit, page)
	if err != nil {
		writeError(w, err)
		return
	}

	if customers == nil {
		customers = []*customer.Customer{}
	}
	writeJSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteJSONError(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.GetCustomer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, c)
}

func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteJSONError(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	var input customer.UpdateCustomerInput
	if err := decodeJSON(r, &input); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	c, err := h.svc.UpdateCustomer(r.Context(), id, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, c)
}

func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteJSONError(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteCustomer(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CustomerHandler) RecordCreditPayment(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteJSONError(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	var body struct {
		Amount        decimal.Decimal      `json:"amount"`
		PaymentMethod ledger.PaymentMethod `json:"payment_method"`
	}
	if err := decodeJSON(r, &body); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	c, err := h.svc.RecordCreditPayment(r.Context(), id, body.Amount, body.PaymentMethod)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, c)
}
