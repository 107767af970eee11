package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"kirana-be/internal/customer"
	"kirana-be/internal/inventory"
	"kirana-be/internal/ledger"
	"kirana-be/internal/order"
	"kirana-be/internal/product"
	"kirana-be/internal/utils"
)

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps domain errors onto HTTP status codes: validation
// failures become 400, missing records 404, everything else is an
// opaque 500 (the storage failure envelope).
func writeError(w http.ResponseWriter, err error) {
	var vErr *order.ValidationError
	if errors.As(err, &vErr) {
		utils.WriteJSONError(w, vErr.Error(), http.StatusBadRequest)
		return
	}

	switch {
	case errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, customer.ErrCustomerNotFound),
		errors.Is(err, inventory.ErrProductNotFound):
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)

	case errors.Is(err, product.ErrNameRequired),
		errors.Is(err, product.ErrNegativePrice),
		errors.Is(err, customer.ErrNameRequired),
		errors.Is(err, customer.ErrInvalidPayment),
		errors.Is(err, inventory.ErrInvalidReason),
		errors.Is(err, inventory.ErrZeroQuantity),
		errors.Is(err, ledger.ErrInvalidType),
		errors.Is(err, ledger.ErrInvalidMethod),
		errors.Is(err, ledger.ErrInvalidAmount):
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)

	default:
		utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
	}
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
