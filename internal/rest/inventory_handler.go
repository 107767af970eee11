package rest

import (
	"net/http"

	"kirana-be/internal/inventory"
	"kirana-be/internal/utils"

	"github.com/gorilla/mux"
)

type InventoryHandler struct {
	svc inventory.Service
}

func NewInventoryHandler(svc inventory.Service) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// AdjustStock is the manual adjustment path; sales go through the
// order endpoint only.
func (h *InventoryHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	var input inventory.AdjustStockInput
	if err := decodeJSON(r, &input); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	m, err := h.svc.AdjustStock(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, m)
}

func (h *InventoryHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	productID, err := utils.ToUint(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteJSONError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	q := r.URL.Query()
	limit, page := parsePagination(q.Get("limit"), q.Get("page"))

	movements, err := h.svc.ListMovements(r.Context(), productID, limit, page)
	if err != nil {
		writeError(w, err)
		return
	}

	if movements == nil {
		movements = []*inventory.StockMovement{}
	}
	writeJSON(w, http.StatusOK, movements)
}
