package rest

import (
	"net/http"
	"strconv"

	"kirana-be/internal/product"
	"kirana-be/internal/utils"

	"github.com/gorilla/mux"
)

type ProductHandler struct {
	svc product.Service
}

func NewProductHandler(svc product.Service) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func parsePagination(limitStr, pageStr string) (*int32, *int32) {
	var limit, page *int32

	if limitStr != "" {
		if n, err := strconv.ParseInt(limitStr, 10, 32); err == nil {
			v := int32(n)
			limit = &v
		}
	}
	if pageStr != "" {
		if n, err := strconv.ParseInt(pageStr, 10, 32); err == nil {
			v := int32(n)
			page = &v
		}
	}

	return limit, page
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var input product.CreateProductInput
	if err := decodeJSON(r, &input); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.svc.CreateProduct(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter product.ProductFilterInput
	hasFilter := false

	if v := q.Get("search"); v != "" {
		filter.Search = &v
		hasFilter = true
	}
	if v := q.Get("category"); v != "" {
		filter.Category = &v
		hasFilter = true
	}

	var filterPtr *product.ProductFilterInput
	if hasFilter {
		filterPtr = &filter
	}

	limit, page := parsePagination(q.Get("limit"), q.Get("page"))

	products, err := h.svc.ListProducts(r.Context(), filterPtr, limit, page)
	if err != nil {
		writeError(w, err)
		return
	}

	if products == nil {
		products = []*product.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) ListLowStock(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListLowStock(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	if products == nil {
		products = []*product.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteJSONError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	p, err := h.svc.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteJSONError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var input product.UpdateProductInput
	if err := decodeJSON(r, &input); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	p, err := h.svc.UpdateProduct(r.Context(), id, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteJSONError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
