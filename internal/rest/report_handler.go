package rest

import (
	"net/http"
	"time"

	"kirana-be/internal/ledger"
	"kirana-be/internal/utils"
)

type ReportHandler struct {
	svc ledger.Service
}

func NewReportHandler(svc ledger.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// DailySales returns the sale aggregate for `?date=YYYY-MM-DD`
// (defaulting to today in the server's local zone).
func (h *ReportHandler) DailySales(w http.ResponseWriter, r *http.Request) {
	day := time.Now()

	if v := r.URL.Query().Get("date"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			utils.WriteJSONError(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		day = parsed
	}

	report, err := h.svc.DailySales(r.Context(), day)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) RecordTransaction(w http.ResponseWriter, r *http.Request) {
	var txn ledger.Transaction
	if err := decodeJSON(r, &txn); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	recorded, err := h.svc.Record(r.Context(), &txn)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, recorded)
}

func (h *ReportHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var txnType *ledger.TransactionType
	if v := q.Get("type"); v != "" {
		t := ledger.TransactionType(v)
		txnType = &t
	}

	limit, page := parsePagination(q.Get("limit"), q.Get("page"))

	txns, err := h.svc.List(r.Context(), txnType, limit, page)
	if err != nil {
		writeError(w, err)
		return
	}

	if txns == nil {
		txns = []*ledger.Transaction{}
	}
	writeJSON(w, http.StatusOK, txns)
}
