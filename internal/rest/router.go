package rest

import (
	"net/http"

	"github.com/gorilla/mux"
)

type Handlers struct {
	Products  *ProductHandler
	Customers *CustomerHandler
	Orders    *OrderHandler
	Inventory *InventoryHandler
	Reports   *ReportHandler
	Payments  *PaymentHandler
}

// NewRouter wires the REST surface. Middleware (identity, request-id,
// logging, rate limiting) is applied by the caller around the whole
// router.
func NewRouter(h Handlers) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/products", h.Products.CreateProduct).Methods("POST")
	api.HandleFunc("/products", h.Products.ListProducts).Methods("GET")
	api.HandleFunc("/products/low-stock", h.Products.ListLowStock).Methods("GET")
	api.HandleFunc("/products/{id:[0-9]+}", h.Products.GetProduct).Methods("GET")
	api.HandleFunc("/products/{id:[0-9]+}", h.Products.UpdateProduct).Methods("PUT")
	api.HandleFunc("/products/{id:[0-9]+}", h.Products.DeleteProduct).Methods("DELETE")
	api.HandleFunc("/products/{id:[0-9]+}/movements", h.Inventory.ListMovements).Methods("GET")

	api.HandleFunc("/customers", h.Customers.CreateCustomer).Methods("POST")
	api.HandleFunc("/customers", h.Customers.ListCustomers).Methods("GET")
	api.HandleFunc("/customers/{id:[0-9]+}", h.Customers.GetCustomer).Methods("GET")
	api.HandleFunc("/customers/{id:[0-9]+}", h.Customers.UpdateCustomer).Methods("PUT")
	api.HandleFunc("/customers/{id:[0-9]+}", h.Customers.DeleteCustomer).Methods("DELETE")
	api.HandleFunc("/customers/{id:[0-9]+}/credit-payments", h.Customers.RecordCreditPayment).Methods("POST")

	api.HandleFunc("/orders", h.Orders.PlaceOrder).Methods("POST")
	api.HandleFunc("/orders", h.Orders.ListOrders).Methods("GET")
	api.HandleFunc("/orders/{id:[0-9]+}", h.Orders.GetOrder).Methods("GET")
	api.HandleFunc("/orders/{id:[0-9]+}", h.Orders.UpdateStatus).Methods("PATCH")

	api.HandleFunc("/inventory/adjustments", h.Inventory.AdjustStock).Methods("POST")

	api.HandleFunc("/transactions", h.Reports.RecordTransaction).Methods("POST")
	api.HandleFunc("/transactions", h.Reports.ListTransactions).Methods("GET")
	api.HandleFunc("/reports/daily-sales", h.Reports.DailySales).Methods("GET")

	api.HandleFunc("/payments/upi-link", h.Payments.BuildLink).Methods("GET")
	api.HandleFunc("/payments/upi-qr", h.Payments.QRImage).Methods("GET")

	return r
}
