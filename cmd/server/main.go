package main

import (
	"database/sql"
	"log"
	"net/http"

	"kirana-be/internal/config"
	"kirana-be/internal/customer"
	"kirana-be/internal/db"
	"kirana-be/internal/inventory"
	"kirana-be/internal/ledger"
	"kirana-be/internal/logger"
	"kirana-be/internal/middleware"
	"kirana-be/internal/order"
	"kirana-be/internal/payment"
	"kirana-be/internal/product"
	"kirana-be/internal/rest"
)

// Swappable for tests.
var (
	initDBFunc      = db.InitDB
	startServerFunc = http.ListenAndServe
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	handler := newServer(cfg, database)

	log.Printf("kirana backend listening on :%s", cfg.AppPort)
	return startServerFunc(":"+cfg.AppPort, handler)
}

func newServer(cfg *config.Config, database *sql.DB) http.Handler {
	ledgerRepo := ledger.NewRepository(database)
	ledgerSvc := ledger.NewService(ledgerRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	customerRepo := customer.NewRepository(database)
	customerSvc := customer.NewService(customerRepo, ledgerRepo)

	inventoryRepo := inventory.NewRepository(database)
	inventorySvc := inventory.NewService(inventoryRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, ledgerRepo)

	linkBuilder := payment.NewLinkBuilder(cfg.UPIPayeeVPA, cfg.UPIPayeeName, cfg.QRServiceURL)
	qrClient := payment.NewQRClient(linkBuilder)

	router := rest.NewRouter(rest.Handlers{
		Products:  rest.NewProductHandler(productSvc),
		Customers: rest.NewCustomerHandler(customerSvc),
		Orders:    rest.NewOrderHandler(orderSvc),
		Inventory: rest.NewInventoryHandler(inventorySvc),
		Reports:   rest.NewReportHandler(ledgerSvc),
		Payments:  rest.NewPaymentHandler(linkBuilder, qrClient),
	})

	var handler http.Handler = router
	handler = middleware.RateLimitMiddleware(handler)
	handler = middleware.StaffIdentityMiddleware(cfg.DefaultStaffID)(handler)
	handler = logger.LoggingMiddleware(handler)
	handler = logger.RequestIDMiddleware(handler)

	return handler
}
