package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"kirana-be/internal/ledger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Record(ctx context.Context, txn *ledger.Transaction) (*ledger.Transaction, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Transaction), args.Error(1)
}

func (m *MockLedgerService) DailySales(ctx context.Context, day time.Time) (*ledger.DailySalesReport, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.DailySalesReport), args.Error(1)
}

func (m *MockLedgerService) List(ctx context.Context, txnType *ledger.TransactionType, limit, page *int32) ([]*ledger.Transaction, error) {
	args := m.Called(ctx, txnType, limit, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ledger.Transaction), args.Error(1)
}

func reportRouter(svc ledger.Service) http.Handler {
	return NewRouter(Handlers{
		Products:  NewProductHandler(nil),
		Customers: NewCustomerHandler(nil),
		Orders:    NewOrderHandler(nil),
		Inventory: NewInventoryHandler(nil),
		Reports:   NewReportHandler(svc),
		Payments:  NewPaymentHandler(nil, nil),
	})
}

func TestReportHandler_DailySales(t *testing.T) {
	t.Run("ExplicitDate", func(t *testing.T) {
		svc := new(MockLedgerService)
		router := reportRouter(svc)

		svc.On("DailySales", mock.Anything, mock.MatchedBy(func(day time.Time) bool {
			return day.Year() == 2026 && day.Month() == time.August && day.Day() == 23
		})).Return(&ledger.DailySalesReport{
			Date:     "2026-08-23",
			Total:    decimal.RequireFromString("390.50"),
			UPITotal: decimal.RequireFromString("100.00"),
			Count:    3,
		}, nil)

		req := httptest.NewRequest("GET", "/api/reports/daily-sales?date=2026-08-23", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got ledger.DailySalesReport
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "2026-08-23", got.Date)
		assert.Equal(t, "390.5", got.Total.String())
		assert.Equal(t, int64(3), got.Count)
		svc.AssertExpectations(t)
	})

	t.Run("InvalidDate", func(t *testing.T) {
		svc := new(MockLedgerService)
		router := reportRouter(svc)

		req := httptest.NewRequest("GET", "/api/reports/daily-sales?date=23-08-2026", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "DailySales", mock.Anything, mock.Anything)
	})
}

func TestReportHandler_RecordTransaction(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		svc := new(MockLedgerService)
		router := reportRouter(svc)

		svc.On("Record", mock.Anything, mock.MatchedBy(func(txn *ledger.Transaction) bool {
			return txn.Type == ledger.TypeExpense &&
				txn.Amount.Equal(decimal.RequireFromString("50.00"))
		})).Return(&ledger.Transaction{ID: 1}, nil)

		body := `{"type":"expense","amount":"50.00","payment_method":"cash"}`
		req := httptest.NewRequest("POST", "/api/transactions", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("InvalidType", func(t *testing.T) {
		svc := new(MockLedgerService)
		router := reportRouter(svc)

		svc.On("Record", mock.Anything, mock.Anything).
			Return(nil, ledger.ErrInvalidType)

		body := `{"type":"refund","amount":"50.00","payment_method":"cash"}`
		req := httptest.NewRequest("POST", "/api/transactions", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReportHandler_ListTransactions(t *testing.T) {
	svc := new(MockLedgerService)
	router := reportRouter(svc)

	svc.On("List", mock.Anything, mock.MatchedBy(func(txnType *ledger.TransactionType) bool {
		return txnType != nil && *txnType == ledger.TypeSale
	}), mock.Anything, mock.Anything).
		Return([]*ledger.Transaction{}, nil)

	req := httptest.NewRequest("GET", "/api/transactions?type=sale", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}
