package customer

import (
	"context"

	"kirana-be/internal/ledger"
	"kirana-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	CreateCustomer(ctx context.Context, input CreateCustomerInput) (*Customer, error)
	GetCustomer(ctx context.Context, id uint) (*Customer, error)
	SearchCustomers(ctx context.Context, term string, limit, page *int32) ([]*Customer, error)
	UpdateCustomer(ctx context.Context, id uint, input UpdateCustomerInput) (*Customer, error)
	DeleteCustomer(ctx context.Context, id uint) error
	RecordCreditPayment(ctx context.Context, id uint, amount decimal.Decimal, method ledger.PaymentMethod) (*Customer, error)
}

type service struct {
	repo       Repository
	ledgerRepo ledger.Repository
}

func NewService(repo Repository, ledgerRepo ledger.Repository) Service {
	return &service{repo: repo, ledgerRepo: ledgerRepo}
}

func (s *service) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*Customer, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}

	c := &Customer{
		Name:          input.Name,
		Phone:         input.Phone,
		Address:       input.Address,
		CreditBalance: decimal.Zero,
	}

	return s.repo.Create(ctx, c)
}

func (s *service) GetCustomer(ctx context.Context, id uint) (*Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) SearchCustomers(ctx context.Context, term string, limit, page *int32) ([]*Customer, error) {
	finalLimit := int32(50)
	finalPage := int32(1)

	if limit != nil && *limit > 0 {
		finalLimit = *limit
	}
	if page != nil && *page > 0 {
		finalPage = *page
	}
	if finalLimit > 200 {
		finalLimit = 200
	}

	offset := (finalPage - 1) * finalLimit

	return s.repo.Search(ctx, term, finalLimit, offset)
}

func (s *service) UpdateCustomer(ctx context.Context, id uint, input UpdateCustomerInput) (*Customer, error) {
	if input.Name != nil && *input.Name == "" {
		return nil, ErrNameRequired
	}

	return s.repo.Update(ctx, id, input)
}

func (s *service) DeleteCustomer(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// RecordCreditPayment reduces the customer's outstanding balance and
// appends a credit_payment ledger row. The two writes are independent:
// a ledger failure after the balance update is logged, not rolled back.
func (s *service) RecordCreditPayment(
	ctx context.Context,
	id uint,
	amount decimal.Decimal,
	method ledger.PaymentMethod,
) (*Customer, error) {

	if !amount.IsPositive() {
		return nil, ErrInvalidPayment
	}
	if !ledger.ValidPaymentMethod(method) {
		return nil, ledger.ErrInvalidMethod
	}

	if err := s.repo.AddCredit(ctx, id, amount.Neg()); err != nil {
		return nil, err
	}

	customerID := id
	_, err := s.ledgerRepo.Record(ctx, &ledger.Transaction{
		Type:          ledger.TypeCreditPayment,
		Amount:        amount.Round(2),
		PaymentMethod: method,
		CustomerID:    &customerID,
	})
	if err != nil {
		logger.FromCtx(ctx).Error("credit payment ledger append failed",
			zap.Uint("customer_id", id),
			zap.String("amount", amount.String()),
			zap.Error(err),
		)
	}

	return s.repo.GetByID(ctx, id)
}
