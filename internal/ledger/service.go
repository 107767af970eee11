package ledger

import (
	"context"
	"time"

	"kirana-be/internal/utils"
)

type Service interface {
	Record(ctx context.Context, txn *Transaction) (*Transaction, error)
	DailySales(ctx context.Context, day time.Time) (*DailySalesReport, error)
	List(ctx context.Context, txnType *TransactionType, limit, page *int32) ([]*Transaction, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Record(ctx context.Context, txn *Transaction) (*Transaction, error) {
	if !ValidTransactionType(txn.Type) {
		return nil, ErrInvalidType
	}
	if !ValidPaymentMethod(txn.PaymentMethod) {
		return nil, ErrInvalidMethod
	}
	if !txn.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	if txn.RecordedBy == "" {
		if staffID, ok := utils.GetStaffIDFromContext(ctx); ok {
			txn.RecordedBy = staffID
		}
	}

	txn.Amount = txn.Amount.Round(2)

	return s.repo.Record(ctx, txn)
}

func (s *service) DailySales(ctx context.Context, day time.Time) (*DailySalesReport, error) {
	return s.repo.DailySales(ctx, day)
}

func (s *service) List(
	ctx context.Context,
	txnType *TransactionType,
	limit, page *int32,
) ([]*Transaction, error) {

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

	return s.repo.List(ctx, txnType, finalLimit, offset)
}
