package inventory

import (
	"context"

	"kirana-be/internal/utils"
)

type Service interface {
	AdjustStock(ctx context.Context, input AdjustStockInput) (*StockMovement, error)
	ListMovements(ctx context.Context, productID uint, limit, page *int32) ([]*StockMovement, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// AdjustStock is the manual adjustment path: purchases, returns,
// damage write-offs and corrections. Sales never come through here;
// they are written by the order transaction.
func (s *service) AdjustStock(ctx context.Context, input AdjustStockInput) (*StockMovement, error) {
	if !ValidMovementReason(input.Reason) || input.Reason == ReasonSale {
		return nil, ErrInvalidReason
	}
	if input.Quantity.IsZero() {
		return nil, ErrZeroQuantity
	}

	m := &StockMovement{
		ProductID: input.ProductID,
		Quantity:  input.Quantity.Round(3),
		Reason:    input.Reason,
		Note:      input.Note,
	}
	if staffID, ok := utils.GetStaffIDFromContext(ctx); ok {
		m.CreatedBy = staffID
	}

	if err := s.repo.AdjustStockTx(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

func (s *service) ListMovements(ctx context.Context, productID uint, limit, page *int32) ([]*StockMovement, error) {
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

	return s.repo.ListMovements(ctx, productID, finalLimit, offset)
}
