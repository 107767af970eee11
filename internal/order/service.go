package order

import (
	"context"

	"kirana-be/internal/ledger"
	"kirana-be/internal/logger"
	"kirana-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*Order, error)
	GetOrders(ctx context.Context, filter *OrderFilterInput, sort *OrderSortInput, limit, page *int32) ([]*Order, error)
	GetOrderDetail(ctx context.Context, orderID uint) (*Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uint, status OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, orderID uint, status PaymentStatus) error
}

type service struct {
	repo       Repository
	ledgerRepo ledger.Repository
}

func NewService(repo Repository, ledgerRepo ledger.Repository) Service {
	return &service{repo: repo, ledgerRepo: ledgerRepo}
}

// PlaceOrder validates the payload, runs the atomic order transaction,
// then — only for paid orders — appends the sale ledger row. The
// ledger append happens after commit and outside the transaction: its
// failure leaves the order in place and is logged for reconciliation.
// Totals are taken from the caller as-is. Resubmitting an identical
// payload creates a second independent order.
func (s *service) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
		zap.Int("item_count", len(input.Items)),
	)

	o, err := buildOrder(ctx, input)
	if err != nil {
		log.Warn("order payload rejected", zap.Error(err))
		return nil, err
	}

	if err := s.repo.CreateOrderTx(ctx, o); err != nil {
		return nil, err
	}

	if o.PaymentStatus == PaymentPaid {
		orderID := o.ID
		_, err := s.ledgerRepo.Record(ctx, &ledger.Transaction{
			Type:          ledger.TypeSale,
			Amount:        o.TotalAmount,
			PaymentMethod: o.PaymentMethod,
			OrderID:       &orderID,
			CustomerID:    o.CustomerID,
			RecordedBy:    o.CreatedBy,
		})
		if err != nil {
			// The order is already committed; surface the gap loudly
			// so the ledger can be reconciled by hand.
			log.Error("sale ledger append failed after order commit",
				zap.Uint("order_id", o.ID),
				zap.String("amount", o.TotalAmount.String()),
				zap.Error(err),
			)
		}
	}

	log.Info("order placed",
		zap.Uint("order_id", o.ID),
		zap.String("order_number", o.OrderNumber),
	)

	return o, nil
}

// buildOrder performs structural validation and normalizes the payload
// into the domain order. It never touches storage: a returned
// *ValidationError guarantees no write was attempted.
func buildOrder(ctx context.Context, input PlaceOrderInput) (*Order, error) {
	if len(input.Items) == 0 {
		return nil, validationErr("items", "order must contain at least one item")
	}

	header := input.Order

	status := header.Status
	if status == "" {
		status = StatusPending
	}
	if !ValidOrderStatus(status) {
		return nil, validationErr("order.status", "unknown status "+string(status))
	}

	payStatus := header.PaymentStatus
	if payStatus == "" {
		payStatus = PaymentPending
	}
	if !ValidPaymentStatus(payStatus) {
		return nil, validationErr("order.payment_status", "unknown payment status "+string(payStatus))
	}

	method := header.PaymentMethod
	if method == "" {
		method = ledger.MethodCash
	}
	if !ledger.ValidPaymentMethod(method) {
		return nil, validationErr("order.payment_method", "unknown payment method "+string(method))
	}

	if header.TotalAmount.IsNegative() {
		return nil, validationErr("order.total_amount", "cannot be negative")
	}

	o := &Order{
		OrderNumber:    utils.GenerateOrderNumber(),
		CustomerID:     header.CustomerID,
		Status:         status,
		PaymentStatus:  payStatus,
		PaymentMethod:  method,
		TotalAmount:    header.TotalAmount.Round(2),
		PaidAmount:     header.PaidAmount.Round(2),
		DiscountAmount: header.DiscountAmount.Round(2),
		GSTAmount:      header.GSTAmount.Round(2),
	}
	if staffID, ok := utils.GetStaffIDFromContext(ctx); ok {
		o.CreatedBy = staffID
	}

	for _, item := range input.Items {
		if item.ProductID == 0 {
			return nil, validationErr("items.product_id", "missing product reference")
		}
		if !item.Quantity.IsPositive() {
			return nil, validationErr("items.quantity", "must be positive")
		}
		if item.UnitPrice.IsNegative() {
			return nil, validationErr("items.unit_price", "cannot be negative")
		}

		o.Items = append(o.Items, &OrderItem{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity.Round(3),
			UnitPrice:  item.UnitPrice.Round(2),
			TotalPrice: item.TotalPrice.Round(2),
			GSTRate:    item.GSTRate.Round(2),
		})
	}

	return o, nil
}

func (s *service) GetOrders(
	ctx context.Context,
	filter *OrderFilterInput,
	sort *OrderSortInput,
	limit, page *int32,
) ([]*Order, error) {

	finalLimit := int32(20)
	finalPage := int32(1)

	if limit != nil && *limit > 0 {
		finalLimit = *limit
	}
	if page != nil && *page > 0 {
		finalPage = *page
	}
	if finalLimit > 100 {
		finalLimit = 100
	}

	offset := (finalPage - 1) * finalLimit

	return s.repo.FetchOrders(ctx, filter, sort, finalLimit, offset)
}

func (s *service) GetOrderDetail(ctx context.Context, orderID uint) (*Order, error) {
	return s.repo.GetOrderDetail(ctx, orderID)
}

func (s *service) UpdateOrderStatus(ctx context.Context, orderID uint, status OrderStatus) error {
	if !ValidOrderStatus(status) {
		return validationErr("status", "unknown status "+string(status))
	}
	return s.repo.UpdateOrderStatus(ctx, orderID, status)
}

func (s *service) UpdatePaymentStatus(ctx context.Context, orderID uint, status PaymentStatus) error {
	if !ValidPaymentStatus(status) {
		return validationErr("payment_status", "unknown payment status "+string(status))
	}
	return s.repo.UpdatePaymentStatus(ctx, orderID, status)
}
