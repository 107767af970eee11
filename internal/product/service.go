package product

import (
	"context"

	"kirana-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*Product, error)
	GetProduct(ctx context.Context, id uint) (*Product, error)
	ListProducts(ctx context.Context, filter *ProductFilterInput, limit, page *int32) ([]*Product, error)
	ListLowStock(ctx context.Context) ([]*Product, error)
	UpdateProduct(ctx context.Context, id uint, input UpdateProductInput) (*Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*Product, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}
	if input.Price.IsNegative() {
		return nil, ErrNegativePrice
	}

	unit := input.Unit
	if unit == "" {
		unit = "pcs"
	}

	p := &Product{
		Name:      input.Name,
		NameLocal: input.NameLocal,
		Category:  input.Category,
		Unit:      unit,
		Barcode:   input.Barcode,
		Price:     input.Price.Round(2),
		Stock:     input.Stock.Round(3),
		MinStock:  input.MinStock.Round(3),
		GSTRate:   input.GSTRate.Round(2),
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to create product",
			zap.String("name", input.Name),
			zap.Error(err),
		)
		return nil, err
	}

	return created, nil
}

func (s *service) GetProduct(ctx context.Context, id uint) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListProducts(
	ctx context.Context,
	filter *ProductFilterInput,
	limit, page *int32,
) ([]*Product, error) {

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

	return s.repo.List(ctx, filter, finalLimit, offset)
}

func (s *service) ListLowStock(ctx context.Context) ([]*Product, error) {
	return s.repo.ListLowStock(ctx)
}

func (s *service) UpdateProduct(ctx context.Context, id uint, input UpdateProductInput) (*Product, error) {
	if input.Name != nil && *input.Name == "" {
		return nil, ErrNameRequired
	}
	if input.Price != nil && input.Price.IsNegative() {
		return nil, ErrNegativePrice
	}

	if input.Price != nil {
		rounded := input.Price.Round(2)
		input.Price = &rounded
	}
	if input.MinStock != nil {
		rounded := input.MinStock.Round(3)
		input.MinStock = &rounded
	}

	return s.repo.Update(ctx, id, input)
}

func (s *service) DeleteProduct(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
