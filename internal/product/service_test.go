package product

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, p *Product) (*Product, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uint) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, filter *ProductFilterInput, limit, offset int32) ([]*Product, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Product), args.Error(1)
}

func (m *MockRepository) ListLowStock(ctx context.Context) ([]*Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Product), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id uint, input UpdateProductInput) (*Product, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_CreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Validation", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.CreateProduct(ctx, CreateProductInput{})
		assert.ErrorIs(t, err, ErrNameRequired)

		_, err = svc.CreateProduct(ctx, CreateProductInput{
			Name:  "Rice",
			Price: decimal.RequireFromString("-1"),
		})
		assert.ErrorIs(t, err, ErrNegativePrice)

		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("RoundsAndDefaultsUnit", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", mock.Anything, mock.MatchedBy(func(p *Product) bool {
			return p.Unit == "pcs" &&
				p.Price.Equal(decimal.RequireFromString("50.01")) &&
				p.Stock.Equal(decimal.RequireFromString("12.346"))
		})).Return(&Product{ID: 1}, nil)

		created, err := svc.CreateProduct(ctx, CreateProductInput{
			Name:  "Rice",
			Price: decimal.RequireFromString("50.005"),
			Stock: decimal.RequireFromString("12.3456"),
		})
		require.NoError(t, err)
		assert.Equal(t, uint(1), created.ID)

		repo.AssertExpectations(t)
	})

	t.Run("StorageError", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", mock.Anything, mock.Anything).
			Return(nil, errors.New("db error"))

		_, err := svc.CreateProduct(ctx, CreateProductInput{Name: "Rice"})
		assert.Error(t, err)
	})
}

func TestService_ListProducts_Pagination(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("List", mock.Anything, (*ProductFilterInput)(nil), int32(50), int32(0)).
			Return([]*Product{}, nil)

		_, err := svc.ListProducts(ctx, nil, nil, nil)
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("CapsLimit", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		limit := int32(999)
		page := int32(2)

		repo.On("List", mock.Anything, (*ProductFilterInput)(nil), int32(200), int32(200)).
			Return([]*Product{}, nil)

		_, err := svc.ListProducts(ctx, nil, &limit, &page)
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestService_UpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyNameRejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		empty := ""

		_, err := svc.UpdateProduct(ctx, 1, UpdateProductInput{Name: &empty})
		assert.ErrorIs(t, err, ErrNameRequired)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("RoundsPrice", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		price := decimal.RequireFromString("55.555")

		repo.On("Update", mock.Anything, uint(1), mock.MatchedBy(func(in UpdateProductInput) bool {
			return in.Price != nil && in.Price.Equal(decimal.RequireFromString("55.56"))
		})).Return(&Product{ID: 1}, nil)

		_, err := svc.UpdateProduct(ctx, 1, UpdateProductInput{Price: &price})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestService_DeleteProduct(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("Delete", mock.Anything, uint(5)).Return(ErrProductNotFound)

	err := svc.DeleteProduct(context.Background(), 5)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
