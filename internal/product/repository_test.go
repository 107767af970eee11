package product

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"kirana-be/internal/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "name_local", "category", "unit", "barcode",
		"price", "stock", "min_stock", "gst_rate", "created_at", "updated_at",
	}).AddRow(
		1, "Rice 1kg", "चावल", "grocery", "pcs", "8901234567890",
		"50.00", "12.000", "5.000", "0.00", now, now,
	)
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		p := &Product{
			Name:     "Rice 1kg",
			Unit:     "pcs",
			Price:    decimal.RequireFromString("50.00"),
			Stock:    decimal.RequireFromString("12.000"),
			MinStock: decimal.RequireFromString("5.000"),
			GSTRate:  decimal.RequireFromString("0.00"),
		}

		mock.ExpectQuery(`INSERT INTO products`).
			WithArgs("Rice 1kg", nil, nil, "pcs", nil, p.Price, p.Stock, p.MinStock, p.GSTRate).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(1, now, now))

		created, err := repo.Create(ctx, p)
		assert.NoError(t, err)
		assert.Equal(t, uint(1), created.ID)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO products`).
			WillReturnError(errors.New("db error"))

		_, err := repo.Create(ctx, &Product{Name: "x", Unit: "pcs"})
		assert.Error(t, err)
	})
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, name, .* FROM products WHERE id = \$1`).
			WithArgs(uint(1)).
			WillReturnRows(productRows(time.Now()))

		p, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "Rice 1kg", p.Name)
		require.NotNil(t, p.NameLocal)
		assert.Equal(t, "चावल", *p.NameLocal)
		assert.Equal(t, "12.000", p.Stock.StringFixed(3))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, name, .* FROM products WHERE id = \$1`).
			WithArgs(uint(99)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("NoFilter", func(t *testing.T) {
		mock.ExpectQuery(`FROM products WHERE 1=1 ORDER BY name ASC LIMIT \$1 OFFSET \$2`).
			WithArgs(int32(50), int32(0)).
			WillReturnRows(productRows(now))

		products, err := repo.List(ctx, nil, 50, 0)
		assert.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("SearchMatchesNameOrBarcode", func(t *testing.T) {
		filter := &ProductFilterInput{Search: utils.StrPtr("rice")}

		mock.ExpectQuery(`AND \(name ILIKE \$1 OR name_local ILIKE \$1 OR barcode = \$2\) ORDER BY name ASC LIMIT \$3 OFFSET \$4`).
			WithArgs("%rice%", "rice", int32(50), int32(0)).
			WillReturnRows(productRows(now))

		products, err := repo.List(ctx, filter, 50, 0)
		assert.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("CategoryFilter", func(t *testing.T) {
		filter := &ProductFilterInput{Category: utils.StrPtr("grocery")}

		mock.ExpectQuery(`AND category = \$1 ORDER BY name ASC LIMIT \$2 OFFSET \$3`).
			WithArgs("grocery", int32(50), int32(0)).
			WillReturnRows(productRows(now))

		_, err := repo.List(ctx, filter, 50, 0)
		assert.NoError(t, err)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`FROM products WHERE 1=1`).
			WillReturnError(errors.New("db error"))

		_, err := repo.List(ctx, nil, 50, 0)
		assert.Error(t, err)
	})
}

func TestRepository_ListLowStock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`FROM products WHERE stock <= min_stock ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "name_local", "category", "unit", "barcode",
			"price", "stock", "min_stock", "gst_rate", "created_at", "updated_at",
		}).AddRow(
			2, "Dal 500g", nil, nil, "pcs", nil,
			"80.00", "5.000", "5.000", "0.00", time.Now(), time.Now(),
		))

	products, err := repo.ListLowStock(context.Background())
	assert.NoError(t, err)
	require.Len(t, products, 1)
	assert.True(t, products[0].LowStock())
}

func TestRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("PartialUpdate", func(t *testing.T) {
		price := decimal.RequireFromString("55.00")
		input := UpdateProductInput{Price: &price}

		mock.ExpectQuery(`UPDATE products SET updated_at = NOW\(\), price = \$1 WHERE id = \$2 RETURNING`).
			WithArgs(price, uint(1)).
			WillReturnRows(productRows(time.Now()))

		p, err := repo.Update(ctx, 1, input)
		assert.NoError(t, err)
		assert.NotNil(t, p)
	})

	t.Run("NotFound", func(t *testing.T) {
		name := "Renamed"
		mock.ExpectQuery(`UPDATE products SET updated_at = NOW\(\), name = \$1 WHERE id = \$2`).
			WithArgs(name, uint(99)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Update(ctx, 99, UpdateProductInput{Name: &name})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
			WithArgs(uint(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 1))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
			WithArgs(uint(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 99), ErrProductNotFound)
	})
}
