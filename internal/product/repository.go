package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"kirana-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, p *Product) (*Product, error)
	GetByID(ctx context.Context, id uint) (*Product, error)
	List(ctx context.Context, filter *ProductFilterInput, limit, offset int32) ([]*Product, error)
	ListLowStock(ctx context.Context) ([]*Product, error)
	Update(ctx context.Context, id uint, input UpdateProductInput) (*Product, error)
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `id, name, name_local, category, unit, barcode, price, stock, min_stock, gst_rate, created_at, updated_at`

func scanProduct(row interface{ Scan(dest ...any) error }) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.NameLocal,
		&p.Category,
		&p.Unit,
		&p.Barcode,
		&p.Price,
		&p.Stock,
		&p.MinStock,
		&p.GSTRate,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Create(ctx context.Context, p *Product) (*Product, error) {
	query := `
		INSERT INTO products (
			name, name_local, category, unit, barcode,
			price, stock, min_stock, gst_rate
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		p.Name,
		p.NameLocal,
		p.Category,
		p.Unit,
		p.Barcode,
		p.Price,
		p.Stock,
		p.MinStock,
		p.GSTRate,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *repository) List(
	ctx context.Context,
	filter *ProductFilterInput,
	limit, offset int32,
) ([]*Product, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("method", "List"),
		zap.Int32("limit", limit),
		zap.Int32("offset", offset),
	)

	query := fmt.Sprintf(`SELECT %s FROM products WHERE 1=1`, productColumns)

	args := []any{}
	argIndex := 1

	if filter != nil {
		if filter.Search != nil && *filter.Search != "" {
			query += fmt.Sprintf(
				" AND (name ILIKE $%d OR name_local ILIKE $%d OR barcode = $%d)",
				argIndex, argIndex, argIndex+1,
			)
			args = append(args, "%"+*filter.Search+"%", *filter.Search)
			argIndex += 2
		}

		if filter.Category != nil && *filter.Category != "" {
			query += fmt.Sprintf(" AND category = $%d", argIndex)
			args = append(args, *filter.Category)
			argIndex++
		}
	}

	query += fmt.Sprintf(" ORDER BY name ASC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Error("failed to scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// ListLowStock evaluates the low-stock predicate at read time; nothing
// is cached or precomputed.
func (r *repository) ListLowStock(ctx context.Context) ([]*Product, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM products WHERE stock <= min_stock ORDER BY name ASC`,
		productColumns,
	)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *repository) Update(ctx context.Context, id uint, input UpdateProductInput) (*Product, error) {
	query := `UPDATE products SET updated_at = NOW()`

	args := []any{}
	argIndex := 1

	setField := func(column string, value any) {
		query += fmt.Sprintf(", %s = $%d", column, argIndex)
		args = append(args, value)
		argIndex++
	}

	if input.Name != nil {
		setField("name", *input.Name)
	}
	if input.NameLocal != nil {
		setField("name_local", *input.NameLocal)
	}
	if input.Category != nil {
		setField("category", *input.Category)
	}
	if input.Unit != nil {
		setField("unit", *input.Unit)
	}
	if input.Barcode != nil {
		setField("barcode", *input.Barcode)
	}
	if input.Price != nil {
		setField("price", *input.Price)
	}
	if input.MinStock != nil {
		setField("min_stock", *input.MinStock)
	}
	if input.GSTRate != nil {
		setField("gst_rate", *input.GSTRate)
	}

	query += fmt.Sprintf(" WHERE id = $%d RETURNING %s", argIndex, productColumns)
	args = append(args, id)

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}
