package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, c *Customer) (*Customer, error)
	GetByID(ctx context.Context, id uint) (*Customer, error)
	Search(ctx context.Context, term string, limit, offset int32) ([]*Customer, error)
	Update(ctx context.Context, id uint, input UpdateCustomerInput) (*Customer, error)
	Delete(ctx context.Context, id uint) error
	AddCredit(ctx context.Context, id uint, delta decimal.Decimal) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const customerColumns = `id, name, phone, address, credit_balance, created_at, updated_at`

func scanCustomer(row interface{ Scan(dest ...any) error }) (*Customer, error) {
	var c Customer
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Phone,
		&c.Address,
		&c.CreditBalance,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Create(ctx context.Context, c *Customer) (*Customer, error) {
	query := `
		INSERT INTO customers (name, phone, address, credit_balance)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		c.Name,
		c.Phone,
		c.Address,
		c.CreditBalance,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE id = $1`, customerColumns)

	c, err := scanCustomer(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (r *repository) Search(ctx context.Context, term string, limit, offset int32) ([]*Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE 1=1`, customerColumns)

	args := []any{}
	argIndex := 1

	if term != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR phone ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+term+"%")
		argIndex++
	}

	query += fmt.Sprintf(" ORDER BY name ASC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	return customers, rows.Err()
}

func (r *repository) Update(ctx context.Context, id uint, input UpdateCustomerInput) (*Customer, error) {
	query := `UPDATE customers SET updated_at = NOW()`

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
	if input.Phone != nil {
		setField("phone", *input.Phone)
	}
	if input.Address != nil {
		setField("address", *input.Address)
	}

	query += fmt.Sprintf(" WHERE id = $%d RETURNING %s", argIndex, customerColumns)
	args = append(args, id)

	c, err := scanCustomer(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// AddCredit applies a relative change to the customer's credit balance.
// Negative delta records a repayment.
func (r *repository) AddCredit(ctx context.Context, id uint, delta decimal.Decimal) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE customers
		SET credit_balance = credit_balance + $1, updated_at = NOW()
		WHERE id = $2
	`, delta, id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}
