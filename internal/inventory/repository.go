package inventory

import (
	"context"
	"database/sql"

	"kirana-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	AdjustStockTx(ctx context.Context, m *StockMovement) error
	ListMovements(ctx context.Context, productID uint, limit, offset int32) ([]*StockMovement, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// AdjustStockTx applies a manual stock change and its audit row in one
// transaction: a relative update of products.stock plus one movement
// insert. The decrement path taken by order placement follows the same
// shape inside the order repository.
func (r *repository) AdjustStockTx(ctx context.Context, m *StockMovement) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "AdjustStockTx"),
		zap.Uint("product_id", m.ProductID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	res, err := tx.ExecContext(ctx, `
		UPDATE products
		SET stock = stock + $1, updated_at = NOW()
		WHERE id = $2
	`, m.Quantity, m.ProductID)
	if err != nil {
		log.Error("failed to update product stock", zap.Error(err))
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrProductNotFound
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO stock_movements (product_id, quantity, reason, order_id, note, created_by)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, created_at
	`,
		m.ProductID,
		m.Quantity,
		m.Reason,
		m.OrderID,
		m.Note,
		m.CreatedBy,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		log.Error("failed to insert stock movement", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit stock adjustment", zap.Error(err))
		return err
	}

	committed = true
	return nil
}

func (r *repository) ListMovements(
	ctx context.Context,
	productID uint,
	limit, offset int32,
) ([]*StockMovement, error) {

	query := `
		SELECT id, product_id, quantity, reason, order_id, note, created_by, created_at
		FROM stock_movements
		WHERE product_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movements []*StockMovement
	for rows.Next() {
		var m StockMovement
		err := rows.Scan(
			&m.ID,
			&m.ProductID,
			&m.Quantity,
			&m.Reason,
			&m.OrderID,
			&m.Note,
			&m.CreatedBy,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		movements = append(movements, &m)
	}

	return movements, rows.Err()
}
