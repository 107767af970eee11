package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"kirana-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Record(ctx context.Context, txn *Transaction) (*Transaction, error)
	DailySales(ctx context.Context, day time.Time) (*DailySalesReport, error)
	List(ctx context.Context, txnType *TransactionType, limit, offset int32) ([]*Transaction, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Record appends one ledger row. There is no update or delete path in
// this package: the ledger is append-only.
func (r *repository) Record(ctx context.Context, txn *Transaction) (*Transaction, error) {
	query := `
		INSERT INTO transactions (
			type, amount, payment_method, order_id, customer_id, note, recorded_by
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		txn.Type,
		txn.Amount,
		txn.PaymentMethod,
		txn.OrderID,
		txn.CustomerID,
		txn.Note,
		txn.RecordedBy,
	).Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to record ledger transaction",
			zap.String("type", string(txn.Type)),
			zap.Error(err),
		)
		return nil, err
	}

	return txn, nil
}

// DailySales sums sale rows inside the given local calendar day. The
// window is [00:00:00.000, 23:59:59.999]: a half-open range against
// the next midnight keeps the last millisecond in and the next day's
// first instant out.
func (r *repository) DailySales(ctx context.Context, day time.Time) (*DailySalesReport, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	query := `
		SELECT
			COALESCE(SUM(amount), 0),
			COALESCE(SUM(amount) FILTER (WHERE payment_method = 'upi'), 0),
			COUNT(*)
		FROM transactions
		WHERE type = 'sale'
		  AND created_at >= $1
		  AND created_at < $2
	`

	var report DailySalesReport
	report.Date = start.Format("2006-01-02")

	err := r.db.QueryRowContext(ctx, query, start, end).
		Scan(&report.Total, &report.UPITotal, &report.Count)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to aggregate daily sales",
			zap.String("date", report.Date),
			zap.Error(err),
		)
		return nil, err
	}

	return &report, nil
}

func (r *repository) List(
	ctx context.Context,
	txnType *TransactionType,
	limit, offset int32,
) ([]*Transaction, error) {

	query := `
		SELECT id, type, amount, payment_method, order_id, customer_id, note, recorded_by, created_at
		FROM transactions
		WHERE 1=1
	`

	args := []any{}
	argIndex := 1

	if txnType != nil && *txnType != "" {
		query += fmt.Sprintf(" AND type = $%d", argIndex)
		args = append(args, *txnType)
		argIndex++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []*Transaction
	for rows.Next() {
		var t Transaction
		err := rows.Scan(
			&t.ID,
			&t.Type,
			&t.Amount,
			&t.PaymentMethod,
			&t.OrderID,
			&t.CustomerID,
			&t.Note,
			&t.RecordedBy,
			&t.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		txns = append(txns, &t)
	}

	return txns, rows.Err()
}
