package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tagcenter/tagcenter/internal/domain"
)

const transactionColumns = `id, vehicle_number, worker, transaction_type, payment_type,
	amount::text, total_pending::text, clears_id, created_at, deleted_at`

func (db *DB) InsertTransaction(ctx context.Context, tx *domain.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}
	var clearsID *string
	if tx.ClearsID != "" {
		clearsID = &tx.ClearsID
	}
	_, err := db.q.Exec(ctx, `
		INSERT INTO transactions (id, vehicle_number, vehicle_key, worker, transaction_type,
			payment_type, amount, total_pending, clears_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7::numeric, $8::numeric, $9, $10)
	`, tx.ID, tx.VehicleNumber, domain.VehicleKey(tx.VehicleNumber), tx.Worker,
		string(tx.TransactionType), string(tx.PaymentType), tx.Amount.String(),
		tx.TotalPending.String(), clearsID, tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (db *DB) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	tx, err := scanTransaction(db.q.QueryRow(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = $1 AND deleted_at IS NULL`, id))
	if isNoRows(err) {
		return nil, domain.ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (db *DB) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	where := []string{"deleted_at IS NULL"}
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if v := domain.VehicleKey(filter.Vehicle); v != "" {
		where = append(where, "strpos(vehicle_key, "+arg(v)+") > 0")
	}
	if w := strings.ToLower(strings.TrimSpace(filter.Worker)); w != "" {
		where = append(where, "strpos(lower(worker), "+arg(w)+") > 0")
	}
	if filter.PaymentType != "" {
		where = append(where, "payment_type = "+arg(string(filter.PaymentType)))
	}
	if !filter.From.IsZero() {
		where = append(where, "created_at >= "+arg(filter.From))
	}
	if !filter.To.IsZero() {
		where = append(where, "created_at <= "+arg(filter.To))
	}

	return db.queryTransactions(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions WHERE `+strings.Join(where, " AND ")+`
		ORDER BY created_at DESC, id
	`, args...)
}

func (db *DB) TransactionsForVehicle(ctx context.Context, vehicle string) ([]domain.Transaction, error) {
	return db.queryTransactions(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions WHERE vehicle_key = $1 AND deleted_at IS NULL
		ORDER BY created_at, id
	`, domain.VehicleKey(vehicle))
}

func (db *DB) TransactionsForWorker(ctx context.Context, worker string, from, to time.Time) ([]domain.Transaction, error) {
	return db.queryTransactions(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE worker = $1 AND created_at BETWEEN $2 AND $3 AND deleted_at IS NULL
		ORDER BY created_at, id
	`, worker, from, to)
}

func (db *DB) SetCachedPending(ctx context.Context, vehicle string, pending decimal.Decimal) error {
	_, err := db.q.Exec(ctx,
		`UPDATE transactions SET total_pending = $1::numeric WHERE vehicle_key = $2`,
		pending.String(), domain.VehicleKey(vehicle))
	if err != nil {
		return fmt.Errorf("update cached pending: %w", err)
	}
	return nil
}

func (db *DB) UpdateTransactionDate(ctx context.Context, id string, createdAt time.Time) error {
	tag, err := db.q.Exec(ctx,
		`UPDATE transactions SET created_at = $1 WHERE id = $2 AND deleted_at IS NULL`,
		createdAt, id)
	if err != nil {
		return fmt.Errorf("update transaction date: %w", err)
	}
	return requireAffected(tag, domain.ErrTransactionNotFound)
}

func (db *DB) SoftDeleteTransaction(ctx context.Context, id string, at time.Time) error {
	tag, err := db.q.Exec(ctx,
		`UPDATE transactions SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`, at, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return requireAffected(tag, domain.ErrTransactionNotFound)
}

func (db *DB) ListVehicles(ctx context.Context) ([]string, error) {
	rows, err := db.q.Query(ctx, `
		SELECT MIN(vehicle_number) FROM transactions
		WHERE deleted_at IS NULL
		GROUP BY vehicle_key ORDER BY vehicle_key
	`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func (db *DB) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := db.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, tx)
	}
	return result, rows.Err()
}

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var tx domain.Transaction
	var txType, payType, amountStr, pendingStr string
	var clearsID *string
	if err := row.Scan(&tx.ID, &tx.VehicleNumber, &tx.Worker, &txType, &payType,
		&amountStr, &pendingStr, &clearsID, &tx.CreatedAt, &tx.DeletedAt); err != nil {
		return tx, err
	}
	tx.TransactionType = domain.TransactionType(txType)
	tx.PaymentType = domain.PaymentType(payType)
	if clearsID != nil {
		tx.ClearsID = *clearsID
	}

	var err error
	if tx.Amount, err = decimal.NewFromString(amountStr); err != nil {
		return tx, fmt.Errorf("parse amount %q: %w", amountStr, err)
	}
	if tx.TotalPending, err = decimal.NewFromString(pendingStr); err != nil {
		return tx, fmt.Errorf("parse total_pending %q: %w", pendingStr, err)
	}
	return tx, nil
}
