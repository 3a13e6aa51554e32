package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tagcenter/tagcenter/internal/domain"
)

// ─── Transaction Operations ─────────────────────────────────────────────────

const transactionColumns = `id, vehicle_number, worker, transaction_type, payment_type,
	amount, total_pending, clears_id, created_at, deleted_at`

// InsertTransaction appends tx to the log, assigning ID and CreatedAt when unset.
func (db *DB) InsertTransaction(ctx context.Context, tx *domain.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}
	_, err := db.q.ExecContext(ctx, `
		INSERT INTO transactions (id, vehicle_number, vehicle_key, worker, transaction_type,
			payment_type, amount, total_pending, clears_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, tx.ID, tx.VehicleNumber, domain.VehicleKey(tx.VehicleNumber), tx.Worker,
		string(tx.TransactionType), string(tx.PaymentType), tx.Amount.String(),
		tx.TotalPending.String(), nullString(tx.ClearsID), formatTime(tx.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetTransaction returns a live transaction or domain.ErrTransactionNotFound.
func (db *DB) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	row := db.q.QueryRowContext(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions WHERE id = ? AND deleted_at IS NULL
	`, id)
	tx, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// ListTransactions returns live transactions matching filter, newest first.
func (db *DB) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	where := []string{"deleted_at IS NULL"}
	var args []any
	if v := domain.VehicleKey(filter.Vehicle); v != "" {
		where = append(where, "instr(vehicle_key, ?) > 0")
		args = append(args, v)
	}
	if w := strings.ToLower(strings.TrimSpace(filter.Worker)); w != "" {
		where = append(where, "instr(lower(worker), ?) > 0")
		args = append(args, w)
	}
	if filter.PaymentType != "" {
		where = append(where, "payment_type = ?")
		args = append(args, string(filter.PaymentType))
	}
	if !filter.From.IsZero() {
		where = append(where, "created_at >= ?")
		args = append(args, formatTime(filter.From))
	}
	if !filter.To.IsZero() {
		where = append(where, "created_at <= ?")
		args = append(args, formatTime(filter.To))
	}

	return db.queryTransactions(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions WHERE `+strings.Join(where, " AND ")+`
		ORDER BY created_at DESC, id
	`, args...)
}

// TransactionsForVehicle returns every live row of the vehicle, any case.
func (db *DB) TransactionsForVehicle(ctx context.Context, vehicle string) ([]domain.Transaction, error) {
	return db.queryTransactions(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions WHERE vehicle_key = ? AND deleted_at IS NULL
		ORDER BY created_at, id
	`, domain.VehicleKey(vehicle))
}

// TransactionsForWorker returns the worker's live rows in [from, to].
func (db *DB) TransactionsForWorker(ctx context.Context, worker string, from, to time.Time) ([]domain.Transaction, error) {
	return db.queryTransactions(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE worker = ? AND created_at >= ? AND created_at <= ? AND deleted_at IS NULL
		ORDER BY created_at, id
	`, worker, formatTime(from), formatTime(to))
}

// SetCachedPending rewrites the denormalized pending value on all rows of
// the vehicle.
func (db *DB) SetCachedPending(ctx context.Context, vehicle string, pending decimal.Decimal) error {
	_, err := db.q.ExecContext(ctx,
		`UPDATE transactions SET total_pending = ? WHERE vehicle_key = ?`,
		pending.String(), domain.VehicleKey(vehicle))
	if err != nil {
		return fmt.Errorf("update cached pending: %w", err)
	}
	return nil
}

// UpdateTransactionDate is the manual date correction.
func (db *DB) UpdateTransactionDate(ctx context.Context, id string, createdAt time.Time) error {
	res, err := db.q.ExecContext(ctx,
		`UPDATE transactions SET created_at = ? WHERE id = ? AND deleted_at IS NULL`,
		formatTime(createdAt), id)
	if err != nil {
		return fmt.Errorf("update transaction date: %w", err)
	}
	return requireAffected(res, domain.ErrTransactionNotFound)
}

// SoftDeleteTransaction hides the row from every read.
func (db *DB) SoftDeleteTransaction(ctx context.Context, id string, at time.Time) error {
	res, err := db.q.ExecContext(ctx,
		`UPDATE transactions SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`,
		formatTime(at), id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return requireAffected(res, domain.ErrTransactionNotFound)
}

// ListVehicles returns one spelling per distinct vehicle, sorted.
func (db *DB) ListVehicles(ctx context.Context) ([]string, error) {
	rows, err := db.q.QueryContext(ctx, `
		SELECT MIN(vehicle_number) FROM transactions
		WHERE deleted_at IS NULL
		GROUP BY vehicle_key ORDER BY vehicle_key
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

// ─── Scanning ───────────────────────────────────────────────────────────────

func (db *DB) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := db.q.QueryContext(ctx, query, args...)
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

func scanTransaction(row rowScanner) (domain.Transaction, error) {
	var tx domain.Transaction
	var txType, payType, amountStr, pendingStr, createdStr string
	var clearsID, deletedAt sql.NullString
	if err := row.Scan(&tx.ID, &tx.VehicleNumber, &tx.Worker, &txType, &payType,
		&amountStr, &pendingStr, &clearsID, &createdStr, &deletedAt); err != nil {
		return tx, err
	}
	tx.TransactionType = domain.TransactionType(txType)
	tx.PaymentType = domain.PaymentType(payType)
	tx.ClearsID = clearsID.String

	var err error
	if tx.Amount, err = decimal.NewFromString(amountStr); err != nil {
		return tx, fmt.Errorf("parse amount %q: %w", amountStr, err)
	}
	if tx.TotalPending, err = decimal.NewFromString(pendingStr); err != nil {
		return tx, fmt.Errorf("parse total_pending %q: %w", pendingStr, err)
	}
	if tx.CreatedAt, err = parseTime(createdStr); err != nil {
		return tx, fmt.Errorf("parse created_at %q: %w", createdStr, err)
	}
	if tx.DeletedAt, err = parseNullTime(deletedAt); err != nil {
		return tx, fmt.Errorf("parse deleted_at: %w", err)
	}
	return tx, nil
}

func requireAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
