package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tagcenter/tagcenter/internal/domain"
)

// ─── Shift Record Operations ────────────────────────────────────────────────

const shiftColumns = `id, activity_id, worker, shift_type, login_time, shift_close_time,
	bank_balances_json, totals_json, transactions_json, transaction_total`

// InsertShiftRecord writes the snapshot. The UNIQUE activity_id column
// rejects a second record for the same shift.
func (db *DB) InsertShiftRecord(ctx context.Context, r *domain.ShiftRecord) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	balances, err := json.Marshal(nonNil(r.BankBalances))
	if err != nil {
		return fmt.Errorf("encode bank balances: %w", err)
	}
	totals, err := json.Marshal(r.TotalsByPaymentType)
	if err != nil {
		return fmt.Errorf("encode totals: %w", err)
	}
	txs, err := json.Marshal(nonNil(r.Transactions))
	if err != nil {
		return fmt.Errorf("encode transactions: %w", err)
	}

	_, err = db.q.ExecContext(ctx, `
		INSERT INTO shift_records (`+shiftColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.ActivityID, r.Worker, string(r.ShiftType), formatTime(r.LoginTime),
		formatTime(r.ShiftCloseTime), string(balances), string(totals), string(txs),
		r.TransactionTotal.String())
	if err != nil {
		return fmt.Errorf("insert shift record: %w", err)
	}
	return nil
}

// GetShiftRecord returns one snapshot or domain.ErrShiftRecordNotFound.
func (db *DB) GetShiftRecord(ctx context.Context, id string) (*domain.ShiftRecord, error) {
	r, err := scanShiftRecord(db.q.QueryRowContext(ctx,
		`SELECT `+shiftColumns+` FROM shift_records WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrShiftRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ListShiftRecords returns snapshots newest first; an empty worker lists all.
func (db *DB) ListShiftRecords(ctx context.Context, worker string) ([]domain.ShiftRecord, error) {
	query := `SELECT ` + shiftColumns + ` FROM shift_records`
	var args []any
	if worker != "" {
		query += ` WHERE worker = ?`
		args = append(args, worker)
	}
	query += ` ORDER BY shift_close_time DESC`

	rows, err := db.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ShiftRecord
	for rows.Next() {
		r, err := scanShiftRecord(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

func scanShiftRecord(row rowScanner) (domain.ShiftRecord, error) {
	var r domain.ShiftRecord
	var shiftType, loginStr, closeStr, balances, totals, txs, total string
	if err := row.Scan(&r.ID, &r.ActivityID, &r.Worker, &shiftType, &loginStr, &closeStr,
		&balances, &totals, &txs, &total); err != nil {
		return r, err
	}
	r.ShiftType = domain.ShiftType(shiftType)

	var err error
	if r.LoginTime, err = parseTime(loginStr); err != nil {
		return r, fmt.Errorf("parse login_time %q: %w", loginStr, err)
	}
	if r.ShiftCloseTime, err = parseTime(closeStr); err != nil {
		return r, fmt.Errorf("parse shift_close_time %q: %w", closeStr, err)
	}
	if r.TransactionTotal, err = decimal.NewFromString(total); err != nil {
		return r, fmt.Errorf("parse transaction_total %q: %w", total, err)
	}
	if err := json.Unmarshal([]byte(balances), &r.BankBalances); err != nil {
		return r, fmt.Errorf("decode bank balances: %w", err)
	}
	if err := json.Unmarshal([]byte(totals), &r.TotalsByPaymentType); err != nil {
		return r, fmt.Errorf("decode totals: %w", err)
	}
	if err := json.Unmarshal([]byte(txs), &r.Transactions); err != nil {
		return r, fmt.Errorf("decode transactions: %w", err)
	}
	return r, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
