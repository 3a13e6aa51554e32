package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tagcenter/tagcenter/internal/domain"
)

// ─── Activities ─────────────────────────────────────────────────────────────

const activityColumns = `id, worker, login_time, logout_time, shift_close_time`

// InsertActivity records a login. idx_activity_one_open allows one open
// session per worker; a concurrent second login gets ErrShiftAlreadyOpen.
func (db *DB) InsertActivity(ctx context.Context, a *domain.Activity) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	_, err := db.q.Exec(ctx, `
		INSERT INTO activities (id, worker, login_time, logout_time, shift_close_time)
		VALUES ($1, $2, $3, $4, $5)
	`, a.ID, a.Worker, a.LoginTime, a.LogoutTime, a.ShiftCloseTime)
	if isUniqueViolation(err, "idx_activity_one_open") {
		return domain.ErrShiftAlreadyOpen
	}
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (db *DB) LatestOpenActivity(ctx context.Context, worker string) (*domain.Activity, error) {
	return db.latestActivity(ctx, `
		SELECT `+activityColumns+` FROM activities
		WHERE worker = $1 AND logout_time IS NULL AND shift_close_time IS NULL
		ORDER BY login_time DESC LIMIT 1
	`, worker)
}

func (db *DB) LatestLoggedInActivity(ctx context.Context, worker string) (*domain.Activity, error) {
	return db.latestActivity(ctx, `
		SELECT `+activityColumns+` FROM activities
		WHERE worker = $1 AND logout_time IS NULL
		ORDER BY login_time DESC LIMIT 1
	`, worker)
}

func (db *DB) latestActivity(ctx context.Context, query, worker string) (*domain.Activity, error) {
	var a domain.Activity
	err := db.q.QueryRow(ctx, query, worker).
		Scan(&a.ID, &a.Worker, &a.LoginTime, &a.LogoutTime, &a.ShiftCloseTime)
	if isNoRows(err) {
		return nil, domain.ErrNoActiveShift
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (db *DB) UpdateActivity(ctx context.Context, a domain.Activity) error {
	tag, err := db.q.Exec(ctx,
		`UPDATE activities SET logout_time = $1, shift_close_time = $2 WHERE id = $3`,
		a.LogoutTime, a.ShiftCloseTime, a.ID)
	if err != nil {
		return fmt.Errorf("update activity: %w", err)
	}
	return requireAffected(tag, domain.ErrNoActiveShift)
}

func (db *DB) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	rows, err := db.q.Query(ctx,
		`SELECT `+activityColumns+` FROM activities ORDER BY login_time DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Activity, error) {
		var a domain.Activity
		err := row.Scan(&a.ID, &a.Worker, &a.LoginTime, &a.LogoutTime, &a.ShiftCloseTime)
		return a, err
	})
}

// ─── Shift Records ──────────────────────────────────────────────────────────

const shiftColumns = `id, activity_id, worker, shift_type, login_time, shift_close_time,
	bank_balances::text, totals::text, transactions::text, transaction_total::text`

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

	_, err = db.q.Exec(ctx, `
		INSERT INTO shift_records (id, activity_id, worker, shift_type, login_time, shift_close_time,
			bank_balances, totals, transactions, transaction_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8::jsonb, $9::jsonb, $10::numeric)
	`, r.ID, r.ActivityID, r.Worker, string(r.ShiftType), r.LoginTime, r.ShiftCloseTime,
		string(balances), string(totals), string(txs), r.TransactionTotal.String())
	if err != nil {
		return fmt.Errorf("insert shift record: %w", err)
	}
	return nil
}

func (db *DB) GetShiftRecord(ctx context.Context, id string) (*domain.ShiftRecord, error) {
	r, err := scanShiftRecord(db.q.QueryRow(ctx,
		`SELECT `+shiftColumns+` FROM shift_records WHERE id = $1`, id))
	if isNoRows(err) {
		return nil, domain.ErrShiftRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (db *DB) ListShiftRecords(ctx context.Context, worker string) ([]domain.ShiftRecord, error) {
	query := `SELECT ` + shiftColumns + ` FROM shift_records`
	var args []any
	if worker != "" {
		query += ` WHERE worker = $1`
		args = append(args, worker)
	}
	query += ` ORDER BY shift_close_time DESC`

	rows, err := db.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ShiftRecord, error) {
		return scanShiftRecord(row)
	})
}

func scanShiftRecord(row pgx.Row) (domain.ShiftRecord, error) {
	var r domain.ShiftRecord
	var shiftType, balances, totals, txs, total string
	if err := row.Scan(&r.ID, &r.ActivityID, &r.Worker, &shiftType, &r.LoginTime, &r.ShiftCloseTime,
		&balances, &totals, &txs, &total); err != nil {
		return r, err
	}
	r.ShiftType = domain.ShiftType(shiftType)

	var err error
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
