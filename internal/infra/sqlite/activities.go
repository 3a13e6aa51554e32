package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tagcenter/tagcenter/internal/domain"
)

// ─── Activity Operations ────────────────────────────────────────────────────

// InsertActivity records a worker login.
func (db *DB) InsertActivity(ctx context.Context, a *domain.Activity) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	_, err := db.q.ExecContext(ctx, `
		INSERT INTO activities (id, worker, login_time, logout_time, shift_close_time)
		VALUES (?, ?, ?, ?, ?)
	`, a.ID, a.Worker, formatTime(a.LoginTime), nullTime(a.LogoutTime), nullTime(a.ShiftCloseTime))
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// LatestOpenActivity returns the newest session that can still be closed.
func (db *DB) LatestOpenActivity(ctx context.Context, worker string) (*domain.Activity, error) {
	return db.latestActivity(ctx, `
		SELECT id, worker, login_time, logout_time, shift_close_time
		FROM activities
		WHERE worker = ? AND logout_time IS NULL AND shift_close_time IS NULL
		ORDER BY login_time DESC LIMIT 1
	`, worker)
}

// LatestLoggedInActivity returns the newest session without a logout.
func (db *DB) LatestLoggedInActivity(ctx context.Context, worker string) (*domain.Activity, error) {
	return db.latestActivity(ctx, `
		SELECT id, worker, login_time, logout_time, shift_close_time
		FROM activities
		WHERE worker = ? AND logout_time IS NULL
		ORDER BY login_time DESC LIMIT 1
	`, worker)
}

func (db *DB) latestActivity(ctx context.Context, query, worker string) (*domain.Activity, error) {
	a, err := scanActivity(db.q.QueryRowContext(ctx, query, worker))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNoActiveShift
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateActivity stores the logout and shift-close times of a.
func (db *DB) UpdateActivity(ctx context.Context, a domain.Activity) error {
	res, err := db.q.ExecContext(ctx, `
		UPDATE activities SET logout_time = ?, shift_close_time = ? WHERE id = ?
	`, nullTime(a.LogoutTime), nullTime(a.ShiftCloseTime), a.ID)
	if err != nil {
		return fmt.Errorf("update activity: %w", err)
	}
	return requireAffected(res, domain.ErrNoActiveShift)
}

// ListActivities returns every session, newest login first.
func (db *DB) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	rows, err := db.q.QueryContext(ctx, `
		SELECT id, worker, login_time, logout_time, shift_close_time
		FROM activities ORDER BY login_time DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

func scanActivity(row rowScanner) (domain.Activity, error) {
	var a domain.Activity
	var loginStr string
	var logout, closed sql.NullString
	if err := row.Scan(&a.ID, &a.Worker, &loginStr, &logout, &closed); err != nil {
		return a, err
	}

	var err error
	if a.LoginTime, err = parseTime(loginStr); err != nil {
		return a, fmt.Errorf("parse login_time %q: %w", loginStr, err)
	}
	if a.LogoutTime, err = parseNullTime(logout); err != nil {
		return a, fmt.Errorf("parse logout_time: %w", err)
	}
	if a.ShiftCloseTime, err = parseNullTime(closed); err != nil {
		return a, fmt.Errorf("parse shift_close_time: %w", err)
	}
	return a, nil
}
