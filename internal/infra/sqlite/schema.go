package sqlite

// ─── Schema ─────────────────────────────────────────────────────────────────

// Migrations returns the schema statements in application order.
// Each string is a single SQL statement (SQLite executes one at a time).
func Migrations() []string {
	return []string{
		// Transaction log. Amounts are decimal strings; vehicle_key is the
		// upper-cased vehicle number used for case-insensitive matching.
		`CREATE TABLE IF NOT EXISTS transactions (
			id               TEXT PRIMARY KEY,
			vehicle_number   TEXT NOT NULL,
			vehicle_key      TEXT NOT NULL,
			worker           TEXT NOT NULL,
			transaction_type TEXT NOT NULL,
			payment_type     TEXT NOT NULL,
			amount           TEXT NOT NULL,
			total_pending    TEXT NOT NULL DEFAULT '0',
			clears_id        TEXT,
			created_at       TEXT NOT NULL,
			deleted_at       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tx_vehicle ON transactions(vehicle_key)`,
		`CREATE INDEX IF NOT EXISTS idx_tx_worker_time ON transactions(worker, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_tx_created ON transactions(created_at)`,

		// Worker sessions
		`CREATE TABLE IF NOT EXISTS activities (
			id               TEXT PRIMARY KEY,
			worker           TEXT NOT NULL,
			login_time       TEXT NOT NULL,
			logout_time      TEXT,
			shift_close_time TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_activity_worker ON activities(worker, login_time)`,

		// Shift-close snapshots. One per activity.
		`CREATE TABLE IF NOT EXISTS shift_records (
			id                 TEXT PRIMARY KEY,
			activity_id        TEXT NOT NULL UNIQUE,
			worker             TEXT NOT NULL,
			shift_type         TEXT NOT NULL,
			login_time         TEXT NOT NULL,
			shift_close_time   TEXT NOT NULL,
			bank_balances_json TEXT NOT NULL DEFAULT '[]',
			totals_json        TEXT NOT NULL DEFAULT '{}',
			transactions_json  TEXT NOT NULL DEFAULT '[]',
			transaction_total  TEXT NOT NULL DEFAULT '0'
		)`,
		`CREATE INDEX IF NOT EXISTS idx_shift_worker ON shift_records(worker, shift_close_time)`,

		// Transport groupings
		`CREATE TABLE IF NOT EXISTS transport_vehicles (
			name        TEXT NOT NULL,
			vehicle     TEXT NOT NULL,
			vehicle_key TEXT NOT NULL,
			added_at    TEXT NOT NULL,
			PRIMARY KEY (name, vehicle_key)
		)`,
	}
}
