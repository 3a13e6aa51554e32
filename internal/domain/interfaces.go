package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ─── Store Interfaces ───────────────────────────────────────────────────────
// These interfaces define boundaries between layers.
// Infrastructure implements them; application layer depends on them.
//
//go:generate mockgen -destination=mocks/mock_interfaces.go -package=mocks -source=interfaces.go

// TransactionStore is the durable transaction log.
// Every read excludes soft-deleted rows.
type TransactionStore interface {
	InsertTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id string) (*Transaction, error)
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]Transaction, error)

	// TransactionsForVehicle matches the vehicle number case-insensitively.
	TransactionsForVehicle(ctx context.Context, vehicle string) ([]Transaction, error)

	// TransactionsForWorker returns the worker's rows with from <= created_at <= to.
	TransactionsForWorker(ctx context.Context, worker string, from, to time.Time) ([]Transaction, error)

	// SetCachedPending refreshes the denormalized pending value on every row of the vehicle.
	SetCachedPending(ctx context.Context, vehicle string, pending decimal.Decimal) error

	UpdateTransactionDate(ctx context.Context, id string, createdAt time.Time) error
	SoftDeleteTransaction(ctx context.Context, id string, at time.Time) error
	ListVehicles(ctx context.Context) ([]string, error)
}

// ActivityStore persists worker sessions.
type ActivityStore interface {
	InsertActivity(ctx context.Context, a *Activity) error

	// LatestOpenActivity returns the newest activity with neither logout nor
	// shift close set, or ErrNoActiveShift.
	LatestOpenActivity(ctx context.Context, worker string) (*Activity, error)

	// LatestLoggedInActivity returns the newest activity without a logout,
	// or ErrNoActiveShift.
	LatestLoggedInActivity(ctx context.Context, worker string) (*Activity, error)

	UpdateActivity(ctx context.Context, a Activity) error
	ListActivities(ctx context.Context) ([]Activity, error)
}

// ShiftStore persists shift-close snapshots. Records are never updated.
type ShiftStore interface {
	InsertShiftRecord(ctx context.Context, r *ShiftRecord) error
	GetShiftRecord(ctx context.Context, id string) (*ShiftRecord, error)
	ListShiftRecords(ctx context.Context, worker string) ([]ShiftRecord, error)
}

// TransportStore persists vehicle groupings.
type TransportStore interface {
	AddTransportVehicle(ctx context.Context, name, vehicle string) error
	RemoveTransportVehicle(ctx context.Context, name, vehicle string) error
	ListTransports(ctx context.Context) ([]Transport, error)
}

// Store is the full persistence surface of the service.
type Store interface {
	TransactionStore
	ActivityStore
	ShiftStore
	TransportStore

	// Atomically runs fn against a Store bound to a single durable
	// transaction. fn's writes commit together or not at all.
	Atomically(ctx context.Context, fn func(Store) error) error

	Close() error
}
