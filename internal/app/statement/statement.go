// Package statement builds the owner's read-only views over the transaction
// log: per-vehicle and per-worker statements, pending roll-ups, and their CSV
// export. Nothing here writes to the store.
package statement

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tagcenter/tagcenter/internal/domain"
)

// Reader is the part of the store statements need.
type Reader interface {
	TransactionsForVehicle(ctx context.Context, vehicle string) ([]domain.Transaction, error)
	TransactionsForWorker(ctx context.Context, worker string, from, to time.Time) ([]domain.Transaction, error)
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)
	ListTransports(ctx context.Context) ([]domain.Transport, error)
}

// Builder assembles statements from a Reader.
type Builder struct {
	store Reader
	now   func() time.Time
}

// NewBuilder creates a statement builder.
func NewBuilder(store Reader) *Builder {
	return &Builder{store: store, now: time.Now}
}

// ─── Vehicle Statement ──────────────────────────────────────────────────────

// VehicleStatement is everything recorded against one vehicle.
type VehicleStatement struct {
	Vehicle        string               `json:"vehicle"`
	GeneratedAt    time.Time            `json:"generated_at"`
	Transactions   []domain.Transaction `json:"transactions"`
	Total          decimal.Decimal      `json:"total"`
	Pending        decimal.Decimal      `json:"pending"`
	PendingClamped decimal.Decimal      `json:"pending_clamped"`
}

// Vehicle builds the statement of vehicle, oldest transaction first.
// PENDING_CLEARED markers are left out of the listing.
func (b *Builder) Vehicle(ctx context.Context, vehicle string) (*VehicleStatement, error) {
	vehicle = strings.TrimSpace(vehicle)
	if vehicle == "" {
		return nil, domain.ErrVehicleRequired
	}
	txs, err := b.store.TransactionsForVehicle(ctx, vehicle)
	if err != nil {
		return nil, fmt.Errorf("load vehicle transactions: %w", err)
	}

	pending := domain.VehiclePending(vehicle, txs)
	listed := withoutMarkers(txs)
	return &VehicleStatement{
		Vehicle:        vehicle,
		GeneratedAt:    b.now(),
		Transactions:   listed,
		Total:          domain.TransactionTotal(listed),
		Pending:        pending,
		PendingClamped: domain.ClampPending(pending),
	}, nil
}

// ─── Worker Statement ───────────────────────────────────────────────────────

// WorkerStatement is a worker's activity over a period.
type WorkerStatement struct {
	Worker       string               `json:"worker"`
	From         time.Time            `json:"from"`
	To           time.Time            `json:"to"`
	GeneratedAt  time.Time            `json:"generated_at"`
	Transactions []domain.Transaction `json:"transactions"`
	Totals       domain.Totals        `json:"totals_by_payment_type"`
	Total        decimal.Decimal      `json:"total"`
}

// Worker builds the statement of worker for [from, to]. A zero to means now.
// Totals use the shift fold with no starting cash.
func (b *Builder) Worker(ctx context.Context, worker string, from, to time.Time) (*WorkerStatement, error) {
	worker = strings.TrimSpace(worker)
	if worker == "" {
		return nil, domain.ErrWorkerRequired
	}
	now := b.now()
	if to.IsZero() {
		to = now
	}
	txs, err := b.store.TransactionsForWorker(ctx, worker, from, to)
	if err != nil {
		return nil, fmt.Errorf("load worker transactions: %w", err)
	}

	listed := withoutMarkers(txs)
	return &WorkerStatement{
		Worker:       worker,
		From:         from,
		To:           to,
		GeneratedAt:  now,
		Transactions: listed,
		Totals:       domain.ShiftTotals(decimal.Zero, listed),
		Total:        domain.TransactionTotal(listed),
	}, nil
}

// ─── Pending Roll-ups ───────────────────────────────────────────────────────

// VehiclePending is one vehicle's outstanding amount.
type VehiclePending struct {
	Vehicle string          `json:"vehicle"`
	Pending decimal.Decimal `json:"pending"`
}

// PendingVehicles lists every vehicle that still owes something, largest
// debt first.
func (b *Builder) PendingVehicles(ctx context.Context) ([]VehiclePending, error) {
	balances, err := b.balances(ctx)
	if err != nil {
		return nil, err
	}

	var result []VehiclePending
	for _, vp := range balances {
		if vp.Pending.IsPositive() {
			result = append(result, vp)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if c := result[i].Pending.Cmp(result[j].Pending); c != 0 {
			return c > 0
		}
		return result[i].Vehicle < result[j].Vehicle
	})
	return result, nil
}

// TransportPending is the pending roll-up of one transport.
type TransportPending struct {
	Name     string           `json:"name"`
	Vehicles []VehiclePending `json:"vehicles"`
	Total    decimal.Decimal  `json:"total"`
}

// Transports rolls clamped vehicle pending up to each transport. Vehicles
// that never transacted count as zero.
func (b *Builder) Transports(ctx context.Context) ([]TransportPending, error) {
	transports, err := b.store.ListTransports(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transports: %w", err)
	}
	balances, err := b.balances(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]TransportPending, 0, len(transports))
	for _, t := range transports {
		tp := TransportPending{Name: t.Name, Total: decimal.Zero}
		for _, v := range t.Vehicles {
			pending := decimal.Zero
			if vp, ok := balances[domain.VehicleKey(v)]; ok {
				pending = vp.Pending
			}
			tp.Vehicles = append(tp.Vehicles, VehiclePending{Vehicle: v, Pending: pending})
			tp.Total = tp.Total.Add(pending)
		}
		result = append(result, tp)
	}
	return result, nil
}

// balances folds the whole log into clamped pending per vehicle key.
func (b *Builder) balances(ctx context.Context) (map[string]VehiclePending, error) {
	txs, err := b.store.ListTransactions(ctx, domain.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	raw := make(map[string]VehiclePending)
	for _, tx := range txs {
		key := domain.VehicleKey(tx.VehicleNumber)
		vp, ok := raw[key]
		if !ok {
			vp = VehiclePending{Vehicle: tx.VehicleNumber, Pending: decimal.Zero}
		}
		vp.Pending = vp.Pending.Add(domain.PendingEffect(tx))
		raw[key] = vp
	}
	for key, vp := range raw {
		vp.Pending = domain.ClampPending(vp.Pending)
		raw[key] = vp
	}
	return raw, nil
}

func withoutMarkers(txs []domain.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(txs))
	for _, tx := range txs {
		if !tx.IsClearedMarker() && !tx.Deleted() {
			out = append(out, tx)
		}
	}
	return out
}
