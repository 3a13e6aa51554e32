package reconcile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tagcenter/tagcenter/internal/domain"
)

// ─── Owner Transaction Management ───────────────────────────────────────────

// ListTransactions returns live transactions matching filter, newest first.
func (s *Service) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	return s.store.ListTransactions(ctx, filter)
}

// Vehicles returns the distinct vehicle numbers seen so far.
func (s *Service) Vehicles(ctx context.Context) ([]string, error) {
	return s.store.ListVehicles(ctx)
}

// CorrectTransactionDate moves a transaction to createdAt. The pending fold
// is order independent, so no cache refresh is needed.
func (s *Service) CorrectTransactionDate(ctx context.Context, id string, createdAt time.Time) (err error) {
	span := s.tracer.StartSpan(ctx, "correct_transaction_date", map[string]string{"id": id})
	defer func() { s.tracer.EndSpan(span, err) }()

	if createdAt.IsZero() {
		return domain.ErrDateRequired
	}
	return s.store.UpdateTransactionDate(ctx, id, createdAt)
}

// DeleteTransaction soft-deletes a transaction and refreshes its vehicle's
// cached pending value.
func (s *Service) DeleteTransaction(ctx context.Context, id string) (err error) {
	span := s.tracer.StartSpan(ctx, "delete_transaction", map[string]string{"id": id})
	defer func() { s.tracer.EndSpan(span, err) }()

	err = s.store.Atomically(ctx, func(st domain.Store) error {
		tx, err := st.GetTransaction(ctx, id)
		if err != nil {
			return err
		}
		if err := st.SoftDeleteTransaction(ctx, id, s.now()); err != nil {
			return err
		}
		pending, err := pendingOf(ctx, st, tx.VehicleNumber)
		if err != nil {
			return err
		}
		return st.SetCachedPending(ctx, tx.VehicleNumber, domain.ClampPending(pending))
	})
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// ─── Shift History ──────────────────────────────────────────────────────────

// ListActivities returns every worker session, newest login first.
func (s *Service) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	return s.store.ListActivities(ctx)
}

// ListShiftRecords returns shift records, optionally for one worker.
func (s *Service) ListShiftRecords(ctx context.Context, worker string) ([]domain.ShiftRecord, error) {
	return s.store.ListShiftRecords(ctx, strings.TrimSpace(worker))
}

// GetShiftRecord returns one shift record.
func (s *Service) GetShiftRecord(ctx context.Context, id string) (*domain.ShiftRecord, error) {
	return s.store.GetShiftRecord(ctx, id)
}

// ─── Transports ─────────────────────────────────────────────────────────────

// AddTransportVehicle puts vehicle into the named transport group.
func (s *Service) AddTransportVehicle(ctx context.Context, name, vehicle string) error {
	name, vehicle = strings.TrimSpace(name), strings.TrimSpace(vehicle)
	if name == "" {
		return domain.ErrTransportNameRequired
	}
	if vehicle == "" {
		return domain.ErrVehicleRequired
	}
	return s.store.AddTransportVehicle(ctx, name, vehicle)
}

// RemoveTransportVehicle takes vehicle out of the named transport group.
func (s *Service) RemoveTransportVehicle(ctx context.Context, name, vehicle string) error {
	name, vehicle = strings.TrimSpace(name), strings.TrimSpace(vehicle)
	if name == "" {
		return domain.ErrTransportNameRequired
	}
	if vehicle == "" {
		return domain.ErrVehicleRequired
	}
	return s.store.RemoveTransportVehicle(ctx, name, vehicle)
}

// ListTransports returns every transport with its vehicles.
func (s *Service) ListTransports(ctx context.Context) ([]domain.Transport, error) {
	return s.store.ListTransports(ctx)
}
