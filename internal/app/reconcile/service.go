// Package reconcile keeps vehicle pending balances and worker shift totals
// consistent with the transaction log.
//
// The service:
//  1. Derives a vehicle's pending balance from its transactions on every read
//  2. Records transactions, routing collections through the clearing workflow
//  3. Opens, logs out and closes worker shifts
//  4. Writes one immutable shift record per close
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tagcenter/tagcenter/internal/domain"
	"github.com/tagcenter/tagcenter/internal/infra/observability"
)

// Service is the reconciliation engine. It is safe for concurrent use; all
// coordination happens inside the store's transactions.
type Service struct {
	store  domain.Store
	tracer *observability.Tracer
	now    func() time.Time
}

// New creates a service over store. tracer may be nil.
func New(store domain.Store, tracer *observability.Tracer) *Service {
	return &Service{
		store:  store,
		tracer: tracer,
		now:    time.Now,
	}
}

// WithClock replaces the time source used for server-assigned timestamps.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ─── Pending Balance ────────────────────────────────────────────────────────

// PendingBalance returns the raw signed amount the vehicle owes.
func (s *Service) PendingBalance(ctx context.Context, vehicle string) (_ decimal.Decimal, err error) {
	span := s.tracer.StartSpan(ctx, "pending_balance", map[string]string{"vehicle": vehicle})
	defer func() { s.tracer.EndSpan(span, err) }()

	if strings.TrimSpace(vehicle) == "" {
		return decimal.Zero, domain.ErrVehicleRequired
	}
	return pendingOf(ctx, s.store, vehicle)
}

func pendingOf(ctx context.Context, store domain.TransactionStore, vehicle string) (decimal.Decimal, error) {
	txs, err := store.TransactionsForVehicle(ctx, vehicle)
	if err != nil {
		return decimal.Zero, fmt.Errorf("load vehicle transactions: %w", err)
	}
	return domain.VehiclePending(vehicle, txs), nil
}

// EnterableTransactionTypes lists the transaction types a worker may pick
// for vehicle. PENDING is offered only while the vehicle owes something.
func (s *Service) EnterableTransactionTypes(ctx context.Context, vehicle string) ([]domain.TransactionType, error) {
	types := make([]domain.TransactionType, 0, len(domain.ProviderTransactionTypes)+2)
	types = append(types, domain.TxCash)
	types = append(types, domain.ProviderTransactionTypes...)

	if strings.TrimSpace(vehicle) == "" {
		return types, nil
	}
	raw, err := s.PendingBalance(ctx, vehicle)
	if err != nil {
		return nil, err
	}
	if domain.ClampPending(raw).IsPositive() {
		types = append([]domain.TransactionType{domain.TxPending}, types...)
	}
	return types, nil
}

// ─── Recording ──────────────────────────────────────────────────────────────

// Receipt describes what recording a transaction wrote.
type Receipt struct {
	Transaction domain.Transaction `json:"transaction"`

	// Set only when the transaction collected against a pending debt.
	ClearedID  string           `json:"cleared_id,omitempty"`
	NewPending *decimal.Decimal `json:"new_pending,omitempty"`
}

// RecordTransaction validates and appends tx. A PENDING transaction paid by
// CASH, GPAY/PHONE PAY or EXP is a collection and goes through
// RecordCollection instead.
func (s *Service) RecordTransaction(ctx context.Context, tx domain.Transaction) (_ *Receipt, err error) {
	tx.Normalize()
	span := s.tracer.StartSpan(ctx, "record_transaction", map[string]string{
		"vehicle": tx.VehicleNumber, "type": string(tx.TransactionType),
	})
	defer func() { s.tracer.EndSpan(span, err) }()

	if err := tx.Validate(); err != nil {
		return nil, err
	}
	if tx.IsClearedMarker() {
		return nil, domain.ErrMarkerNotEnterable
	}

	if tx.IsCollection() {
		ctx = observability.WithSpanID(ctx, span.SpanID)
		var res *CollectionResult
		res, err = s.RecordCollection(ctx, tx.VehicleNumber, tx.Amount, tx.PaymentType, tx.Worker)
		if err != nil {
			return nil, err
		}
		pending := res.NewPending
		return &Receipt{Transaction: res.Collection, ClearedID: res.ClearedID, NewPending: &pending}, nil
	}

	tx.ID = ""
	tx.ClearsID = ""
	tx.DeletedAt = nil
	tx.CreatedAt = s.now()
	err = s.store.Atomically(ctx, func(st domain.Store) error {
		current, err := pendingOf(ctx, st, tx.VehicleNumber)
		if err != nil {
			return err
		}
		tx.TotalPending = domain.ClampPending(current.Add(domain.PendingEffect(tx)))
		if err := st.InsertTransaction(ctx, &tx); err != nil {
			return err
		}
		if tx.PaymentType == domain.PayPending {
			return st.SetCachedPending(ctx, tx.VehicleNumber, tx.TotalPending)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("record transaction: %w", err)
	}

	observability.TransactionsRecorded.WithLabelValues(string(tx.TransactionType), string(tx.PaymentType)).Inc()
	return &Receipt{Transaction: tx}, nil
}

// CollectionResult is the outcome of a collection.
type CollectionResult struct {
	Collection domain.Transaction `json:"collection"`
	ClearedID  string             `json:"cleared_id"`
	NewPending decimal.Decimal    `json:"new_pending"`
}

// RecordCollection records money collected against the vehicle's pending
// debt. The collection, its PENDING_CLEARED marker and the refreshed pending
// cache commit together or not at all.
func (s *Service) RecordCollection(ctx context.Context, vehicle string, amount decimal.Decimal,
	paymentType domain.PaymentType, worker string) (_ *CollectionResult, err error) {
	span := s.tracer.StartSpan(ctx, "record_collection", map[string]string{
		"vehicle": vehicle, "payment_type": string(paymentType),
	})
	defer func() { s.tracer.EndSpan(span, err) }()

	collection := domain.Transaction{
		VehicleNumber:   vehicle,
		Worker:          worker,
		TransactionType: domain.TxPending,
		PaymentType:     paymentType,
		Amount:          amount,
	}
	collection.Normalize()
	if err := collection.Validate(); err != nil {
		return nil, err
	}
	if !collection.IsCollection() {
		return nil, domain.ErrNotCollection
	}

	now := s.now()
	collection.CreatedAt = now
	var result CollectionResult
	err = s.store.Atomically(ctx, func(st domain.Store) error {
		current, err := pendingOf(ctx, st, collection.VehicleNumber)
		if err != nil {
			return err
		}
		newPending := domain.ClampPending(current.Sub(collection.Amount))
		collection.TotalPending = newPending

		if err := st.InsertTransaction(ctx, &collection); err != nil {
			return fmt.Errorf("insert collection: %w", err)
		}

		cleared := domain.Transaction{
			VehicleNumber:   collection.VehicleNumber,
			Worker:          collection.Worker,
			TransactionType: domain.TxPendingCleared,
			PaymentType:     collection.PaymentType,
			Amount:          collection.Amount,
			TotalPending:    newPending,
			ClearsID:        collection.ID,
			CreatedAt:       now,
		}
		if err := st.InsertTransaction(ctx, &cleared); err != nil {
			return fmt.Errorf("insert cleared record: %w", err)
		}

		if err := st.SetCachedPending(ctx, collection.VehicleNumber, newPending); err != nil {
			return err
		}

		result = CollectionResult{Collection: collection, ClearedID: cleared.ID, NewPending: newPending}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("record collection: %w", err)
	}

	observability.TransactionsRecorded.WithLabelValues(string(domain.TxPending), string(collection.PaymentType)).Inc()
	observability.TransactionsRecorded.WithLabelValues(string(domain.TxPendingCleared), string(collection.PaymentType)).Inc()
	observability.Collections.WithLabelValues(string(collection.PaymentType)).Inc()
	observability.CollectedAmount.Add(collection.Amount.InexactFloat64())
	return &result, nil
}

// ─── Shifts ─────────────────────────────────────────────────────────────────

// OpenShift starts a worker session at loginTime (now when zero).
func (s *Service) OpenShift(ctx context.Context, worker string, loginTime time.Time) (_ *domain.Activity, err error) {
	span := s.tracer.StartSpan(ctx, "open_shift", map[string]string{"worker": worker})
	defer func() { s.tracer.EndSpan(span, err) }()

	worker = strings.TrimSpace(worker)
	if worker == "" {
		return nil, domain.ErrWorkerRequired
	}
	if loginTime.IsZero() {
		loginTime = s.now()
	}

	activity := domain.Activity{Worker: worker, LoginTime: loginTime}
	err = s.store.Atomically(ctx, func(st domain.Store) error {
		_, err := st.LatestOpenActivity(ctx, worker)
		switch {
		case err == nil:
			return domain.ErrShiftAlreadyOpen
		case !errors.Is(err, domain.ErrNoActiveShift):
			return err
		}
		return st.InsertActivity(ctx, &activity)
	})
	if err != nil {
		return nil, fmt.Errorf("open shift: %w", err)
	}

	observability.ShiftsOpened.Inc()
	log.Printf("[reconcile] shift opened: worker=%s activity=%s", worker, activity.ID)
	return &activity, nil
}

// Logout ends the worker's session without closing the shift. No shift
// record is written.
func (s *Service) Logout(ctx context.Context, worker string, at time.Time) (_ *domain.Activity, err error) {
	span := s.tracer.StartSpan(ctx, "logout", map[string]string{"worker": worker})
	defer func() { s.tracer.EndSpan(span, err) }()

	worker = strings.TrimSpace(worker)
	if worker == "" {
		return nil, domain.ErrWorkerRequired
	}
	if at.IsZero() {
		at = s.now()
	}

	var activity *domain.Activity
	err = s.store.Atomically(ctx, func(st domain.Store) error {
		a, err := st.LatestLoggedInActivity(ctx, worker)
		if err != nil {
			return err
		}
		a.LogoutTime = &at
		activity = a
		return st.UpdateActivity(ctx, *a)
	})
	if err != nil {
		return nil, fmt.Errorf("logout: %w", err)
	}
	return activity, nil
}

// CloseShift reconciles the worker's open shift and writes its record.
//
// The window is [loginTime, closeTime] of the newest activity with neither
// logout nor shift close. Totals start with CASH equal to the balance line
// named CASH. Ending the activity and writing the record are one store
// transaction; without an open activity nothing is written.
func (s *Service) CloseShift(ctx context.Context, worker string, shiftType domain.ShiftType,
	closeTime time.Time, balances []domain.BankBalance) (_ *domain.ShiftRecord, err error) {
	span := s.tracer.StartSpan(ctx, "close_shift", map[string]string{
		"worker": worker, "shift_type": string(shiftType),
	})
	defer func() { s.tracer.EndSpan(span, err) }()

	worker = strings.TrimSpace(worker)
	if worker == "" {
		return nil, domain.ErrWorkerRequired
	}
	shiftType = domain.ShiftType(strings.ToUpper(strings.TrimSpace(string(shiftType))))
	if !shiftType.Valid() {
		return nil, domain.ErrInvalidShiftType
	}
	if closeTime.IsZero() {
		closeTime = s.now()
	}

	var record domain.ShiftRecord
	err = s.store.Atomically(ctx, func(st domain.Store) error {
		activity, err := st.LatestOpenActivity(ctx, worker)
		if err != nil {
			return err
		}

		txs, err := st.TransactionsForWorker(ctx, worker, activity.LoginTime, closeTime)
		if err != nil {
			return fmt.Errorf("load shift transactions: %w", err)
		}

		record = domain.ShiftRecord{
			ActivityID:          activity.ID,
			Worker:              worker,
			ShiftType:           shiftType,
			LoginTime:           activity.LoginTime,
			ShiftCloseTime:      closeTime,
			BankBalances:        balances,
			TotalsByPaymentType: domain.ShiftTotals(domain.StartingCash(balances), txs),
			Transactions:        txs,
			TransactionTotal:    domain.TransactionTotal(txs),
		}

		activity.LogoutTime = &closeTime
		activity.ShiftCloseTime = &closeTime
		if err := st.UpdateActivity(ctx, *activity); err != nil {
			return err
		}
		return st.InsertShiftRecord(ctx, &record)
	})
	if err != nil {
		return nil, fmt.Errorf("close shift: %w", err)
	}

	observability.ShiftsClosed.WithLabelValues(string(shiftType)).Inc()
	log.Printf("[reconcile] shift closed: worker=%s type=%s transactions=%d record=%s",
		worker, shiftType, len(record.Transactions), record.ID)
	return &record, nil
}
