package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tagcenter/tagcenter/internal/domain"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

var base = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

func insertTx(t *testing.T, db *DB, vehicle, worker string, tt domain.TransactionType, pt domain.PaymentType, amount string, at time.Time) domain.Transaction {
	t.Helper()
	tx := domain.Transaction{
		VehicleNumber:   vehicle,
		Worker:          worker,
		TransactionType: tt,
		PaymentType:     pt,
		Amount:          decimal.RequireFromString(amount),
		CreatedAt:       at,
	}
	if err := db.InsertTransaction(context.Background(), &tx); err != nil {
		t.Fatalf("InsertTransaction() error: %v", err)
	}
	return tx
}

// ─── Transactions ───────────────────────────────────────────────────────────

func TestInsertGetTransaction(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	tx := insertTx(t, db, "TN01AB1234", "ravi", domain.TxPending, domain.PayPending, "500.25", base)
	if tx.ID == "" {
		t.Fatal("InsertTransaction should assign an ID")
	}

	got, err := db.GetTransaction(ctx, tx.ID)
	if err != nil {
		t.Fatalf("GetTransaction() error: %v", err)
	}
	if got.VehicleNumber != "TN01AB1234" || got.Worker != "ravi" {
		t.Errorf("got %q/%q, want TN01AB1234/ravi", got.VehicleNumber, got.Worker)
	}
	if !got.Amount.Equal(decimal.RequireFromString("500.25")) {
		t.Errorf("Amount = %s, want 500.25", got.Amount)
	}
	if !got.CreatedAt.Equal(base) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, base)
	}
	if got.TransactionType != domain.TxPending || got.PaymentType != domain.PayPending {
		t.Errorf("types = %s/%s, want PENDING/PENDING", got.TransactionType, got.PaymentType)
	}
}

func TestGetTransaction_NotFound(t *testing.T) {
	db := newTestDB(t)
	_, err := db.GetTransaction(context.Background(), "missing")
	if !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Errorf("GetTransaction(missing) error = %v, want ErrTransactionNotFound", err)
	}
}

func TestTransactionsForVehicle_CaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	insertTx(t, db, "TN01AB1234", "ravi", domain.TxPending, domain.PayPending, "500", base)
	insertTx(t, db, "tn01ab1234", "anu", domain.TxPending, domain.PayCash, "200", base.Add(time.Hour))
	insertTx(t, db, "KA05XY0001", "anu", domain.TxPending, domain.PayPending, "50", base)

	txs, err := db.TransactionsForVehicle(context.Background(), "Tn01Ab1234")
	if err != nil {
		t.Fatalf("TransactionsForVehicle() error: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("TransactionsForVehicle() returned %d, want 2", len(txs))
	}
	if got := domain.PendingBalance(txs); !got.Equal(decimal.NewFromInt(300)) {
		t.Errorf("PendingBalance() = %s, want 300", got)
	}
}

func TestTransactionsForWorker_Window(t *testing.T) {
	db := newTestDB(t)
	insertTx(t, db, "V1", "ravi", "HDFC BANK", domain.PayCash, "10", base.Add(-time.Minute))
	insertTx(t, db, "V2", "ravi", "HDFC BANK", domain.PayCash, "20", base)
	insertTx(t, db, "V3", "ravi", "HDFC BANK", domain.PayCash, "30", base.Add(4*time.Hour))
	insertTx(t, db, "V4", "anu", "HDFC BANK", domain.PayCash, "40", base.Add(time.Hour))
	insertTx(t, db, "V5", "ravi", "HDFC BANK", domain.PayCash, "50", base.Add(5*time.Hour))

	txs, err := db.TransactionsForWorker(context.Background(), "ravi", base, base.Add(4*time.Hour))
	if err != nil {
		t.Fatalf("TransactionsForWorker() error: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("TransactionsForWorker() returned %d, want 2 (bounds inclusive)", len(txs))
	}
	if txs[0].VehicleNumber != "V2" || txs[1].VehicleNumber != "V3" {
		t.Errorf("got %s,%s want V2,V3", txs[0].VehicleNumber, txs[1].VehicleNumber)
	}
}

func TestListTransactions_Filters(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	insertTx(t, db, "TN01AB1234", "Ravi", "HDFC BANK", domain.PayCash, "10", base)
	insertTx(t, db, "TN01CD5678", "Anu", "ICICI BANK", domain.PayDigital, "20", base.Add(time.Hour))
	insertTx(t, db, "KA05XY0001", "Ravi", "AXIS BANK", domain.PayDigital, "30", base.Add(2*time.Hour))

	tests := []struct {
		name   string
		filter domain.TransactionFilter
		want   int
	}{
		{"all", domain.TransactionFilter{}, 3},
		{"vehicle substring", domain.TransactionFilter{Vehicle: "tn01"}, 2},
		{"worker substring", domain.TransactionFilter{Worker: "rav"}, 2},
		{"payment type", domain.TransactionFilter{PaymentType: domain.PayDigital}, 2},
		{"from", domain.TransactionFilter{From: base.Add(30 * time.Minute)}, 2},
		{"to", domain.TransactionFilter{To: base.Add(30 * time.Minute)}, 1},
		{"combined", domain.TransactionFilter{Worker: "ravi", PaymentType: domain.PayDigital}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txs, err := db.ListTransactions(ctx, tt.filter)
			if err != nil {
				t.Fatalf("ListTransactions() error: %v", err)
			}
			if len(txs) != tt.want {
				t.Errorf("ListTransactions() returned %d, want %d", len(txs), tt.want)
			}
		})
	}

	all, _ := db.ListTransactions(ctx, domain.TransactionFilter{})
	if all[0].VehicleNumber != "KA05XY0001" {
		t.Errorf("newest first: got %s, want KA05XY0001", all[0].VehicleNumber)
	}
}

func TestSetCachedPending(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	insertTx(t, db, "TN01AB1234", "ravi", domain.TxPending, domain.PayPending, "500", base)
	insertTx(t, db, "tn01ab1234", "ravi", domain.TxPending, domain.PayCash, "200", base)
	other := insertTx(t, db, "KA05XY0001", "ravi", domain.TxPending, domain.PayPending, "5", base)

	if err := db.SetCachedPending(ctx, "TN01AB1234", decimal.NewFromInt(300)); err != nil {
		t.Fatalf("SetCachedPending() error: %v", err)
	}

	txs, _ := db.TransactionsForVehicle(ctx, "TN01AB1234")
	for _, tx := range txs {
		if !tx.TotalPending.Equal(decimal.NewFromInt(300)) {
			t.Errorf("TotalPending = %s, want 300", tx.TotalPending)
		}
	}
	got, _ := db.GetTransaction(ctx, other.ID)
	if !got.TotalPending.IsZero() {
		t.Errorf("other vehicle TotalPending = %s, want 0", got.TotalPending)
	}
}

func TestUpdateTransactionDate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tx := insertTx(t, db, "V1", "ravi", "HDFC BANK", domain.PayCash, "10", base)

	corrected := base.AddDate(0, 0, -2)
	if err := db.UpdateTransactionDate(ctx, tx.ID, corrected); err != nil {
		t.Fatalf("UpdateTransactionDate() error: %v", err)
	}
	got, _ := db.GetTransaction(ctx, tx.ID)
	if !got.CreatedAt.Equal(corrected) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, corrected)
	}

	if err := db.UpdateTransactionDate(ctx, "missing", corrected); !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Errorf("UpdateTransactionDate(missing) = %v, want ErrTransactionNotFound", err)
	}
}

func TestSoftDeleteTransaction(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tx := insertTx(t, db, "V1", "ravi", domain.TxPending, domain.PayPending, "10", base)

	if err := db.SoftDeleteTransaction(ctx, tx.ID, base.Add(time.Hour)); err != nil {
		t.Fatalf("SoftDeleteTransaction() error: %v", err)
	}
	if _, err := db.GetTransaction(ctx, tx.ID); !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Errorf("GetTransaction(deleted) = %v, want ErrTransactionNotFound", err)
	}
	txs, _ := db.TransactionsForVehicle(ctx, "V1")
	if len(txs) != 0 {
		t.Errorf("deleted row still listed for vehicle")
	}
	if err := db.SoftDeleteTransaction(ctx, tx.ID, base); !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Errorf("second delete = %v, want ErrTransactionNotFound", err)
	}
}

func TestListVehicles(t *testing.T) {
	db := newTestDB(t)
	insertTx(t, db, "TN01AB1234", "ravi", "HDFC BANK", domain.PayCash, "10", base)
	insertTx(t, db, "tn01ab1234", "ravi", "HDFC BANK", domain.PayCash, "10", base)
	insertTx(t, db, "KA05XY0001", "ravi", "HDFC BANK", domain.PayCash, "10", base)

	vehicles, err := db.ListVehicles(context.Background())
	if err != nil {
		t.Fatalf("ListVehicles() error: %v", err)
	}
	if len(vehicles) != 2 {
		t.Fatalf("ListVehicles() = %v, want 2 distinct", vehicles)
	}
	if vehicles[0] != "KA05XY0001" {
		t.Errorf("vehicles[0] = %q, want KA05XY0001", vehicles[0])
	}
}

// ─── Atomically ─────────────────────────────────────────────────────────────

func TestAtomically_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := db.Atomically(ctx, func(s domain.Store) error {
		tx := domain.Transaction{VehicleNumber: "V1", Worker: "ravi", TransactionType: domain.TxPending,
			PaymentType: domain.PayCash, Amount: decimal.NewFromInt(10), CreatedAt: base}
		if err := s.InsertTransaction(ctx, &tx); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Atomically() error = %v, want boom", err)
	}

	txs, _ := db.TransactionsForVehicle(ctx, "V1")
	if len(txs) != 0 {
		t.Errorf("rolled-back insert visible: %d rows", len(txs))
	}
}

func TestAtomically_CommitsAndNests(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	err := db.Atomically(ctx, func(outer domain.Store) error {
		return outer.Atomically(ctx, func(inner domain.Store) error {
			tx := domain.Transaction{VehicleNumber: "V1", Worker: "ravi", TransactionType: domain.TxPending,
				PaymentType: domain.PayPending, Amount: decimal.NewFromInt(10), CreatedAt: base}
			return inner.InsertTransaction(ctx, &tx)
		})
	})
	if err != nil {
		t.Fatalf("Atomically() error: %v", err)
	}
	txs, _ := db.TransactionsForVehicle(ctx, "V1")
	if len(txs) != 1 {
		t.Errorf("committed rows = %d, want 1", len(txs))
	}
}

// ─── Activities ─────────────────────────────────────────────────────────────

func TestActivities_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if _, err := db.LatestOpenActivity(ctx, "ravi"); !errors.Is(err, domain.ErrNoActiveShift) {
		t.Fatalf("LatestOpenActivity(empty) = %v, want ErrNoActiveShift", err)
	}

	older := domain.Activity{Worker: "ravi", LoginTime: base}
	newer := domain.Activity{Worker: "ravi", LoginTime: base.Add(2 * time.Hour)}
	for _, a := range []*domain.Activity{&older, &newer} {
		if err := db.InsertActivity(ctx, a); err != nil {
			t.Fatalf("InsertActivity() error: %v", err)
		}
	}

	got, err := db.LatestOpenActivity(ctx, "ravi")
	if err != nil {
		t.Fatalf("LatestOpenActivity() error: %v", err)
	}
	if got.ID != newer.ID {
		t.Errorf("LatestOpenActivity() = %s, want newest %s", got.ID, newer.ID)
	}

	closed := base.Add(10 * time.Hour)
	got.LogoutTime = &closed
	got.ShiftCloseTime = &closed
	if err := db.UpdateActivity(ctx, *got); err != nil {
		t.Fatalf("UpdateActivity() error: %v", err)
	}

	next, err := db.LatestOpenActivity(ctx, "ravi")
	if err != nil {
		t.Fatalf("LatestOpenActivity() after close error: %v", err)
	}
	if next.ID != older.ID {
		t.Errorf("LatestOpenActivity() = %s, want older %s", next.ID, older.ID)
	}

	all, err := db.ListActivities(ctx)
	if err != nil {
		t.Fatalf("ListActivities() error: %v", err)
	}
	if len(all) != 2 || all[0].ShiftCloseTime == nil || !all[0].ShiftCloseTime.Equal(closed) {
		t.Errorf("ListActivities() = %+v, want newest closed first", all)
	}
}

func TestLatestLoggedInActivity_IgnoresShiftClose(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	a := domain.Activity{Worker: "anu", LoginTime: base}
	db.InsertActivity(ctx, &a)

	got, err := db.LatestLoggedInActivity(ctx, "anu")
	if err != nil || got.ID != a.ID {
		t.Fatalf("LatestLoggedInActivity() = %v, %v", got, err)
	}
}

// ─── Shift Records ──────────────────────────────────────────────────────────

func TestShiftRecords_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	tx := insertTx(t, db, "V1", "ravi", domain.TxCash, domain.PayDigital, "100", base.Add(time.Hour))
	rec := domain.ShiftRecord{
		ActivityID:     "act-1",
		Worker:         "ravi",
		ShiftType:      domain.ShiftDay,
		LoginTime:      base,
		ShiftCloseTime: base.Add(8 * time.Hour),
		BankBalances: []domain.BankBalance{
			{Name: "CASH", Balance: decimal.NewFromInt(1000)},
			{Name: "HDFC BANK", Account: "0042", Balance: decimal.NewFromInt(2500)},
		},
		TotalsByPaymentType: domain.ShiftTotals(decimal.NewFromInt(1000), []domain.Transaction{tx}),
		Transactions:        []domain.Transaction{tx},
		TransactionTotal:    decimal.NewFromInt(100),
	}
	if err := db.InsertShiftRecord(ctx, &rec); err != nil {
		t.Fatalf("InsertShiftRecord() error: %v", err)
	}

	got, err := db.GetShiftRecord(ctx, rec.ID)
	if err != nil {
		t.Fatalf("GetShiftRecord() error: %v", err)
	}
	if got.ShiftType != domain.ShiftDay || len(got.BankBalances) != 2 || got.BankBalances[1].Account != "0042" {
		t.Errorf("GetShiftRecord() = %+v", got)
	}
	if !got.TotalsByPaymentType.Get(domain.PayCash).Equal(decimal.NewFromInt(900)) {
		t.Errorf("CASH total = %s, want 900", got.TotalsByPaymentType.Get(domain.PayCash))
	}
	if len(got.Transactions) != 1 || got.Transactions[0].ID != tx.ID {
		t.Errorf("Transactions = %+v, want the one snapshot row", got.Transactions)
	}

	dup := rec
	dup.ID = ""
	if err := db.InsertShiftRecord(ctx, &dup); err == nil {
		t.Error("second record for the same activity should fail")
	}
}

func TestListShiftRecords(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	for i, w := range []string{"ravi", "anu", "ravi"} {
		r := domain.ShiftRecord{
			ActivityID:          string(rune('a' + i)),
			Worker:              w,
			ShiftType:           domain.ShiftNight,
			LoginTime:           base.Add(time.Duration(i) * 24 * time.Hour),
			ShiftCloseTime:      base.Add(time.Duration(i)*24*time.Hour + 8*time.Hour),
			TotalsByPaymentType: domain.NewTotals(decimal.Zero),
		}
		if err := db.InsertShiftRecord(ctx, &r); err != nil {
			t.Fatalf("InsertShiftRecord() error: %v", err)
		}
	}

	all, _ := db.ListShiftRecords(ctx, "")
	if len(all) != 3 {
		t.Fatalf("ListShiftRecords(all) = %d, want 3", len(all))
	}
	ravi, _ := db.ListShiftRecords(ctx, "ravi")
	if len(ravi) != 2 || !ravi[0].ShiftCloseTime.After(ravi[1].ShiftCloseTime) {
		t.Errorf("ListShiftRecords(ravi) = %d records, want 2 newest first", len(ravi))
	}
	if _, err := db.GetShiftRecord(ctx, "missing"); !errors.Is(err, domain.ErrShiftRecordNotFound) {
		t.Errorf("GetShiftRecord(missing) = %v, want ErrShiftRecordNotFound", err)
	}
}

// ─── Transports ─────────────────────────────────────────────────────────────

func TestTransports(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	for _, p := range [][2]string{{"KPN", "TN01AB1234"}, {"KPN", "TN01CD5678"}, {"ABT", "KA05XY0001"}} {
		if err := db.AddTransportVehicle(ctx, p[0], p[1]); err != nil {
			t.Fatalf("AddTransportVehicle(%v) error: %v", p, err)
		}
	}
	if err := db.AddTransportVehicle(ctx, "KPN", "tn01ab1234"); !errors.Is(err, domain.ErrTransportVehicleExists) {
		t.Errorf("duplicate add = %v, want ErrTransportVehicleExists", err)
	}

	transports, err := db.ListTransports(ctx)
	if err != nil {
		t.Fatalf("ListTransports() error: %v", err)
	}
	if len(transports) != 2 || transports[0].Name != "ABT" || len(transports[1].Vehicles) != 2 {
		t.Fatalf("ListTransports() = %+v", transports)
	}

	if err := db.RemoveTransportVehicle(ctx, "ABT", "ka05xy0001"); err != nil {
		t.Fatalf("RemoveTransportVehicle() error: %v", err)
	}
	if err := db.RemoveTransportVehicle(ctx, "ABT", "KA05XY0001"); !errors.Is(err, domain.ErrTransportVehicleAbsent) {
		t.Errorf("second remove = %v, want ErrTransportVehicleAbsent", err)
	}
	transports, _ = db.ListTransports(ctx)
	if len(transports) != 1 || transports[0].Name != "KPN" {
		t.Errorf("after remove ListTransports() = %+v", transports)
	}
}
