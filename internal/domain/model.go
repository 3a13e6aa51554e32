// Package domain contains the pure business types of the service center.
// It depends on nothing but decimal arithmetic: no storage, no transport.
package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ─── Transaction Vocabulary ─────────────────────────────────────────────────

// TransactionType is the business reason a worker records a movement.
// The vocabulary is open: besides the constants below, any bank or
// fastag-provider name is a valid transaction type.
type TransactionType string

const (
	TxPending        TransactionType = "PENDING"
	TxPendingCleared TransactionType = "PENDING_CLEARED"
	TxCash           TransactionType = "CASH"
)

// ProviderTransactionTypes lists the bank and fastag-provider names offered
// to workers at the counter.
var ProviderTransactionTypes = []TransactionType{
	"IDFC FIRST BANK",
	"STATE BANK OF INDIA(SBI)",
	"AIRTEL PAYMENTS BANK",
	"ICICI BANK",
	"INDUSIND BANK",
	"KOTAK MAHINDRA BANK",
	"EQUITAS BANK",
	"AXIS BANK",
	"HDFC BANK",
	"BANK OF BARODA",
	"IDBI BANK",
	"FEDRAL BANK",
	"BAJAJ PAY",
	"LIVQUIK FASTAG",
	"OTHERS FASTAG",
	"GPAY/PHONE PAY",
}

// PaymentType is how the money moved.
type PaymentType string

const (
	PayCash    PaymentType = "CASH"
	PayDigital PaymentType = "GPAY/PHONE PAY"
	PayPending PaymentType = "PENDING"
	PayExpense PaymentType = "EXP"
)

// PaymentTypes is the closed payment vocabulary, in display order.
var PaymentTypes = []PaymentType{PayCash, PayDigital, PayPending, PayExpense}

// Valid reports whether p belongs to the payment vocabulary.
func (p PaymentType) Valid() bool {
	switch p {
	case PayCash, PayDigital, PayPending, PayExpense:
		return true
	}
	return false
}

// IsCollection reports whether money paid this way discharges a pending debt.
func (p PaymentType) IsCollection() bool {
	return p == PayCash || p == PayDigital || p == PayExpense
}

// ─── Transactions ───────────────────────────────────────────────────────────

// Transaction is one cash or digital movement tied to a vehicle and worker.
// Once written only CreatedAt (date correction) and DeletedAt (owner
// soft-delete) change. TotalPending is a denormalized read cache.
type Transaction struct {
	ID              string          `json:"id"`
	VehicleNumber   string          `json:"vehicle_number"`
	Worker          string          `json:"worker"`
	TransactionType TransactionType `json:"transaction_type"`
	PaymentType     PaymentType     `json:"payment_type"`
	Amount          decimal.Decimal `json:"amount"`
	TotalPending    decimal.Decimal `json:"total_pending"`
	ClearsID        string          `json:"clears_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	DeletedAt       *time.Time      `json:"deleted_at,omitempty"`
}

// IsCollection reports whether t collects against a previously pending debt.
func (t Transaction) IsCollection() bool {
	return t.TransactionType == TxPending && t.PaymentType.IsCollection()
}

// IsClearedMarker reports whether t only marks a debt as discharged.
func (t Transaction) IsClearedMarker() bool {
	return t.TransactionType == TxPendingCleared
}

// Deleted reports whether the owner has soft-deleted t.
func (t Transaction) Deleted() bool { return t.DeletedAt != nil }

// Normalize trims identifiers and upper-cases the type vocabulary so that
// classification never depends on how a worker typed it.
func (t *Transaction) Normalize() {
	t.VehicleNumber = strings.TrimSpace(t.VehicleNumber)
	t.Worker = strings.TrimSpace(t.Worker)
	t.TransactionType = TransactionType(strings.ToUpper(strings.TrimSpace(string(t.TransactionType))))
	t.PaymentType = PaymentType(strings.ToUpper(strings.TrimSpace(string(t.PaymentType))))
}

// Validate checks the fields a worker must supply.
func (t Transaction) Validate() error {
	if t.VehicleNumber == "" {
		return ErrVehicleRequired
	}
	if t.Worker == "" {
		return ErrWorkerRequired
	}
	if t.TransactionType == "" {
		return ErrTransactionTypeRequired
	}
	if !t.PaymentType.Valid() {
		return ErrInvalidPaymentType
	}
	if t.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

// TransactionFilter narrows an owner listing. Zero values mean "any".
// Vehicle and Worker match as case-insensitive substrings.
type TransactionFilter struct {
	Vehicle     string
	Worker      string
	PaymentType PaymentType
	From        time.Time
	To          time.Time
}

// Match reports whether t passes the filter.
func (f TransactionFilter) Match(t Transaction) bool {
	if f.Vehicle != "" && !strings.Contains(VehicleKey(t.VehicleNumber), VehicleKey(f.Vehicle)) {
		return false
	}
	if f.Worker != "" && !strings.Contains(strings.ToLower(t.Worker), strings.ToLower(strings.TrimSpace(f.Worker))) {
		return false
	}
	if f.PaymentType != "" && t.PaymentType != f.PaymentType {
		return false
	}
	if !f.From.IsZero() && t.CreatedAt.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && t.CreatedAt.After(f.To) {
		return false
	}
	return true
}

// VehicleKey is the case-insensitive identity of a vehicle number.
func VehicleKey(vehicle string) string {
	return strings.ToUpper(strings.TrimSpace(vehicle))
}

// SameVehicle reports whether a and b name the same vehicle.
func SameVehicle(a, b string) bool {
	return VehicleKey(a) == VehicleKey(b)
}

// ─── Shifts ─────────────────────────────────────────────────────────────────

// ShiftType is the half of the day a worker covers.
type ShiftType string

const (
	ShiftDay   ShiftType = "DAY"
	ShiftNight ShiftType = "NIGHT"
)

// Valid reports whether s is DAY or NIGHT.
func (s ShiftType) Valid() bool { return s == ShiftDay || s == ShiftNight }

// Activity is a worker session: opened at login, ended by logout or by
// shift close.
type Activity struct {
	ID             string     `json:"id"`
	Worker         string     `json:"worker"`
	LoginTime      time.Time  `json:"login_time"`
	LogoutTime     *time.Time `json:"logout_time,omitempty"`
	ShiftCloseTime *time.Time `json:"shift_close_time,omitempty"`
}

// Open reports whether the shift can still be closed.
func (a Activity) Open() bool {
	return a.LogoutTime == nil && a.ShiftCloseTime == nil
}

// BankBalance is one balance line a worker enters before closing a shift.
type BankBalance struct {
	Name    string          `json:"name"`
	Account string          `json:"account,omitempty"`
	Balance decimal.Decimal `json:"balance"`
}

// ShiftRecord is the immutable audit snapshot written once per shift close.
type ShiftRecord struct {
	ID                  string          `json:"id"`
	ActivityID          string          `json:"activity_id"`
	Worker              string          `json:"worker"`
	ShiftType           ShiftType       `json:"shift_type"`
	LoginTime           time.Time       `json:"login_time"`
	ShiftCloseTime      time.Time       `json:"shift_close_time"`
	BankBalances        []BankBalance   `json:"bank_balances"`
	TotalsByPaymentType Totals          `json:"totals_by_payment_type"`
	Transactions        []Transaction   `json:"transactions"`
	TransactionTotal    decimal.Decimal `json:"transaction_total"`
}

// ─── Transports ─────────────────────────────────────────────────────────────

// Transport groups the vehicles of one fleet operator.
type Transport struct {
	Name     string   `json:"name"`
	Vehicles []string `json:"vehicles"`
}
