package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ─── Shift Totals ───────────────────────────────────────────────────────────

// Totals maps a payment type to the amount accumulated for it.
type Totals map[PaymentType]decimal.Decimal

// NewTotals returns the four standard buckets with CASH seeded by the
// worker's starting cash.
func NewTotals(startingCash decimal.Decimal) Totals {
	return Totals{
		PayCash:    startingCash,
		PayDigital: decimal.Zero,
		PayExpense: decimal.Zero,
		PayPending: decimal.Zero,
	}
}

// Get returns the bucket for p, zero when absent.
func (t Totals) Get(p PaymentType) decimal.Decimal {
	if v, ok := t[p]; ok {
		return v
	}
	return decimal.Zero
}

func (t Totals) add(p PaymentType, amount decimal.Decimal) {
	t[p] = t.Get(p).Add(amount)
}

// Apply folds one transaction into the buckets.
//
//	PENDING + CASH | GPAY/PHONE PAY | EXP → that bucket only (collection)
//	CASH    + GPAY/PHONE PAY | EXP        → CASH down, target up (conversion)
//	otherwise                             → bucket named by the payment type,
//	                                        plus PENDING when the type is PENDING
//
// A fresh debt (PENDING + PENDING) therefore adds to the PENDING bucket twice.
// Cleared markers, deleted rows and zero amounts move nothing.
func (t Totals) Apply(tx Transaction) {
	if tx.Deleted() || tx.IsClearedMarker() || tx.PaymentType == "" || tx.Amount.IsZero() {
		return
	}
	switch {
	case tx.IsCollection():
		t.add(tx.PaymentType, tx.Amount)
	case tx.TransactionType == TxCash && (tx.PaymentType == PayDigital || tx.PaymentType == PayExpense):
		t.add(PayCash, tx.Amount.Neg())
		t.add(tx.PaymentType, tx.Amount)
	default:
		t.add(tx.PaymentType, tx.Amount)
		if tx.TransactionType == TxPending {
			t.add(PayPending, tx.Amount)
		}
	}
}

// ShiftTotals folds txs into fresh buckets seeded with startingCash.
func ShiftTotals(startingCash decimal.Decimal, txs []Transaction) Totals {
	totals := NewTotals(startingCash)
	for _, tx := range txs {
		totals.Apply(tx)
	}
	return totals
}

// StartingCash is the balance of the bank line named CASH, zero when the
// worker entered none.
func StartingCash(balances []BankBalance) decimal.Decimal {
	for _, b := range balances {
		if strings.EqualFold(strings.TrimSpace(b.Name), string(PayCash)) {
			return b.Balance
		}
	}
	return decimal.Zero
}

// TransactionTotal sums the amounts of txs, cleared markers excluded.
func TransactionTotal(txs []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx.Deleted() || tx.IsClearedMarker() {
			continue
		}
		total = total.Add(tx.Amount)
	}
	return total
}
