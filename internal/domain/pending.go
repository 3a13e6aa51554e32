package domain

import "github.com/shopspring/decimal"

// ─── Pending Balance ────────────────────────────────────────────────────────
// The amount a vehicle owes is always re-derived from its transactions.
// Any TotalPending stored on a row is a cache of this fold.

// PendingEffect returns the signed contribution of one transaction to its
// vehicle's pending balance.
//
//	PENDING + CASH | GPAY/PHONE PAY | EXP  → -amount (collection)
//	any     + PENDING                      → +amount (sale recorded as owed)
//	anything else, PENDING_CLEARED included → 0
func PendingEffect(t Transaction) decimal.Decimal {
	if t.Deleted() {
		return decimal.Zero
	}
	switch {
	case t.IsCollection():
		return t.Amount.Neg()
	case t.PaymentType == PayPending:
		return t.Amount
	}
	return decimal.Zero
}

// PendingBalance folds txs into the raw signed amount owed. The fold is a
// plain sum, so input order never matters. The result may be negative when
// more was collected than owed; see ClampPending.
func PendingBalance(txs []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		total = total.Add(PendingEffect(t))
	}
	return total
}

// VehiclePending folds only the transactions that belong to vehicle.
func VehiclePending(vehicle string, txs []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		if SameVehicle(t.VehicleNumber, vehicle) {
			total = total.Add(PendingEffect(t))
		}
	}
	return total
}

// ClampPending is the presentation value of a raw balance: nothing is owed
// below zero.
func ClampPending(raw decimal.Decimal) decimal.Decimal {
	if raw.IsNegative() {
		return decimal.Zero
	}
	return raw
}
