package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors carry no infrastructure dependency.

var (
	// Validation errors
	ErrVehicleRequired         = errors.New("vehicle number is required")
	ErrWorkerRequired          = errors.New("worker is required")
	ErrTransactionTypeRequired = errors.New("transaction type is required")
	ErrInvalidPaymentType      = errors.New("payment type must be CASH, GPAY/PHONE PAY, PENDING or EXP")
	ErrInvalidAmount           = errors.New("amount must not be negative")
	ErrInvalidShiftType        = errors.New("shift type must be DAY or NIGHT")
	ErrNotCollection           = errors.New("payment type cannot collect a pending amount")
	ErrTransportNameRequired   = errors.New("transport name is required")
	ErrDateRequired            = errors.New("date is required")
	ErrMarkerNotEnterable      = errors.New("PENDING_CLEARED is written only by a collection")

	// Not-found errors
	ErrNoActiveShift          = errors.New("no active shift found for this worker")
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrShiftRecordNotFound    = errors.New("shift record not found")
	ErrTransportVehicleAbsent = errors.New("vehicle not found in transport")

	// Conflict errors
	ErrShiftAlreadyOpen       = errors.New("worker already has an open shift")
	ErrTransportVehicleExists = errors.New("vehicle already belongs to transport")
)

// IsValidation reports whether err was caused by bad caller input.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrVehicleRequired, ErrWorkerRequired, ErrTransactionTypeRequired,
		ErrInvalidPaymentType, ErrInvalidAmount, ErrInvalidShiftType,
		ErrNotCollection, ErrTransportNameRequired, ErrDateRequired,
		ErrMarkerNotEnterable,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err names a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNoActiveShift) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrShiftRecordNotFound) ||
		errors.Is(err, ErrTransportVehicleAbsent)
}

// IsConflict reports whether err rejects a write that contradicts stored state.
func IsConflict(err error) bool {
	return errors.Is(err, ErrShiftAlreadyOpen) || errors.Is(err, ErrTransportVehicleExists)
}
