package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/tagcenter/tagcenter/internal/domain"
)

var csvHeader = []string{"date", "vehicle_number", "worker", "transaction_type", "payment_type", "amount"}

// WriteVehicleCSV writes the statement rows followed by total and pending lines.
func WriteVehicleCSV(w io.Writer, st *VehicleStatement) error {
	cw := csv.NewWriter(w)
	if err := writeRows(cw, st.Transactions); err != nil {
		return err
	}
	trailer := [][]string{
		{"", "", "", "", "TOTAL", st.Total.StringFixed(2)},
		{"", "", "", "", "PENDING", st.PendingClamped.StringFixed(2)},
	}
	if err := cw.WriteAll(trailer); err != nil {
		return fmt.Errorf("write vehicle statement: %w", err)
	}
	return nil
}

// WriteWorkerCSV writes the statement rows followed by one line per
// payment-type bucket and the grand total.
func WriteWorkerCSV(w io.Writer, st *WorkerStatement) error {
	cw := csv.NewWriter(w)
	if err := writeRows(cw, st.Transactions); err != nil {
		return err
	}
	for _, p := range domain.PaymentTypes {
		if err := cw.Write([]string{"", "", "", "", string(p), st.Totals.Get(p).StringFixed(2)}); err != nil {
			return fmt.Errorf("write worker statement: %w", err)
		}
	}
	if err := cw.Write([]string{"", "", "", "", "TOTAL", st.Total.StringFixed(2)}); err != nil {
		return fmt.Errorf("write worker statement: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

func writeRows(cw *csv.Writer, txs []domain.Transaction) error {
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, tx := range txs {
		record := []string{
			tx.CreatedAt.Format(time.RFC3339),
			tx.VehicleNumber,
			tx.Worker,
			string(tx.TransactionType),
			string(tx.PaymentType),
			tx.Amount.StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	return nil
}
