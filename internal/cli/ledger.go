package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tagcenter/tagcenter/internal/app/statement"
	"github.com/tagcenter/tagcenter/internal/domain"
)

func init() {
	rootCmd.AddCommand(pendingCmd)
	rootCmd.AddCommand(shiftsCmd)
	rootCmd.AddCommand(statementCmd)
	statementCmd.AddCommand(statementVehicleCmd)

	shiftsCmd.Flags().StringP("worker", "w", "", "Only list shifts closed by this worker")
	statementVehicleCmd.Flags().Bool("csv", false, "Write the statement as CSV")
}

// ─── pending ────────────────────────────────────────────────────────────────

var pendingCmd = &cobra.Command{
	Use:   "pending [VEHICLE]",
	Short: "Show outstanding pending balances",
	Long: `With a vehicle number, print that vehicle's pending balance.
Without one, list every vehicle that still owes money, largest first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPending,
}

func runPending(cmd *cobra.Command, args []string) error {
	d, err := openDaemon(cmd.Context())
	if err != nil {
		return err
	}
	defer d.Close()
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		pending, err := d.Service.PendingBalance(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\t%s\n", domain.VehicleKey(args[0]), domain.ClampPending(pending).StringFixed(2))
		return nil
	}

	vehicles, err := d.Statements.PendingVehicles(cmd.Context())
	if err != nil {
		return err
	}
	if len(vehicles) == 0 {
		fmt.Fprintln(out, "No pending balances.")
		return nil
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VEHICLE\tPENDING")
	for _, v := range vehicles {
		fmt.Fprintf(tw, "%s\t%s\n", v.Vehicle, v.Pending.StringFixed(2))
	}
	return tw.Flush()
}

// ─── shifts ─────────────────────────────────────────────────────────────────

var shiftsCmd = &cobra.Command{
	Use:   "shifts",
	Short: "List closed shift records",
	Args:  cobra.NoArgs,
	RunE:  runShifts,
}

func runShifts(cmd *cobra.Command, args []string) error {
	worker, _ := cmd.Flags().GetString("worker")

	d, err := openDaemon(cmd.Context())
	if err != nil {
		return err
	}
	defer d.Close()

	records, err := d.Service.ListShiftRecords(cmd.Context(), worker)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "No shift records.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CLOSED\tWORKER\tSHIFT\tCASH\tGPAY\tPENDING\tEXP\tTOTAL")
	for _, r := range records {
		t := r.TotalsByPaymentType
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ShiftCloseTime.Format("2006-01-02 15:04"), r.Worker, r.ShiftType,
			t.Get(domain.PayCash).StringFixed(2), t.Get(domain.PayDigital).StringFixed(2),
			t.Get(domain.PayPending).StringFixed(2), t.Get(domain.PayExpense).StringFixed(2),
			r.TransactionTotal.StringFixed(2))
	}
	return tw.Flush()
}

// ─── statement ──────────────────────────────────────────────────────────────

var statementCmd = &cobra.Command{
	Use:   "statement",
	Short: "Print account statements",
}

var statementVehicleCmd = &cobra.Command{
	Use:   "vehicle VEHICLE",
	Short: "Print every transaction recorded against a vehicle",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatementVehicle,
}

func runStatementVehicle(cmd *cobra.Command, args []string) error {
	asCSV, _ := cmd.Flags().GetBool("csv")

	d, err := openDaemon(cmd.Context())
	if err != nil {
		return err
	}
	defer d.Close()

	st, err := d.Statements.Vehicle(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if asCSV {
		return statement.WriteVehicleCSV(out, st)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tWORKER\tTYPE\tPAYMENT\tAMOUNT")
	for _, tx := range st.Transactions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			tx.CreatedAt.Format("2006-01-02 15:04"), tx.Worker, tx.TransactionType,
			tx.PaymentType, tx.Amount.StringFixed(2))
	}
	fmt.Fprintf(tw, "\t\t\tTOTAL\t%s\n", st.Total.StringFixed(2))
	fmt.Fprintf(tw, "\t\t\tPENDING\t%s\n", st.PendingClamped.StringFixed(2))
	return tw.Flush()
}
