// Package cashflow renders the running-balance time series
package cashflow

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"budgetdash/cmd/root"
	"budgetdash/internal/analytics"
	"budgetdash/internal/currencyutils"
)

// Cmd represents the cashflow command
var Cmd = &cobra.Command{
	Use:   "cashflow",
	Short: "Show the per-day cashflow and cumulative running balance",
	Run:   cashflowFunc,
}

func cashflowFunc(cmd *cobra.Command, args []string) {
	st := root.LoadState()
	series := analytics.Cashflow(st, root.CurrentFilter(st))
	cur := st.Settings.Currency
	hide := st.Settings.HideCents

	if len(series.Points) == 0 {
		fmt.Println("No transactions in the selected range.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tINCOME\tEXPENSE\tNET\tBALANCE\tSHARE")
	for _, p := range series.Points {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.0f%%\n",
			p.Date,
			currencyutils.FormatMoney(p.IncomeCents, cur, hide),
			currencyutils.FormatMoney(p.ExpenseCents, cur, hide),
			currencyutils.FormatDelta(p.NetCents, cur, hide),
			currencyutils.FormatMoney(p.RunningCents, cur, hide),
			series.Share(p)*100)
	}
	w.Flush()

	fmt.Printf("\nFinal balance: %s (%s vs previous period net)\n",
		currencyutils.FormatMoney(series.FinalCents, cur, hide),
		currencyutils.FormatDelta(series.FinalCents-series.PrevPeriodNetCents, cur, hide))
}
