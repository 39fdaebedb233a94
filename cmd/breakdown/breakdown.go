// Package breakdown renders the category spend breakdown
package breakdown

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"budgetdash/cmd/root"
	"budgetdash/internal/analytics"
	"budgetdash/internal/currencyutils"
)

// Cmd represents the breakdown command
var Cmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Show top spending categories with period-over-period deltas",
	Run:   breakdownFunc,
}

var showMerchants bool

func init() {
	Cmd.Flags().BoolVarP(&showMerchants, "merchants", "m", false, "Include top merchants per category")
}

func breakdownFunc(cmd *cobra.Command, args []string) {
	st := root.LoadState()
	filter := root.CurrentFilter(st)
	slices := analytics.PieBreakdown(st, filter)
	cur := st.Settings.Currency
	hide := st.Settings.HideCents

	if len(slices) == 0 {
		fmt.Println("No spending in the selected range.")
		return
	}

	var stats map[string]analytics.CategoryStat
	if showMerchants {
		stats = analytics.CategoryStats(analytics.FilterTransactions(st, filter))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tSPENT\tDELTA")
	for _, slice := range slices {
		fmt.Fprintf(w, "%s %s\t%s\t%s\n",
			slice.Icon, slice.Name,
			currencyutils.FormatMoney(slice.AmountCents, cur, hide),
			currencyutils.FormatDelta(slice.DeltaCents, cur, hide))
		if showMerchants {
			for _, m := range stats[slice.CategoryID].TopMerchants {
				fmt.Fprintf(w, "  %s\t%s\t%dx\n",
					m.Merchant,
					currencyutils.FormatMoney(m.TotalCents, cur, hide),
					m.Count)
			}
		}
	}
	w.Flush()
}
