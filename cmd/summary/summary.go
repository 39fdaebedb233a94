// Package summary renders the headline totals for the selected filter
package summary

import (
	"fmt"

	"github.com/spf13/cobra"

	"budgetdash/cmd/root"
	"budgetdash/internal/analytics"
	"budgetdash/internal/currencyutils"
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show income, spending, net, and savings rate for the selected range",
	Run:   summaryFunc,
}

func summaryFunc(cmd *cobra.Command, args []string) {
	st := root.LoadState()
	filter := root.CurrentFilter(st)
	cur := st.Settings.Currency
	hide := st.Settings.HideCents

	txs := analytics.FilterTransactions(st, filter)
	totals := analytics.ComputeTotals(txs)
	previous := analytics.PreviousTotals(st, filter)
	safe := analytics.ComputeSafeToSpend(st)

	fmt.Printf("Income:        %s  (%s vs previous period)\n",
		currencyutils.FormatMoney(totals.IncomeCents, cur, hide),
		currencyutils.FormatDelta(totals.IncomeCents-previous.IncomeCents, cur, hide))
	fmt.Printf("Spending:      %s  (%s vs previous period)\n",
		currencyutils.FormatMoney(totals.ExpenseCents, cur, hide),
		currencyutils.FormatDelta(totals.ExpenseCents-previous.ExpenseCents, cur, hide))
	fmt.Printf("Net:           %s\n", currencyutils.FormatMoney(totals.NetCents, cur, hide))
	fmt.Printf("Savings rate:  %d%%\n", totals.SavingsRatePct)
	fmt.Printf("Safe to spend: %s (%s)\n",
		currencyutils.FormatMoney(safe.Cents, cur, hide), safe.Label)
	fmt.Printf("Transactions:  %d\n", len(txs))
}
