// Package insights renders the month-over-month narrative
package insights

import (
	"fmt"

	"github.com/spf13/cobra"

	"budgetdash/cmd/root"
	"budgetdash/internal/analytics"
	"budgetdash/internal/currencyutils"
)

// Cmd represents the insights command
var Cmd = &cobra.Command{
	Use:   "insights",
	Short: "Compare this calendar month against the previous one",
	Run:   insightsFunc,
}

func insightsFunc(cmd *cobra.Command, args []string) {
	st := root.LoadState()
	ins := analytics.ComputeInsights(st)
	cur := st.Settings.Currency
	hide := st.Settings.HideCents

	fmt.Printf("Spending: %s this month, %s month over month\n",
		currencyutils.FormatMoney(ins.CurrentTotals.ExpenseCents, cur, hide),
		currencyutils.FormatDelta(ins.SpendDeltaCents, cur, hide))
	fmt.Printf("Income:   %s this month, %s month over month\n",
		currencyutils.FormatMoney(ins.CurrentTotals.IncomeCents, cur, hide),
		currencyutils.FormatDelta(ins.IncomeDeltaCents, cur, hide))

	if ins.TopCategoryID != "" {
		fmt.Printf("Top category this month: %s\n", ins.TopCategoryName)
	}
	if ins.TopCategoryChanged {
		fmt.Printf("Top category changed: was %s last month\n", ins.PrevTopCategoryName)
	}
}
