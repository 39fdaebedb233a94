// Package budgets renders budget progress and manages category budgets
package budgets

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"budgetdash/cmd/root"
	"budgetdash/internal/analytics"
	"budgetdash/internal/currencyutils"
	"budgetdash/internal/state"
)

// Cmd represents the budgets command
var Cmd = &cobra.Command{
	Use:   "budgets",
	Short: "Show budget-vs-spend for every budget-tracked category",
	Run:   budgetsFunc,
}

var setCmd = &cobra.Command{
	Use:   "set <category> <amount>",
	Short: "Set the monthly budget for a category (0 clears it)",
	Args:  cobra.ExactArgs(2),
	Run:   setFunc,
}

func init() {
	Cmd.AddCommand(setCmd)
}

func budgetsFunc(cmd *cobra.Command, args []string) {
	st := root.LoadState()
	summary := analytics.Budgets(st, root.CurrentFilter(st).Range)
	cur := st.Settings.Currency
	hide := st.Settings.HideCents

	if len(summary.Rows) == 0 {
		fmt.Println("No categories carry a monthly budget.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tBUDGET\tSPENT\tREMAINING")
	for _, row := range summary.Rows {
		fmt.Fprintf(w, "%s %s\t%s\t%s\t%s\n",
			row.Icon, row.Name,
			currencyutils.FormatMoney(row.BudgetCents, cur, hide),
			currencyutils.FormatMoney(row.SpentCents, cur, hide),
			currencyutils.FormatMoney(row.RemainingCents, cur, hide))
	}
	fmt.Fprintf(w, "TOTAL\t%s\t%s\t%s\n",
		currencyutils.FormatMoney(summary.BudgetCents, cur, hide),
		currencyutils.FormatMoney(summary.SpentCents, cur, hide),
		currencyutils.FormatMoney(summary.RemainingCents, cur, hide))
	w.Flush()
}

func setFunc(cmd *cobra.Command, args []string) {
	st := root.LoadState()
	category, ok := st.CategoryByName(args[0])
	if !ok {
		root.Log.Errorf("Unknown category: %s", args[0])
		return
	}

	cents := currencyutils.ParseMoneyToCents(args[1])
	if cents < 0 {
		root.Log.Error("Budget amount must not be negative")
		return
	}

	st = state.SetCategoryBudget(st, category.ID, cents)
	root.SaveState(st)
	root.Log.WithField("category", category.Name).Info("Budget updated")
}
