// Package main provides the entry point for the budgetdash CLI application.
package main

import (
	"os"

	"budgetdash/cmd/breakdown"
	"budgetdash/cmd/budgets"
	"budgetdash/cmd/cashflow"
	csvcmd "budgetdash/cmd/csv"
	"budgetdash/cmd/insights"
	"budgetdash/cmd/reset"
	"budgetdash/cmd/root"
	"budgetdash/cmd/rules"
	"budgetdash/cmd/summary"
	"budgetdash/cmd/themecmd"
	"budgetdash/cmd/tx"
)

func main() {
	root.Init()

	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(cashflow.Cmd)
	root.Cmd.AddCommand(budgets.Cmd)
	root.Cmd.AddCommand(breakdown.Cmd)
	root.Cmd.AddCommand(insights.Cmd)
	root.Cmd.AddCommand(tx.Cmd)
	root.Cmd.AddCommand(rules.Cmd)
	root.Cmd.AddCommand(csvcmd.Cmd)
	root.Cmd.AddCommand(themecmd.Cmd)
	root.Cmd.AddCommand(reset.Cmd)

	if err := root.Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
