// Package tx manages individual transactions
package tx

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"budgetdash/cmd/root"
	"budgetdash/internal/analytics"
	"budgetdash/internal/currencyutils"
	"budgetdash/internal/models"
	"budgetdash/internal/state"
)

// Cmd represents the tx command
var Cmd = &cobra.Command{
	Use:   "tx",
	Short: "List, add, and delete transactions",
	Run:   listFunc,
}

var (
	date     string
	amount   string
	txType   string
	category string
	account  string
	note     string
)

var addCmd = &cobra.Command{
	Use:   "add <merchant>",
	Short: "Add a transaction",
	Args:  cobra.ExactArgs(1),
	Run:   addFunc,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a transaction by id",
	Args:  cobra.ExactArgs(1),
	Run:   deleteFunc,
}

func init() {
	addCmd.Flags().StringVarP(&date, "date", "d", "", "Transaction date (YYYY-MM-DD, default today)")
	addCmd.Flags().StringVarP(&amount, "amount", "m", "", "Amount, e.g. 12.50")
	addCmd.Flags().StringVarP(&txType, "type", "t", string(models.TypeExpense), "expense or income")
	addCmd.Flags().StringVarP(&category, "category", "c", "", "Category name (default: rule suggestion)")
	addCmd.Flags().StringVar(&account, "into", "", "Account name")
	addCmd.Flags().StringVarP(&note, "note", "n", "", "Optional note")
	addCmd.MarkFlagRequired("amount")

	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(deleteCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	st := root.LoadState()
	txs := analytics.FilterTransactions(st, root.CurrentFilter(st))
	cur := st.Settings.Currency
	hide := st.Settings.HideCents

	if len(txs) == 0 {
		fmt.Println("No transactions in the selected range.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tMERCHANT\tAMOUNT\tTYPE\tCATEGORY\tACCOUNT\tNOTE")
	for _, t := range txs {
		amount := currencyutils.FormatMoney(t.AmountCents, cur, hide)
		if t.Type == models.TypeExpense {
			amount = currencyutils.FormatMoney(-t.AmountCents, cur, hide)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Date, t.Merchant, amount, t.Type,
			st.CategoryName(t.CategoryID), st.AccountName(t.AccountID), t.Note)
	}
	w.Flush()
}

func addFunc(cmd *cobra.Command, args []string) {
	st := root.LoadState()

	categoryID := ""
	if c, ok := st.CategoryByName(category); ok {
		categoryID = c.ID
	}
	accountID := ""
	if a, ok := st.AccountByName(account); ok {
		accountID = a.ID
	}

	before := len(st.Transactions)
	st = state.AddTransaction(st, state.TxInput{
		Date:       date,
		Merchant:   args[0],
		Amount:     amount,
		Type:       models.TransactionType(txType),
		CategoryID: categoryID,
		AccountID:  accountID,
		Note:       note,
	})
	if len(st.Transactions) == before {
		root.Log.Error("Transaction rejected: merchant must be non-empty, amount non-zero, and type expense or income")
		return
	}

	root.SaveState(st)
	added := st.Transactions[0]
	root.Log.WithField("id", added.ID).Infof("Recorded %s at %s in %s",
		added.Type, added.Merchant, st.CategoryName(added.CategoryID))
}

func deleteFunc(cmd *cobra.Command, args []string) {
	st := root.LoadState()
	before := len(st.Transactions)
	st = state.DeleteTransaction(st, args[0])
	if len(st.Transactions) == before {
		root.Log.Warnf("No transaction with id %s", args[0])
		return
	}
	root.SaveState(st)
	root.Log.Info("Transaction deleted")
}
