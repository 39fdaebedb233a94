// Package rules manages the ordered auto-categorization rules
package rules

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"budgetdash/cmd/root"
	"budgetdash/internal/classify"
	"budgetdash/internal/models"
	"budgetdash/internal/state"
)

// Cmd represents the rules command
var Cmd = &cobra.Command{
	Use:   "rules",
	Short: "List, add, delete, and test categorization rules",
	Run:   listFunc,
}

var addCmd = &cobra.Command{
	Use:   "add <contains> <category>",
	Short: "Prepend a rule mapping merchants containing a substring to a category",
	Args:  cobra.ExactArgs(2),
	Run:   addFunc,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a rule by id",
	Args:  cobra.ExactArgs(1),
	Run:   deleteFunc,
}

var testCmd = &cobra.Command{
	Use:   "test <merchant>",
	Short: "Show which category the rules suggest for a merchant",
	Args:  cobra.ExactArgs(1),
	Run:   testFunc,
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(deleteCmd)
	Cmd.AddCommand(testCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	st := root.LoadState()
	if len(st.Rules) == 0 {
		fmt.Println("No rules defined.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCONTAINS\tCATEGORY")
	for _, r := range st.Rules {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, r.Contains, st.CategoryName(r.CategoryID))
	}
	w.Flush()
}

func addFunc(cmd *cobra.Command, args []string) {
	st := root.LoadState()
	category, ok := st.CategoryByName(args[1])
	if !ok {
		root.Log.Errorf("Unknown category: %s", args[1])
		return
	}

	before := len(st.Rules)
	st = state.AddRule(st, args[0], category.ID)
	if len(st.Rules) == before {
		root.Log.Error("Rule rejected: match text must be non-empty")
		return
	}
	root.SaveState(st)
	root.Log.Infof("Rule added: merchants containing %q map to %s", args[0], category.Name)
}

func deleteFunc(cmd *cobra.Command, args []string) {
	st := root.LoadState()
	before := len(st.Rules)
	st = state.DeleteRule(st, args[0])
	if len(st.Rules) == before {
		root.Log.Warnf("No rule with id %s", args[0])
		return
	}
	root.SaveState(st)
	root.Log.Info("Rule deleted")
}

func testFunc(cmd *cobra.Command, args []string) {
	st := root.LoadState()
	categoryID := classify.Apply(args[0], st.Rules, models.CategoryOtherID)
	fmt.Printf("%s -> %s\n", args[0], st.CategoryName(categoryID))
}
