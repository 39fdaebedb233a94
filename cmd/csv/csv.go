// Package csv handles CSV import and export of transactions
package csv

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"budgetdash/cmd/root"
	"budgetdash/internal/csvcodec"
	"budgetdash/internal/state"
)

// Cmd represents the csv command
var Cmd = &cobra.Command{
	Use:   "csv",
	Short: "Import and export transactions as CSV",
}

var importFile string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import transactions from a CSV file or stdin",
	Long: `Import transactions from CSV text. The header must contain at least
date, merchant, and amount (case-insensitive); invalid rows are
skipped individually and an invalid header aborts the whole import.`,
	Run: importFunc,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all transactions to a dated CSV file",
	Run:   exportFunc,
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print a sample CSV illustrating the expected header",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(csvcodec.SampleCSV)
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "CSV file to import (default: stdin)")
	Cmd.AddCommand(importCmd)
	Cmd.AddCommand(exportCmd)
	Cmd.AddCommand(sampleCmd)
}

func importFunc(cmd *cobra.Command, args []string) {
	var data []byte
	var err error
	if importFile != "" {
		data, err = os.ReadFile(importFile)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		root.Log.Errorf("Failed to read import data: %v", err)
		return
	}

	st := root.LoadState()
	before := len(st.Transactions)
	st = state.ImportCSV(st, string(data))
	imported := len(st.Transactions) - before
	if imported == 0 {
		root.Log.Warn("Nothing imported")
		return
	}

	root.SaveState(st)
	root.Log.WithField("count", imported).Info("Imported transactions")
}

func exportFunc(cmd *cobra.Command, args []string) {
	st := root.LoadState()
	doc := csvcodec.ExportTransactions(st)

	path := filepath.Join(root.Cfg.Data.Directory, csvcodec.ExportFilename())
	if err := os.MkdirAll(root.Cfg.Data.Directory, 0750); err != nil {
		root.Log.Errorf("Failed to create data directory: %v", err)
		return
	}
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		root.Log.Errorf("Failed to write export: %v", err)
		return
	}

	fmt.Println(path)
	root.Log.WithField("count", len(st.Transactions)).Info("Exported transactions")
}
