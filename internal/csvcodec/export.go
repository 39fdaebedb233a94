package csvcodec

import (
	"fmt"
	"sort"
	"strings"

	"budgetdash/internal/currencyutils"
	"budgetdash/internal/dateutils"
	"budgetdash/internal/models"
)

// ExportTransactions serializes the full transaction list as a CSV
// document: the fixed header, then one row per transaction sorted by
// date descending. Amounts are plain two-decimal numbers, category and
// account ids are resolved to display names, and missing notes are
// blank.
func ExportTransactions(state models.AppState) string {
	txs := state.CloneTransactions()
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date > txs[j].Date
	})

	var b strings.Builder
	b.WriteString(strings.Join(Header, ","))
	b.WriteString("\n")
	for _, tx := range txs {
		cells := []string{
			tx.Date,
			Escape(tx.Merchant),
			currencyutils.PlainAmount(tx.AmountCents),
			string(tx.Type),
			Escape(state.CategoryName(tx.CategoryID)),
			Escape(state.AccountName(tx.AccountID)),
			Escape(tx.Note),
		}
		b.WriteString(strings.Join(cells, ","))
		b.WriteString("\n")
	}

	log.WithField("count", len(txs)).Debug("Serialized transactions to CSV")
	return b.String()
}

// ExportFilename returns the download name for an export, with the
// current date embedded.
func ExportFilename() string {
	return fmt.Sprintf("transactions_%s.csv", dateutils.TodayISO())
}
