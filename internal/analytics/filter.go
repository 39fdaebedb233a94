// Package analytics implements the aggregation engine: pure functions
// that turn the transaction list plus user-selected filters into the
// derived views the rendering layer consumes. Nothing here mutates its
// inputs or holds hidden state, so every computation is safe to rerun
// on each input change. All monetary accumulation happens in integer
// cents.
package analytics

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"budgetdash/internal/dateutils"
	"budgetdash/internal/models"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// AllAccounts bypasses account filtering.
const AllAccounts = "all"

// Filter holds the user-selected view parameters.
type Filter struct {
	Range     dateutils.Range
	AccountID string
	Search    string
}

// Previous returns the same filter shifted to the immediately
// preceding period of identical length.
func (f Filter) Previous() Filter {
	f.Range = dateutils.PreviousRange(f.Range)
	return f
}

// FilterTransactions applies the filter pipeline - date range
// membership, then account match, then free-text search - and returns
// the survivors sorted by date descending. The search term matches
// case-insensitively against merchant, note, or resolved category
// name.
func FilterTransactions(state models.AppState, f Filter) []models.Transaction {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	var out []models.Transaction
	for _, tx := range state.Transactions {
		if !dateutils.InRange(tx.Date, f.Range) {
			continue
		}
		if f.AccountID != "" && f.AccountID != AllAccounts && tx.AccountID != f.AccountID {
			continue
		}
		if search != "" && !matchesSearch(state, tx, search) {
			continue
		}
		out = append(out, tx)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

func matchesSearch(state models.AppState, tx models.Transaction, search string) bool {
	return strings.Contains(strings.ToLower(tx.Merchant), search) ||
		strings.Contains(strings.ToLower(tx.Note), search) ||
		strings.Contains(strings.ToLower(state.CategoryName(tx.CategoryID)), search)
}
