package analytics

import (
	"math"

	"budgetdash/internal/models"
)

// Totals summarizes a transaction set.
type Totals struct {
	IncomeCents    int64
	ExpenseCents   int64
	NetCents       int64
	SavingsRatePct int
}

// ComputeTotals sums income and expense over an already-filtered
// transaction set. The savings rate is net over income as a rounded
// integer percentage, defined as zero when income is zero.
func ComputeTotals(txs []models.Transaction) Totals {
	var t Totals
	for _, tx := range txs {
		switch tx.Type {
		case models.TypeIncome:
			t.IncomeCents += tx.AmountCents
		default:
			t.ExpenseCents += tx.AmountCents
		}
	}
	t.NetCents = t.IncomeCents - t.ExpenseCents
	if t.IncomeCents != 0 {
		t.SavingsRatePct = roundPct(t.NetCents, t.IncomeCents)
	}
	return t
}

// PreviousTotals computes the same totals over the immediately
// preceding period, for delta display.
func PreviousTotals(state models.AppState, f Filter) Totals {
	return ComputeTotals(FilterTransactions(state, f.Previous()))
}

// roundPct returns num/denom as an integer percentage, ties rounding
// half away from zero.
func roundPct(num, denom int64) int {
	return int(math.Round(float64(num) / float64(denom) * 100))
}
