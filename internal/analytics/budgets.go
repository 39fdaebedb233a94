package analytics

import (
	"sort"

	"budgetdash/internal/dateutils"
	"budgetdash/internal/models"
)

// CategorySpend sums expense amounts by category id. Income
// transactions are excluded.
func CategorySpend(txs []models.Transaction) map[string]int64 {
	spend := make(map[string]int64)
	for _, tx := range txs {
		if tx.Type == models.TypeIncome {
			continue
		}
		spend[tx.CategoryID] += tx.AmountCents
	}
	return spend
}

// BudgetRow is one budget-tracked category's progress. Remaining is
// budget minus spent and may go negative.
type BudgetRow struct {
	CategoryID     string
	Name           string
	Icon           string
	BudgetCents    int64
	SpentCents     int64
	RemainingCents int64
}

// BudgetSummary is the full budget table with column totals.
type BudgetSummary struct {
	Rows           []BudgetRow
	BudgetCents    int64
	SpentCents     int64
	RemainingCents int64
}

// Budgets builds a row for every category carrying a positive monthly
// budget. Spend is computed over the date range only - account and
// search filters do not apply to budget tracking. Rows sort by spent
// descending, ties by name.
func Budgets(state models.AppState, r dateutils.Range) BudgetSummary {
	spend := CategorySpend(FilterTransactions(state, Filter{Range: r}))

	var summary BudgetSummary
	for _, c := range state.Categories {
		if c.MonthlyBudgetCents <= 0 {
			continue
		}
		row := BudgetRow{
			CategoryID:     c.ID,
			Name:           c.Name,
			Icon:           c.Icon,
			BudgetCents:    c.MonthlyBudgetCents,
			SpentCents:     spend[c.ID],
			RemainingCents: c.MonthlyBudgetCents - spend[c.ID],
		}
		summary.Rows = append(summary.Rows, row)
		summary.BudgetCents += row.BudgetCents
		summary.SpentCents += row.SpentCents
		summary.RemainingCents += row.RemainingCents
	}

	sort.SliceStable(summary.Rows, func(i, j int) bool {
		if summary.Rows[i].SpentCents != summary.Rows[j].SpentCents {
			return summary.Rows[i].SpentCents > summary.Rows[j].SpentCents
		}
		return summary.Rows[i].Name < summary.Rows[j].Name
	})
	return summary
}
