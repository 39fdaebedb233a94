package analytics

import (
	"sort"
	"time"

	"budgetdash/internal/dateutils"
	"budgetdash/internal/models"
)

// SafeBasis names which figure backs the safe-to-spend number.
type SafeBasis string

const (
	BasisBudget SafeBasis = "budget"
	BasisNet    SafeBasis = "net"
)

// SafeToSpend estimates discretionary funds remaining this month.
type SafeToSpend struct {
	Cents int64
	Basis SafeBasis
	Label string
}

// ComputeSafeToSpend works over the current calendar month regardless
// of the user's selected filter range. With any positive category
// budget the figure is total budgets minus month-to-date expense;
// without budgets it is month-to-date net.
func ComputeSafeToSpend(state models.AppState) SafeToSpend {
	return safeToSpendAt(state, time.Now())
}

func safeToSpendAt(state models.AppState, now time.Time) SafeToSpend {
	today := dateutils.ToISO(now)
	monthToDate := dateutils.Range{Min: dateutils.MonthStartISO(today), Max: today}
	totals := ComputeTotals(FilterTransactions(state, Filter{Range: monthToDate}))

	var budgetTotal int64
	for _, c := range state.Categories {
		if c.MonthlyBudgetCents > 0 {
			budgetTotal += c.MonthlyBudgetCents
		}
	}

	if budgetTotal > 0 {
		return SafeToSpend{
			Cents: budgetTotal - totals.ExpenseCents,
			Basis: BasisBudget,
			Label: "left of monthly budgets",
		}
	}
	return SafeToSpend{
		Cents: totals.NetCents,
		Basis: BasisNet,
		Label: "net this month",
	}
}

// Insights compares the current calendar month to the immediately
// preceding one.
type Insights struct {
	SpendDeltaCents     int64
	IncomeDeltaCents    int64
	CurrentTotals       Totals
	PreviousTotals      Totals
	TopCategoryID       string
	TopCategoryName     string
	PrevTopCategoryID   string
	PrevTopCategoryName string
	TopCategoryChanged  bool
}

// ComputeInsights builds the month-over-month narrative: total spend
// and income deltas plus the top expense category of each month (by
// total descending) and whether it changed. Both months are calendar
// months, not the user's filtered range.
func ComputeInsights(state models.AppState) Insights {
	return insightsAt(state, time.Now())
}

func insightsAt(state models.AppState, now time.Time) Insights {
	today := dateutils.ToISO(now)
	current := dateutils.Range{Min: dateutils.MonthStartISO(today), Max: dateutils.MonthEndISO(today)}
	prevEnd := dateutils.AddDaysISO(current.Min, -1)
	previous := dateutils.Range{Min: dateutils.MonthStartISO(prevEnd), Max: prevEnd}

	currentTxs := FilterTransactions(state, Filter{Range: current})
	previousTxs := FilterTransactions(state, Filter{Range: previous})

	ins := Insights{
		CurrentTotals:  ComputeTotals(currentTxs),
		PreviousTotals: ComputeTotals(previousTxs),
	}
	ins.SpendDeltaCents = ins.CurrentTotals.ExpenseCents - ins.PreviousTotals.ExpenseCents
	ins.IncomeDeltaCents = ins.CurrentTotals.IncomeCents - ins.PreviousTotals.IncomeCents

	ins.TopCategoryID = topCategory(state, currentTxs)
	ins.PrevTopCategoryID = topCategory(state, previousTxs)
	if ins.TopCategoryID != "" {
		ins.TopCategoryName = state.CategoryName(ins.TopCategoryID)
	}
	if ins.PrevTopCategoryID != "" {
		ins.PrevTopCategoryName = state.CategoryName(ins.PrevTopCategoryID)
	}
	ins.TopCategoryChanged = ins.TopCategoryID != "" && ins.PrevTopCategoryID != "" &&
		ins.TopCategoryID != ins.PrevTopCategoryID
	return ins
}

// topCategory returns the expense category with the highest total,
// ties broken by display name, empty when there is no expense.
func topCategory(state models.AppState, txs []models.Transaction) string {
	spend := CategorySpend(txs)
	ids := make([]string, 0, len(spend))
	for id := range spend {
		ids = append(ids, id)
	}
	sort.SliceStable(ids, func(i, j int) bool {
		if spend[ids[i]] != spend[ids[j]] {
			return spend[ids[i]] > spend[ids[j]]
		}
		return state.CategoryName(ids[i]) < state.CategoryName(ids[j])
	})
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}
