package analytics

import (
	"sort"

	"budgetdash/internal/models"
)

// CashflowPoint is one day of the cashflow chart. RunningCents is the
// cumulative net balance through that day - the charted value. The
// daily NetCents doubles as the delta from the previous point.
type CashflowPoint struct {
	Date         string
	IncomeCents  int64
	ExpenseCents int64
	NetCents     int64
	RunningCents int64
}

// CashflowSeries carries the points plus the figures tooltips need at
// render time: the final cumulative value (for per-point shares) and
// the previous period's net total (for period-over-period deltas).
type CashflowSeries struct {
	Points             []CashflowPoint
	FinalCents         int64
	PrevPeriodNetCents int64
}

// Share returns a point's running balance as a fraction of the final
// cumulative value, zero when the final value is zero.
func (s CashflowSeries) Share(p CashflowPoint) float64 {
	if s.FinalCents == 0 {
		return 0
	}
	return float64(p.RunningCents) / float64(s.FinalCents)
}

// Cashflow groups the filtered transactions into per-day
// income/expense/net buckets sorted by date ascending, then threads a
// running cumulative net through them in chronological order.
func Cashflow(state models.AppState, f Filter) CashflowSeries {
	byDay := make(map[string]*CashflowPoint)
	for _, tx := range FilterTransactions(state, f) {
		point, ok := byDay[tx.Date]
		if !ok {
			point = &CashflowPoint{Date: tx.Date}
			byDay[tx.Date] = point
		}
		if tx.Type == models.TypeIncome {
			point.IncomeCents += tx.AmountCents
		} else {
			point.ExpenseCents += tx.AmountCents
		}
		point.NetCents = point.IncomeCents - point.ExpenseCents
	}

	series := CashflowSeries{
		Points:             make([]CashflowPoint, 0, len(byDay)),
		PrevPeriodNetCents: PreviousTotals(state, f).NetCents,
	}
	for _, point := range byDay {
		series.Points = append(series.Points, *point)
	}
	sort.Slice(series.Points, func(i, j int) bool {
		return series.Points[i].Date < series.Points[j].Date
	})

	var running int64
	for i := range series.Points {
		running += series.Points[i].NetCents
		series.Points[i].RunningCents = running
	}
	series.FinalCents = running
	return series
}
