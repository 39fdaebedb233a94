package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCashflow(t *testing.T) {
	st := testState()
	series := Cashflow(st, Filter{Range: march})

	require.Len(t, series.Points, 4)

	// Points are sorted by date ascending.
	dates := []string{"2025-03-02", "2025-03-05", "2025-03-10", "2025-03-12"}
	for i, p := range series.Points {
		assert.Equal(t, dates[i], p.Date)
	}

	// Same-day transactions are bucketed together.
	day := series.Points[1]
	assert.Equal(t, int64(0), day.IncomeCents)
	assert.Equal(t, int64(7300), day.ExpenseCents)
	assert.Equal(t, int64(-7300), day.NetCents)

	// The running balance is cumulative net, not the daily delta.
	assert.Equal(t, int64(-5000), series.Points[0].RunningCents)
	assert.Equal(t, int64(-12300), series.Points[1].RunningCents)
	assert.Equal(t, int64(287700), series.Points[2].RunningCents)
	assert.Equal(t, int64(137700), series.Points[3].RunningCents)

	assert.Equal(t, int64(137700), series.FinalCents)
	assert.Equal(t, int64(274000), series.PrevPeriodNetCents)
}

func TestCashflowShare(t *testing.T) {
	st := testState()
	series := Cashflow(st, Filter{Range: march})
	require.NotEmpty(t, series.Points)

	last := series.Points[len(series.Points)-1]
	assert.InDelta(t, 1.0, series.Share(last), 1e-9)

	empty := CashflowSeries{}
	assert.Zero(t, empty.Share(CashflowPoint{RunningCents: 100}),
		"share is 0 when the final cumulative value is 0")
}

func TestCashflowEmptyRange(t *testing.T) {
	st := testState()
	series := Cashflow(st, Filter{Range: march, Search: "no-such-merchant"})
	assert.Empty(t, series.Points)
	assert.Zero(t, series.FinalCents)
}
