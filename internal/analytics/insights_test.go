package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"budgetdash/internal/models"
)

var fixedNow = time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

func TestSafeToSpendWithBudgets(t *testing.T) {
	st := testState()
	safe := safeToSpendAt(st, fixedNow)

	// Budgets total 125000; expense through March 15 is 162300.
	assert.Equal(t, BasisBudget, safe.Basis)
	assert.Equal(t, int64(125000-162300), safe.Cents)
	assert.NotEmpty(t, safe.Label)
}

func TestSafeToSpendWithoutBudgets(t *testing.T) {
	st := testState()
	for i := range st.Categories {
		st.Categories[i].MonthlyBudgetCents = 0
	}

	safe := safeToSpendAt(st, fixedNow)
	assert.Equal(t, BasisNet, safe.Basis)
	assert.Equal(t, int64(137700), safe.Cents, "falls back to month-to-date net")
}

func TestSafeToSpendIgnoresFutureDates(t *testing.T) {
	st := testState()
	st.Transactions = append(st.Transactions, models.Transaction{
		ID: "future", Date: "2025-03-30", Merchant: "Later", AmountCents: 99999,
		Type: models.TypeExpense, CategoryID: "cat-groceries", AccountID: "acc-checking",
	})

	safe := safeToSpendAt(st, fixedNow)
	assert.Equal(t, int64(125000-162300), safe.Cents,
		"safe to spend is month-to-date, not full month")
}

func TestInsights(t *testing.T) {
	st := testState()
	ins := insightsAt(st, fixedNow)

	assert.Equal(t, int64(162300), ins.CurrentTotals.ExpenseCents)
	assert.Equal(t, int64(6000), ins.PreviousTotals.ExpenseCents)
	assert.Equal(t, int64(162300-6000), ins.SpendDeltaCents)
	assert.Equal(t, int64(300000-280000), ins.IncomeDeltaCents)

	assert.Equal(t, "cat-housing", ins.TopCategoryID)
	assert.Equal(t, "Housing", ins.TopCategoryName)
	assert.Equal(t, "cat-groceries", ins.PrevTopCategoryID)
	assert.True(t, ins.TopCategoryChanged)
}

func TestInsightsTopCategoryUnchanged(t *testing.T) {
	st := testState()
	// Remove housing so groceries tops both months.
	var kept []models.Transaction
	for _, tx := range st.Transactions {
		if tx.ID != "t5" {
			kept = append(kept, tx)
		}
	}
	st.Transactions = kept

	ins := insightsAt(st, fixedNow)
	assert.Equal(t, "cat-groceries", ins.TopCategoryID)
	assert.Equal(t, "cat-groceries", ins.PrevTopCategoryID)
	assert.False(t, ins.TopCategoryChanged)
}

func TestInsightsEmptyMonths(t *testing.T) {
	st := models.DefaultState()
	ins := insightsAt(st, fixedNow)
	assert.Zero(t, ins.SpendDeltaCents)
	assert.Empty(t, ins.TopCategoryID)
	assert.Empty(t, ins.TopCategoryName, "no month winner means no name, not a fallback label")
	assert.Empty(t, ins.PrevTopCategoryName)
	assert.False(t, ins.TopCategoryChanged)
}
