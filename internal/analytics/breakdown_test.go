package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgetdash/internal/models"
)

func TestPieBreakdown(t *testing.T) {
	st := testState()
	slices := PieBreakdown(st, Filter{Range: march})

	require.Len(t, slices, 3)
	// Sorted by amount descending.
	assert.Equal(t, "cat-housing", slices[0].CategoryID)
	assert.Equal(t, int64(150000), slices[0].AmountCents)
	assert.Equal(t, "cat-groceries", slices[1].CategoryID)
	assert.Equal(t, "cat-transport", slices[2].CategoryID)

	// Groceries spent 4000 in the previous period.
	assert.Equal(t, int64(4000), slices[1].PrevCents)
	assert.Equal(t, int64(8000), slices[1].DeltaCents)

	// Housing had no previous spend so the delta is the full amount.
	assert.Equal(t, int64(150000), slices[0].DeltaCents)
}

func TestPieBreakdownTruncatesToTopEight(t *testing.T) {
	st := testState()
	for i := 0; i < 12; i++ {
		id := fmt.Sprintf("cat-extra-%02d", i)
		st.Categories = append(st.Categories, models.Category{ID: id, Name: fmt.Sprintf("Extra %02d", i)})
		st.Transactions = append(st.Transactions, models.Transaction{
			ID: fmt.Sprintf("tx-extra-%02d", i), Date: "2025-03-15", Merchant: "Extra",
			AmountCents: int64(100 * (i + 1)), Type: models.TypeExpense,
			CategoryID: id, AccountID: "acc-checking",
		})
	}

	slices := PieBreakdown(st, Filter{Range: march})
	assert.Len(t, slices, PieSliceLimit)
	assert.Equal(t, "cat-housing", slices[0].CategoryID, "largest slice stays first")
}

func TestCategoryStats(t *testing.T) {
	st := testState()
	stats := CategoryStats(FilterTransactions(st, Filter{Range: march}))

	groceries := stats["cat-groceries"]
	assert.Equal(t, 2, groceries.Count)
	require.Len(t, groceries.TopMerchants, 1)
	assert.Equal(t, "Corner Market", groceries.TopMerchants[0].Merchant)
	assert.Equal(t, 2, groceries.TopMerchants[0].Count)
	assert.Equal(t, int64(12000), groceries.TopMerchants[0].TotalCents)

	_, hasIncome := stats[models.CategoryIncomeID]
	assert.False(t, hasIncome, "income transactions are excluded")
}

func TestCategoryStatsTopMerchantTruncation(t *testing.T) {
	st := models.DefaultState()
	for i, merchant := range []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo"} {
		st.Transactions = append(st.Transactions, models.Transaction{
			ID: fmt.Sprintf("m%d", i), Date: "2025-03-01", Merchant: merchant,
			AmountCents: int64(100 * (i + 1)), Type: models.TypeExpense,
			CategoryID: "cat-dining", AccountID: "acc-checking",
		})
	}

	stats := CategoryStats(st.Transactions)
	dining := stats["cat-dining"]
	assert.Equal(t, 5, dining.Count)
	require.Len(t, dining.TopMerchants, TopMerchantLimit)
	// Sorted by total descending.
	assert.Equal(t, "Echo", dining.TopMerchants[0].Merchant)
	assert.Equal(t, "Delta", dining.TopMerchants[1].Merchant)
	assert.Equal(t, "Charlie", dining.TopMerchants[2].Merchant)
}
