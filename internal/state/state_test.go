package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgetdash/internal/models"
)

func stateWithOneTx() models.AppState {
	st := models.DefaultState()
	st.Transactions = []models.Transaction{
		{ID: "existing", Date: "2025-03-01", Merchant: "Old Shop", AmountCents: 1000,
			Type: models.TypeExpense, CategoryID: models.CategoryOtherID, AccountID: models.AccountDefaultID},
	}
	return st
}

func TestAddTransaction(t *testing.T) {
	st := stateWithOneTx()
	out := AddTransaction(st, TxInput{
		Date:       "2025-03-10",
		Merchant:   "Corner Market",
		Amount:     "12.50",
		Type:       models.TypeExpense,
		CategoryID: "cat-groceries",
		AccountID:  models.AccountDefaultID,
	})

	require.Len(t, out.Transactions, 2)
	added := out.Transactions[0]
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "Corner Market", added.Merchant)
	assert.Equal(t, int64(1250), added.AmountCents)
	assert.Equal(t, "cat-groceries", added.CategoryID)
	// New transactions are prepended.
	assert.Equal(t, "existing", out.Transactions[1].ID)
}

func TestAddTransactionRejectsInvalidInput(t *testing.T) {
	st := stateWithOneTx()

	tests := []struct {
		name  string
		input TxInput
	}{
		{"Empty merchant", TxInput{Merchant: "", Amount: "10"}},
		{"Whitespace merchant", TxInput{Merchant: "   ", Amount: "10"}},
		{"Zero amount", TxInput{Merchant: "Shop", Amount: "0"}},
		{"Unparseable amount", TxInput{Merchant: "Shop", Amount: "abc"}},
		{"Unrecognized type", TxInput{Merchant: "Shop", Amount: "10", Type: "transfer"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := AddTransaction(st, tc.input)
			assert.Len(t, out.Transactions, len(st.Transactions),
				"invalid input is a silent no-op")
		})
	}
}

func TestAddTransactionTakesAbsoluteValue(t *testing.T) {
	st := stateWithOneTx()
	out := AddTransaction(st, TxInput{Merchant: "Refunded Shop", Amount: "-25.00", Type: models.TypeExpense})
	require.Len(t, out.Transactions, 2)
	assert.Equal(t, int64(2500), out.Transactions[0].AmountCents)
}

func TestAddTransactionForcesIncomeCategory(t *testing.T) {
	st := stateWithOneTx()
	out := AddTransaction(st, TxInput{
		Merchant:   "Acme Payroll",
		Amount:     "2500.00",
		Type:       models.TypeIncome,
		CategoryID: "cat-groceries",
	})
	require.Len(t, out.Transactions, 2)
	assert.Equal(t, models.CategoryIncomeID, out.Transactions[0].CategoryID,
		"income always lands in the income category")
}

func TestAddTransactionSuggestsCategory(t *testing.T) {
	st := stateWithOneTx()
	out := AddTransaction(st, TxInput{Merchant: "Uber Trip", Amount: "15.00", Type: models.TypeExpense})
	require.Len(t, out.Transactions, 2)
	assert.Equal(t, "cat-transport", out.Transactions[0].CategoryID)

	st.Settings.SmartCategorize = false
	out = AddTransaction(st, TxInput{Merchant: "Uber Trip", Amount: "15.00", Type: models.TypeExpense})
	assert.Equal(t, models.CategoryOtherID, out.Transactions[0].CategoryID)
}

func TestAddTransactionNormalizesType(t *testing.T) {
	st := stateWithOneTx()

	out := AddTransaction(st, TxInput{Merchant: "Acme Payroll", Amount: "100", Type: "Income"})
	require.Len(t, out.Transactions, 2)
	assert.Equal(t, models.TypeIncome, out.Transactions[0].Type)
	assert.Equal(t, models.CategoryIncomeID, out.Transactions[0].CategoryID,
		"normalized income lands in the income category")

	out = AddTransaction(st, TxInput{Merchant: "Shop", Amount: "100", Type: "EXPENSE"})
	require.Len(t, out.Transactions, 2)
	assert.Equal(t, models.TypeExpense, out.Transactions[0].Type)
}

func TestAddTransactionDefaults(t *testing.T) {
	st := stateWithOneTx()
	out := AddTransaction(st, TxInput{Merchant: "Somewhere", Amount: "5"})
	require.Len(t, out.Transactions, 2)
	added := out.Transactions[0]
	assert.Equal(t, models.AccountDefaultID, added.AccountID)
	assert.Len(t, added.Date, len("2006-01-02"), "defaults to today")
}

func TestDeleteTransaction(t *testing.T) {
	st := stateWithOneTx()
	out := DeleteTransaction(st, "existing")
	assert.Empty(t, out.Transactions)

	out = DeleteTransaction(st, "no-such-id")
	assert.Len(t, out.Transactions, 1, "unknown id is a no-op")
}

func TestSetCategoryBudget(t *testing.T) {
	st := models.DefaultState()
	out := SetCategoryBudget(st, "cat-housing", 200000)

	housing, ok := out.CategoryByID("cat-housing")
	require.True(t, ok)
	assert.Equal(t, int64(200000), housing.MonthlyBudgetCents)

	// The original snapshot is untouched.
	original, _ := st.CategoryByID("cat-housing")
	assert.Zero(t, original.MonthlyBudgetCents)

	out = SetCategoryBudget(st, "no-such-category", 100)
	assert.Equal(t, st.Categories, out.Categories, "unknown category is a no-op")
}

func TestAddRule(t *testing.T) {
	st := models.DefaultState()
	before := len(st.Rules)

	out := AddRule(st, "  pharmacy  ", "cat-health")
	require.Len(t, out.Rules, before+1)
	assert.Equal(t, "pharmacy", out.Rules[0].Contains, "match text is trimmed")
	assert.NotEmpty(t, out.Rules[0].ID)

	out = AddRule(st, "   ", "cat-health")
	assert.Len(t, out.Rules, before, "blank match text is a silent no-op")
}

func TestDeleteRule(t *testing.T) {
	st := models.DefaultState()
	before := len(st.Rules)

	out := DeleteRule(st, st.Rules[0].ID)
	assert.Len(t, out.Rules, before-1)

	out = DeleteRule(st, "no-such-rule")
	assert.Len(t, out.Rules, before)
}

func TestImportCSV(t *testing.T) {
	st := stateWithOneTx()
	out := ImportCSV(st, "date,merchant,amount\n2025-03-05,First,1.00\n2025-03-06,Second,2.00")

	require.Len(t, out.Transactions, 3)
	assert.Equal(t, "First", out.Transactions[0].Merchant, "imports are prepended in file order")
	assert.Equal(t, "Second", out.Transactions[1].Merchant)
	assert.Equal(t, "existing", out.Transactions[2].ID)
}

func TestImportCSVInvalidHeaderIsNoOp(t *testing.T) {
	st := stateWithOneTx()
	out := ImportCSV(st, "date,merchant\n2025-03-05,Shop")
	assert.Equal(t, st.Transactions, out.Transactions)
}

func TestImportCSVNoValidRowsIsNoOp(t *testing.T) {
	st := stateWithOneTx()
	out := ImportCSV(st, "date,merchant,amount\n,Shop,1.00")
	assert.Equal(t, st.Transactions, out.Transactions)
}

func TestReset(t *testing.T) {
	st := Reset()
	assert.Equal(t, models.DefaultState(), st)
}

func TestMutationsPreserveSnapshots(t *testing.T) {
	st := stateWithOneTx()
	out := AddTransaction(st, TxInput{Merchant: "New Shop", Amount: "3.00"})

	assert.Len(t, st.Transactions, 1, "previous snapshot keeps its length")
	assert.Equal(t, "existing", st.Transactions[0].ID)
	assert.Len(t, out.Transactions, 2)
}
