package csvcodec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgetdash/internal/models"
)

func exportState() models.AppState {
	st := models.DefaultState()
	st.Transactions = []models.Transaction{
		{ID: "t1", Date: "2025-01-01", Merchant: "Coffee, Shop", AmountCents: 450,
			Type: models.TypeExpense, CategoryID: "cat-dining", AccountID: models.AccountDefaultID},
		{ID: "t2", Date: "2025-01-03", Merchant: "Acme Payroll", AmountCents: 250000,
			Type: models.TypeIncome, CategoryID: models.CategoryIncomeID, AccountID: models.AccountDefaultID, Note: "salary"},
		{ID: "t3", Date: "2025-01-02", Merchant: "Rent", AmountCents: 180000,
			Type: models.TypeExpense, CategoryID: "cat-housing", AccountID: "acc-missing"},
	}
	return st
}

func TestExportTransactions(t *testing.T) {
	doc := ExportTransactions(exportState())
	lines := strings.Split(strings.TrimRight(doc, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "date,merchant,amount,type,category,account,note", lines[0])
	// Sorted by date descending.
	assert.True(t, strings.HasPrefix(lines[1], "2025-01-03,"))
	assert.True(t, strings.HasPrefix(lines[2], "2025-01-02,"))
	assert.True(t, strings.HasPrefix(lines[3], "2025-01-01,"))

	assert.Equal(t, "2025-01-03,Acme Payroll,2500.00,income,Income,Checking,salary", lines[1])
	// Dangling account ids render as Unknown, missing note stays blank.
	assert.Equal(t, "2025-01-02,Rent,1800.00,expense,Housing,Unknown,", lines[2])
	// Merchant containing a comma is escaped.
	assert.Equal(t, `2025-01-01,"Coffee, Shop",4.50,expense,Dining,Checking,`, lines[3])
}

func TestExportImportRoundTrip(t *testing.T) {
	st := exportState()
	doc := ExportTransactions(st)

	rows := Parse(doc)
	// Header plus one data row per transaction.
	require.Len(t, rows, len(st.Transactions)+1)

	imported, err := ImportTransactions(st, doc)
	require.NoError(t, err)
	require.Len(t, imported, len(st.Transactions))
	assert.Equal(t, "Coffee, Shop", imported[2].Merchant)
	assert.Equal(t, int64(450), imported[2].AmountCents)
}

func TestExportFilename(t *testing.T) {
	name := ExportFilename()
	assert.True(t, strings.HasPrefix(name, "transactions_"))
	assert.True(t, strings.HasSuffix(name, ".csv"))
	assert.Len(t, name, len("transactions_2025-01-01.csv"))
}
