package csvcodec

import (
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"budgetdash/internal/classify"
	"budgetdash/internal/codecerror"
	"budgetdash/internal/currencyutils"
	"budgetdash/internal/models"
)

// ImportTransactions parses pasted CSV text into new transactions in
// file order. Header names are matched case-insensitively; a header
// missing date, merchant, or amount rejects the whole document. Rows
// missing any of those three fields, or whose amount is not strictly
// positive, are skipped individually. Category and account names are
// resolved case-insensitively against existing records, with the
// classifier filling unresolvable expense categories when smart
// categorization is on. Zero surviving rows is an error so the caller
// can treat the import as a no-op.
func ImportTransactions(state models.AppState, text string) ([]models.Transaction, error) {
	rows := Parse(text)
	if len(rows) == 0 {
		return nil, &codecerror.HeaderError{Missing: []string{"date", "merchant", "amount"}}
	}

	columns := map[string]int{}
	for i, name := range rows[0] {
		columns[strings.ToLower(name)] = i
	}
	var missing []string
	for _, required := range []string{"date", "merchant", "amount"} {
		if _, ok := columns[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		log.WithField("missing", missing).Warn("Rejecting CSV import with invalid header")
		return nil, &codecerror.HeaderError{Missing: missing}
	}

	cell := func(row []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	var imported []models.Transaction
	for _, row := range rows[1:] {
		date := cell(row, "date")
		merchant := cell(row, "merchant")
		amount := cell(row, "amount")
		if date == "" || merchant == "" || amount == "" {
			continue
		}
		cents := currencyutils.ParseMoneyToCents(amount)
		if cents <= 0 {
			continue
		}

		txType := models.TypeExpense
		if strings.EqualFold(cell(row, "type"), string(models.TypeIncome)) {
			txType = models.TypeIncome
		}

		imported = append(imported, models.Transaction{
			ID:          uuid.NewString(),
			Date:        date,
			Merchant:    merchant,
			AmountCents: cents,
			Type:        txType,
			CategoryID:  resolveCategory(state, merchant, cell(row, "category"), txType),
			AccountID:   resolveAccount(state, cell(row, "account")),
			Note:        cell(row, "note"),
		})
	}

	if len(imported) == 0 {
		return nil, &codecerror.EmptyImportError{RowsSeen: len(rows) - 1}
	}

	log.WithFields(logrus.Fields{
		"imported": len(imported),
		"skipped":  len(rows) - 1 - len(imported),
	}).Info("Parsed CSV import")
	return imported, nil
}

// resolveCategory maps a row's category name to an id. Income rows
// always land in the income category. Unresolvable expense categories
// go through the classifier when smart categorization is enabled,
// otherwise to the fixed default category.
func resolveCategory(state models.AppState, merchant, name string, txType models.TransactionType) string {
	if txType == models.TypeIncome {
		return models.CategoryIncomeID
	}
	if c, ok := state.CategoryByName(name); ok {
		return c.ID
	}
	if state.Settings.SmartCategorize {
		return classify.Apply(merchant, state.Rules, models.CategoryOtherID)
	}
	return models.CategoryOtherID
}

func resolveAccount(state models.AppState, name string) string {
	if a, ok := state.AccountByName(name); ok {
		return a.ID
	}
	return models.AccountDefaultID
}
