// Package state implements the mutation layer: pure functions from a
// state snapshot plus arguments to a new snapshot. Invalid input is a
// silent no-op returning the snapshot unchanged - callers are expected
// to have disabled submission already, but the functions refuse on
// their own too.
package state

import (
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"budgetdash/internal/classify"
	"budgetdash/internal/csvcodec"
	"budgetdash/internal/currencyutils"
	"budgetdash/internal/dateutils"
	"budgetdash/internal/models"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// TxInput carries the fields of a transaction being composed.
type TxInput struct {
	Date       string
	Merchant   string
	Amount     string
	Type       models.TransactionType
	CategoryID string
	AccountID  string
	Note       string
}

// AddTransaction validates the input, builds a fresh transaction, and
// prepends it. The amount is parsed to cents and its absolute value
// taken; the type is normalized case-insensitively onto the closed
// enum, defaulting to expense when empty. An empty merchant, a zero
// amount, or an unrecognized type leaves the state unchanged. Income
// transactions are forced into the income category regardless of the
// supplied one.
func AddTransaction(st models.AppState, in TxInput) models.AppState {
	merchant := strings.TrimSpace(in.Merchant)
	cents := currencyutils.ParseMoneyToCents(in.Amount)
	if cents < 0 {
		cents = -cents
	}
	txType, ok := normalizeType(in.Type)
	if merchant == "" || cents == 0 || !ok {
		log.WithField("merchant", in.Merchant).Debug("Rejecting invalid transaction input")
		return st
	}

	categoryID := in.CategoryID
	if txType == models.TypeIncome {
		categoryID = models.CategoryIncomeID
	} else if categoryID == "" {
		categoryID = SuggestCategory(st, merchant)
	}
	accountID := in.AccountID
	if accountID == "" {
		accountID = models.AccountDefaultID
	}
	date := in.Date
	if date == "" {
		date = dateutils.TodayISO()
	}

	tx := models.Transaction{
		ID:          uuid.NewString(),
		Date:        date,
		Merchant:    merchant,
		AmountCents: cents,
		Type:        txType,
		CategoryID:  categoryID,
		AccountID:   accountID,
		Note:        strings.TrimSpace(in.Note),
	}

	st.Transactions = append([]models.Transaction{tx}, st.CloneTransactions()...)
	return st
}

// normalizeType maps free-form type text onto the closed enum. Empty
// input means expense; any other unrecognized value is invalid.
func normalizeType(t models.TransactionType) (models.TransactionType, bool) {
	switch {
	case t == "":
		return models.TypeExpense, true
	case strings.EqualFold(string(t), string(models.TypeExpense)):
		return models.TypeExpense, true
	case strings.EqualFold(string(t), string(models.TypeIncome)):
		return models.TypeIncome, true
	}
	return "", false
}

// DeleteTransaction removes a transaction by id, a no-op when the id
// is unknown.
func DeleteTransaction(st models.AppState, id string) models.AppState {
	out := make([]models.Transaction, 0, len(st.Transactions))
	for _, tx := range st.Transactions {
		if tx.ID != id {
			out = append(out, tx)
		}
	}
	st.Transactions = out
	return st
}

// SetCategoryBudget replaces the monthly budget on the matching
// category, a no-op when the category is unknown.
func SetCategoryBudget(st models.AppState, categoryID string, budgetCents int64) models.AppState {
	categories := st.CloneCategories()
	found := false
	for i := range categories {
		if categories[i].ID == categoryID {
			categories[i].MonthlyBudgetCents = budgetCents
			found = true
		}
	}
	if !found {
		return st
	}
	st.Categories = categories
	return st
}

// AddRule prepends a new categorization rule. Empty match text after
// trimming is a silent no-op.
func AddRule(st models.AppState, contains, categoryID string) models.AppState {
	contains = strings.TrimSpace(contains)
	if contains == "" {
		return st
	}
	rule := models.Rule{ID: uuid.NewString(), Contains: contains, CategoryID: categoryID}
	st.Rules = append([]models.Rule{rule}, st.CloneRules()...)
	return st
}

// DeleteRule removes a rule by id.
func DeleteRule(st models.AppState, id string) models.AppState {
	out := make([]models.Rule, 0, len(st.Rules))
	for _, r := range st.Rules {
		if r.ID != id {
			out = append(out, r)
		}
	}
	st.Rules = out
	return st
}

// ImportCSV parses pasted CSV text and prepends the resulting
// transactions in file order. A rejected header or zero valid rows
// leaves the state untouched.
func ImportCSV(st models.AppState, text string) models.AppState {
	imported, err := csvcodec.ImportTransactions(st, text)
	if err != nil {
		log.WithError(err).Info("CSV import was a no-op")
		return st
	}
	st.Transactions = append(imported, st.CloneTransactions()...)
	return st
}

// Reset replaces the entire state with the fixed default dataset.
func Reset() models.AppState {
	return models.DefaultState()
}

// SuggestCategory runs the live rule classifier for a merchant being
// typed, honoring the smart-categorize flag.
func SuggestCategory(st models.AppState, merchant string) string {
	if !st.Settings.SmartCategorize {
		return models.CategoryOtherID
	}
	return classify.Apply(merchant, st.Rules, models.CategoryOtherID)
}
