// Package models defines the core data structures for the budget dashboard.
package models

// SchemaVersion tags persisted snapshots. A snapshot with any other
// version is discarded on load and replaced with the default dataset.
const SchemaVersion = 2

// TransactionType distinguishes money flowing in from money flowing out.
// The sign of an amount is carried here, never by the integer itself.
type TransactionType string

const (
	TypeExpense TransactionType = "expense"
	TypeIncome  TransactionType = "income"
)

// AccountType is informational only and never enters arithmetic.
type AccountType string

const (
	AccountChecking AccountType = "checking"
	AccountCredit   AccountType = "credit"
	AccountSavings  AccountType = "savings"
)

// Currency is the closed set of display currencies.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyCHF Currency = "CHF"
)

// Transaction is an immutable record of a single money movement.
// Date is an ISO YYYY-MM-DD string; the fixed-width zero-padded format
// makes lexicographic comparison equivalent to chronological order.
type Transaction struct {
	ID          string          `json:"id" yaml:"id"`
	Date        string          `json:"date" yaml:"date"`
	Merchant    string          `json:"merchant" yaml:"merchant"`
	AmountCents int64           `json:"amount_cents" yaml:"amount_cents"`
	Type        TransactionType `json:"type" yaml:"type"`
	CategoryID  string          `json:"category_id" yaml:"category_id"`
	AccountID   string          `json:"account_id" yaml:"account_id"`
	Note        string          `json:"note,omitempty" yaml:"note,omitempty"`
}

// Category groups transactions. MonthlyBudgetCents of zero means the
// category is not budget-tracked.
type Category struct {
	ID                 string `json:"id" yaml:"id"`
	Name               string `json:"name" yaml:"name"`
	Icon               string `json:"icon,omitempty" yaml:"icon,omitempty"`
	MonthlyBudgetCents int64  `json:"monthly_budget_cents,omitempty" yaml:"monthly_budget_cents,omitempty"`
}

// Account is a container transactions belong to.
type Account struct {
	ID   string      `json:"id" yaml:"id"`
	Name string      `json:"name" yaml:"name"`
	Type AccountType `json:"type" yaml:"type"`
}

// Rule maps merchants to categories by case-insensitive substring
// match. Rules are evaluated in list order, first match wins.
type Rule struct {
	ID         string `json:"id" yaml:"id"`
	Contains   string `json:"contains" yaml:"contains"`
	CategoryID string `json:"category_id" yaml:"category_id"`
}

// Settings holds user display and behavior preferences.
type Settings struct {
	Currency        Currency `json:"currency" yaml:"currency"`
	HideCents       bool     `json:"hide_cents" yaml:"hide_cents"`
	SmartCategorize bool     `json:"smart_categorize" yaml:"smart_categorize"`
}

// AppState is the aggregate root. It exclusively owns all entity
// collections; mutations replace whole sub-collections, never elements
// in place.
type AppState struct {
	Version      int           `json:"version" yaml:"version"`
	Categories   []Category    `json:"categories" yaml:"categories"`
	Accounts     []Account     `json:"accounts" yaml:"accounts"`
	Rules        []Rule        `json:"rules" yaml:"rules"`
	Transactions []Transaction `json:"transactions" yaml:"transactions"`
	Settings     Settings      `json:"settings" yaml:"settings"`
}
