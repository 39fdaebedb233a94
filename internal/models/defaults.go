package models

// Fixed ids the rest of the system relies on. Income transactions are
// always forced into CategoryIncomeID; unresolvable imports land in
// CategoryOtherID and AccountDefaultID.
const (
	CategoryIncomeID = "cat-income"
	CategoryOtherID  = "cat-other"
	AccountDefaultID = "acc-checking"
)

// UnknownLabel is rendered for dangling category/account references.
// Deleting a referenced entity is deliberately not guarded against.
const UnknownLabel = "Unknown"

// DefaultState returns the fixed starter dataset used on first run and
// whenever a persisted snapshot fails to load.
func DefaultState() AppState {
	return AppState{
		Version: SchemaVersion,
		Categories: []Category{
			{ID: "cat-groceries", Name: "Groceries", Icon: "🛒", MonthlyBudgetCents: 60000},
			{ID: "cat-dining", Name: "Dining", Icon: "🍜", MonthlyBudgetCents: 25000},
			{ID: "cat-transport", Name: "Transport", Icon: "🚆", MonthlyBudgetCents: 15000},
			{ID: "cat-housing", Name: "Housing", Icon: "🏠"},
			{ID: "cat-subscriptions", Name: "Subscriptions", Icon: "📺", MonthlyBudgetCents: 5000},
			{ID: "cat-health", Name: "Health", Icon: "💊"},
			{ID: "cat-shopping", Name: "Shopping", Icon: "🛍️", MonthlyBudgetCents: 20000},
			{ID: CategoryIncomeID, Name: "Income", Icon: "💰"},
			{ID: CategoryOtherID, Name: "Other", Icon: "📦"},
		},
		Accounts: []Account{
			{ID: AccountDefaultID, Name: "Checking", Type: AccountChecking},
			{ID: "acc-credit", Name: "Credit Card", Type: AccountCredit},
			{ID: "acc-savings", Name: "Savings", Type: AccountSavings},
		},
		Rules: []Rule{
			{ID: "rule-grocery", Contains: "market", CategoryID: "cat-groceries"},
			{ID: "rule-coffee", Contains: "coffee", CategoryID: "cat-dining"},
			{ID: "rule-uber", Contains: "uber", CategoryID: "cat-transport"},
			{ID: "rule-netflix", Contains: "netflix", CategoryID: "cat-subscriptions"},
		},
		Transactions: []Transaction{},
		Settings: Settings{
			Currency:        CurrencyUSD,
			HideCents:       false,
			SmartCategorize: true,
		},
	}
}
