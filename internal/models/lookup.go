package models

import "strings"

// CategoryByID returns the category with the given id.
func (s AppState) CategoryByID(id string) (Category, bool) {
	for _, c := range s.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// AccountByID returns the account with the given id.
func (s AppState) AccountByID(id string) (Account, bool) {
	for _, a := range s.Accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}

// CategoryName resolves a category id to its display name, falling
// back to UnknownLabel for dangling references.
func (s AppState) CategoryName(id string) string {
	if c, ok := s.CategoryByID(id); ok {
		return c.Name
	}
	return UnknownLabel
}

// AccountName resolves an account id to its display name, falling back
// to UnknownLabel for dangling references.
func (s AppState) AccountName(id string) string {
	if a, ok := s.AccountByID(id); ok {
		return a.Name
	}
	return UnknownLabel
}

// CategoryByName resolves a display name case-insensitively.
func (s AppState) CategoryByName(name string) (Category, bool) {
	name = strings.TrimSpace(name)
	for _, c := range s.Categories {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Category{}, false
}

// AccountByName resolves a display name case-insensitively.
func (s AppState) AccountByName(name string) (Account, bool) {
	name = strings.TrimSpace(name)
	for _, a := range s.Accounts {
		if strings.EqualFold(a.Name, name) {
			return a, true
		}
	}
	return Account{}, false
}

// CloneTransactions returns a fresh copy of the transaction slice so a
// mutation can prepend or filter without touching the previous snapshot.
func (s AppState) CloneTransactions() []Transaction {
	out := make([]Transaction, len(s.Transactions))
	copy(out, s.Transactions)
	return out
}

// CloneCategories returns a fresh copy of the category slice.
func (s AppState) CloneCategories() []Category {
	out := make([]Category, len(s.Categories))
	copy(out, s.Categories)
	return out
}

// CloneRules returns a fresh copy of the rule slice.
func (s AppState) CloneRules() []Rule {
	out := make([]Rule, len(s.Rules))
	copy(out, s.Rules)
	return out
}
