// Package classify implements rule-based auto-categorization: an
// ordered list of case-insensitive substring rules mapping merchant
// names to categories.
package classify

import (
	"strings"

	"github.com/sirupsen/logrus"

	"budgetdash/internal/models"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Apply matches a merchant name against the rules in list order and
// returns the category of the first rule whose trimmed Contains text
// is a substring of the lower-cased merchant. Rules with empty match
// text are skipped. List order wins over specificity; when no rule
// matches, the fallback category is returned.
func Apply(merchant string, rules []models.Rule, fallbackCategoryID string) string {
	haystack := strings.ToLower(merchant)
	for _, rule := range rules {
		needle := strings.ToLower(strings.TrimSpace(rule.Contains))
		if needle == "" {
			continue
		}
		if strings.Contains(haystack, needle) {
			log.WithFields(logrus.Fields{
				"merchant": merchant,
				"rule":     rule.Contains,
				"category": rule.CategoryID,
			}).Debug("Merchant matched categorization rule")
			return rule.CategoryID
		}
	}
	return fallbackCategoryID
}
