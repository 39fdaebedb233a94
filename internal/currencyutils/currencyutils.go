// Package currencyutils provides exact-cents money parsing and
// locale-aware formatting. All arithmetic elsewhere in the application
// happens on integer cents; this package is the only place fractional
// representations appear.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"budgetdash/internal/models"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

var printer = message.NewPrinter(language.English)

var currencySymbols = map[models.Currency]string{
	models.CurrencyUSD: "$",
	models.CurrencyEUR: "€",
	models.CurrencyGBP: "£",
	models.CurrencyCHF: "CHF ",
}

// Symbol returns the display symbol for a currency, defaulting to USD.
func Symbol(currency models.Currency) string {
	if s, ok := currencySymbols[currency]; ok {
		return s
	}
	return currencySymbols[models.CurrencyUSD]
}

// ParseMoneyToCents converts free-form money text to integer cents.
// Currency symbols, thousands separators, and stray whitespace are
// discarded; anything unparseable yields zero. The sign of the cleaned
// string is preserved.
func ParseMoneyToCents(text string) int64 {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" || cleaned == "-" || cleaned == "." {
		return 0
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		log.WithField("input", text).Debug("Unparseable money text, treating as zero")
		return 0
	}

	// decimal.Round rounds half away from zero, matching the rounding
	// policy for percentages elsewhere.
	return value.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// FormatMoney renders cents as a currency string. Negative values get
// a leading minus, positives get no sign. With hideCents set the value
// is rounded to whole currency units and the fraction is suppressed.
func FormatMoney(cents int64, currency models.Currency, hideCents bool) string {
	return format(cents, currency, hideCents, false)
}

// FormatDelta renders cents like FormatMoney but always carries an
// explicit sign, with non-negative deltas prefixed by a plus.
func FormatDelta(cents int64, currency models.Currency, hideCents bool) string {
	return format(cents, currency, hideCents, true)
}

func format(cents int64, currency models.Currency, hideCents, explicitPlus bool) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	} else if explicitPlus {
		sign = "+"
	}

	symbol := Symbol(currency)
	if hideCents {
		units := decimal.New(cents, -2).Round(0).IntPart()
		return fmt.Sprintf("%s%s%s", sign, symbol, printer.Sprintf("%d", units))
	}

	whole := cents / 100
	frac := cents % 100
	return fmt.Sprintf("%s%s%s.%02d", sign, symbol, printer.Sprintf("%d", whole), frac)
}

// PlainAmount renders cents as a bare decimal with exactly two
// fraction digits, the form used in CSV exports.
func PlainAmount(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
