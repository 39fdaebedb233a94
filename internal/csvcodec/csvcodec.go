// Package csvcodec implements the CSV import/export format for
// transactions: a best-effort RFC-4180 tokenizer, the matching field
// escaper, and the fixed seven-column document layout.
package csvcodec

import (
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Header is the fixed column set of exported documents. Imports match
// these names case-insensitively; date, merchant, and amount are
// mandatory.
var Header = []string{"date", "merchant", "amount", "type", "category", "account", "note"}

// SampleCSV illustrates the expected header plus one expense and one
// income row, for the paste-sample affordance.
const SampleCSV = "date,merchant,amount,type,category,account,note\n" +
	"2025-01-04,Corner Market,42.10,expense,Groceries,Checking,weekly shop\n" +
	"2025-01-05,Acme Payroll,2500.00,income,Income,Checking,\n"

// Parse tokenizes CSV text character by character. A double-quoted
// field may contain literal commas and newlines, and a doubled quote
// inside it is an escaped literal quote. Cells are trimmed of
// surrounding whitespace and rows whose every cell is empty are
// dropped. Malformed input (for example an unterminated quote) is
// tokenized best-effort rather than rejected.
func Parse(text string) [][]string {
	var rows [][]string
	var row []string
	var cell strings.Builder
	inQuotes := false

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if inQuotes {
			if ch == '"' {
				if i+1 < len(runes) && runes[i+1] == '"' {
					cell.WriteRune('"')
					i++
				} else {
					inQuotes = false
				}
			} else {
				cell.WriteRune(ch)
			}
			continue
		}
		switch ch {
		case '"':
			inQuotes = true
		case ',':
			row = append(row, cell.String())
			cell.Reset()
		case '\n':
			row = append(row, cell.String())
			cell.Reset()
			rows = appendRow(rows, row)
			row = nil
		default:
			cell.WriteRune(ch)
		}
	}
	row = append(row, cell.String())
	return appendRow(rows, row)
}

// appendRow trims every cell and drops rows that are entirely empty.
// Trimming also removes the carriage return CRLF input leaves at the
// end of the last cell of each line.
func appendRow(rows [][]string, row []string) [][]string {
	empty := true
	for i, cell := range row {
		row[i] = strings.TrimSpace(cell)
		if row[i] != "" {
			empty = false
		}
	}
	if empty {
		return rows
	}
	return append(rows, row)
}

// Escape wraps a field in double quotes, doubling internal quotes,
// when it contains a comma, quote, or line break. Other values pass
// through unchanged.
func Escape(value string) string {
	if strings.ContainsAny(value, ",\"\n\r") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}
