// Package codecerror defines the error types returned by the CSV
// import path. Imports never partially apply: a header error rejects
// the whole document, and zero valid rows is reported so the caller
// can treat the import as a no-op.
package codecerror

import "fmt"

// HeaderError reports a structurally invalid import header.
type HeaderError struct {
	Missing []string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("import header missing required columns: %v", e.Missing)
}

// EmptyImportError reports that no data row survived row-level
// validation.
type EmptyImportError struct {
	RowsSeen int
}

func (e *EmptyImportError) Error() string {
	return fmt.Sprintf("no importable rows among %d data rows", e.RowsSeen)
}
