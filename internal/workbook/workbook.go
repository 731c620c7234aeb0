// Package workbook abstracts the two spreadsheet container formats the
// category agencies deliver (legacy binary .xls and zipped-XML .xlsx) behind
// one row-oriented reader. The file extension selects the decoder; content
// sniffing is deliberately not attempted.
package workbook

import (
	"os"
	"path/filepath"
	"strings"
)

// Row is one sheet row. Rows from real agency files are ragged: a row may
// carry fewer cells than the schema expects, and that is not an error.
type Row []string

// Cell returns the value at col, or "" when the column is absent from this
// row. Absence and emptiness are indistinguishable by design; downstream
// filtering treats both as empty.
func (r Row) Cell(col int) string {
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Workbook is an open spreadsheet container.
type Workbook interface {
	// SheetCount reports the number of sheets in the container.
	SheetCount() int
	// Sheet materializes every row of the sheet at the 0-based index.
	// A missing or empty cell resolves to "" via Row.Cell; an out-of-range
	// index returns *SheetMissingError.
	Sheet(index int) ([]Row, error)
	// Close releases any resources held by the decoder.
	Close() error
}

// Open opens the spreadsheet at path, selecting the decoder by extension:
// ".xlsx" for the zipped-XML container, ".xls" for the legacy binary one.
// It returns *SourceNotFoundError when the path does not exist and
// *UnreadableContainerError when the extension is unrecognized or the bytes
// do not parse.
func Open(path string) (Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &SourceNotFoundError{Path: path}
		}
		return nil, &UnreadableContainerError{Path: path, Reason: "cannot stat source", Cause: err}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return openXLSX(path)
	case ".xls":
		return openXLS(path)
	default:
		return nil, &UnreadableContainerError{
			Path:   path,
			Reason: "unsupported file extension (want .xls or .xlsx)",
		}
	}
}
