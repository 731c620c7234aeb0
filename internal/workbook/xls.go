package workbook

import (
	"bytes"
	"os"

	shxls "github.com/shakinm/xlsReader/xls"
)

// xlsWorkbook reads the legacy binary (BIFF8) container via xlsReader. The
// whole file is decoded at open; Close is a no-op.
type xlsWorkbook struct {
	book shxls.Workbook
	path string
}

func openXLS(path string) (Workbook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &SourceNotFoundError{Path: path}
		}
		return nil, &UnreadableContainerError{Path: path, Reason: "reading source", Cause: err}
	}

	book, err := shxls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &UnreadableContainerError{Path: path, Cause: err}
	}
	return &xlsWorkbook{book: book, path: path}, nil
}

func (w *xlsWorkbook) SheetCount() int {
	return w.book.GetNumberSheets()
}

func (w *xlsWorkbook) Sheet(index int) ([]Row, error) {
	// The decoder's own bounds check is off by one and panics on an
	// out-of-range index, so reject it here first.
	if index < 0 || index >= w.book.GetNumberSheets() {
		return nil, &SheetMissingError{Path: w.path, Index: index, Sheets: w.SheetCount()}
	}
	sheet, err := w.book.GetSheet(index)
	if err != nil || sheet == nil {
		return nil, &SheetMissingError{Path: w.path, Index: index, Sheets: w.SheetCount()}
	}

	total := sheet.GetNumberRows()
	rows := make([]Row, 0, total)
	for i := 0; i < total; i++ {
		row, err := sheet.GetRow(i)
		if err != nil || row == nil {
			// Gaps inside the sheet surface as empty rows, not failures.
			rows = append(rows, Row{})
			continue
		}
		cells := row.GetCols()
		r := make(Row, len(cells))
		for j, cell := range cells {
			r[j] = cell.GetString()
		}
		rows = append(rows, r)
	}
	return rows, nil
}

func (w *xlsWorkbook) Close() error {
	return nil
}
