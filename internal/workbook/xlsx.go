package workbook

import (
	"github.com/xuri/excelize/v2"
)

// xlsxWorkbook reads the modern zipped-XML container via excelize.
type xlsxWorkbook struct {
	file *excelize.File
	path string
}

func openXLSX(path string) (Workbook, error) {
	// RawCellValue keeps identifier digits exactly as stored instead of
	// pushing long numerics through Excel number formatting.
	f, err := excelize.OpenFile(path, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &UnreadableContainerError{Path: path, Cause: err}
	}
	return &xlsxWorkbook{file: f, path: path}, nil
}

func (w *xlsxWorkbook) SheetCount() int {
	return len(w.file.GetSheetList())
}

func (w *xlsxWorkbook) Sheet(index int) ([]Row, error) {
	name := w.file.GetSheetName(index)
	if name == "" {
		return nil, &SheetMissingError{Path: w.path, Index: index, Sheets: w.SheetCount()}
	}

	raw, err := w.file.GetRows(name)
	if err != nil {
		return nil, &UnreadableContainerError{Path: w.path, Reason: "reading sheet " + name, Cause: err}
	}

	rows := make([]Row, len(raw))
	for i, r := range raw {
		rows[i] = Row(r)
	}
	return rows, nil
}

func (w *xlsxWorkbook) Close() error {
	return w.file.Close()
}
