// Package extract walks spreadsheet sources and produces domain records.
// Extraction filters at row level: rows without a usable identifier are
// dropped silently, and a malformed row never aborts the rows after it.
// Whole-source failures (missing file, unreadable container, missing sheet)
// surface as the workbook package's typed errors.
package extract

import (
	"path/filepath"
	"strings"

	"github.com/jonathan/roster-reconciler/internal/identity"
	"github.com/jonathan/roster-reconciler/internal/registry"
	"github.com/jonathan/roster-reconciler/internal/types"
	"github.com/jonathan/roster-reconciler/internal/workbook"
)

// Category reads one category source using the built-in layout for its tag.
func Category(path string, tag types.CategoryTag) ([]types.CategoryRecord, error) {
	schema, err := registry.SchemaFor(tag)
	if err != nil {
		return nil, err
	}
	return CategoryWithSchema(path, tag, schema)
}

// CategoryWithSchema reads one category source using an explicit layout,
// letting callers substitute entries from an external schema table.
func CategoryWithSchema(path string, tag types.CategoryTag, schema registry.CategorySchema) ([]types.CategoryRecord, error) {
	wb, err := workbook.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = wb.Close() }()

	label := filepath.Base(path)

	var records []types.CategoryRecord
	for _, sheetIndex := range schema.Sheets {
		rows, err := wb.Sheet(sheetIndex)
		if err != nil {
			return nil, err
		}
		records = append(records, sheetRecords(rows, tag, label, schema)...)
	}
	return records, nil
}

// sheetRecords walks one sheet's rows under a schema. Records come out in
// row order, and for wide layouts in column order within a row.
func sheetRecords(rows []workbook.Row, tag types.CategoryTag, label string, schema registry.CategorySchema) []types.CategoryRecord {
	start := schema.SkipRows
	headerRow := -1
	if schema.Header != nil {
		if index, ok := schema.Header.Detect(rows); ok {
			headerRow = index
			start = index + 1
		}
	}

	var headers workbook.Row
	if schema.CaptureAux {
		headers = headerCells(rows, headerRow, start)
	}

	var records []types.CategoryRecord
	for i := start; i < len(rows); i++ {
		row := rows[i]
		for _, idColumn := range schema.IDColumns {
			id := identity.Normalize(row.Cell(idColumn))
			if schema.StripGPrefix {
				id = identity.StripEntryPrefix(id)
			}
			if id == "" {
				continue
			}

			record := types.CategoryRecord{
				Name:        types.UnknownName,
				ID:          id,
				Tag:         tag,
				SourceLabel: label,
			}
			if schema.NameColumn != nil {
				if name := strings.TrimSpace(row.Cell(*schema.NameColumn)); name != "" {
					record.Name = name
				}
			}
			if schema.CaptureAux {
				record.Aux = auxCells(row, headers, schema)
			}
			records = append(records, record)
		}
	}
	return records
}

// headerCells picks the row whose cells key auxiliary values: the detected
// header row when there is one, else the last skipped row.
func headerCells(rows []workbook.Row, headerRow, start int) workbook.Row {
	if headerRow >= 0 && headerRow < len(rows) {
		return rows[headerRow]
	}
	if start > 0 && start-1 < len(rows) {
		return rows[start-1]
	}
	return nil
}

// auxCells collects every non-identifier, non-name, non-empty cell of a row,
// keyed by the header text of its column. Cells under unnamed columns are
// dropped.
func auxCells(row workbook.Row, headers workbook.Row, schema registry.CategorySchema) map[string]string {
	var aux map[string]string
	for column := range row {
		if reservedColumn(column, schema) {
			continue
		}
		value := strings.TrimSpace(row.Cell(column))
		if value == "" {
			continue
		}
		key := strings.TrimSpace(headers.Cell(column))
		if key == "" {
			continue
		}
		if aux == nil {
			aux = make(map[string]string)
		}
		aux[key] = value
	}
	return aux
}

// reservedColumn reports whether column is one of the schema's identifier or
// name columns.
func reservedColumn(column int, schema registry.CategorySchema) bool {
	if schema.NameColumn != nil && column == *schema.NameColumn {
		return true
	}
	for _, idColumn := range schema.IDColumns {
		if column == idColumn {
			return true
		}
	}
	return false
}
