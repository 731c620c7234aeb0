package extract

import (
	"strings"

	"github.com/jonathan/roster-reconciler/internal/identity"
	"github.com/jonathan/roster-reconciler/internal/registry"
	"github.com/jonathan/roster-reconciler/internal/types"
	"github.com/jonathan/roster-reconciler/internal/workbook"
)

// Roster reads the master student roster. Rows missing a name or an
// identifier are dropped; the secondary attributes may be empty.
func Roster(path string) ([]types.RosterRecord, error) {
	wb, err := workbook.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = wb.Close() }()

	layout := registry.RosterSchema
	rows, err := wb.Sheet(layout.Sheet)
	if err != nil {
		return nil, err
	}

	var records []types.RosterRecord
	for i := layout.SkipRows; i < len(rows); i++ {
		row := rows[i]

		name := strings.TrimSpace(row.Cell(layout.NameColumn))
		id := identity.Normalize(row.Cell(layout.IDColumn))
		if name == "" || id == "" {
			continue
		}

		records = append(records, types.RosterRecord{
			Name:      name,
			ID:        id,
			StudentID: strings.TrimSpace(row.Cell(layout.StudentIDColumn)),
			Class:     strings.TrimSpace(row.Cell(layout.ClassColumn)),
			Grade:     strings.TrimSpace(row.Cell(layout.GradeColumn)),
			School:    strings.TrimSpace(row.Cell(layout.SchoolColumn)),
		})
	}
	return records, nil
}
