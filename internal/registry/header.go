package registry

import (
	"strings"

	"github.com/jonathan/roster-reconciler/internal/workbook"
)

// HeaderRule locates the header row of sources whose leading rows drift
// between deployments (title banners, issuing-office lines, date stamps).
type HeaderRule struct {
	MaxScanRows int      `json:"max_scan_rows" validate:"required,gt=0"`
	NameTokens  []string `json:"name_tokens" validate:"required,min=1,dive,required"`
	IDTokens    []string `json:"id_tokens" validate:"required,min=1,dive,required"`
}

// Detect scans the first MaxScanRows rows and returns the index of the first
// row containing at least one name token and at least one identifier token,
// in any cells. When no row qualifies it returns (0, false) and callers fall
// back to the schema's fixed SkipRows.
func (r *HeaderRule) Detect(rows []workbook.Row) (int, bool) {
	limit := r.MaxScanRows
	if limit > len(rows) {
		limit = len(rows)
	}

	for i := 0; i < limit; i++ {
		if rowContainsAny(rows[i], r.NameTokens) && rowContainsAny(rows[i], r.IDTokens) {
			return i, true
		}
	}
	return 0, false
}

func rowContainsAny(row workbook.Row, tokens []string) bool {
	for _, cell := range row {
		if cell == "" {
			continue
		}
		for _, token := range tokens {
			if strings.Contains(cell, token) {
				return true
			}
		}
	}
	return false
}
