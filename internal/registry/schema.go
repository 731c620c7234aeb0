// Package registry maps each category tag to the physical layout of its
// source spreadsheet: which sheets carry data, which columns hold identifiers
// and names, and how many leading rows precede the data.
package registry

import (
	"github.com/go-playground/validator/v10"

	"github.com/jonathan/roster-reconciler/internal/types"
)

// CategorySchema describes where one category source keeps its records.
// Tall layouts list a single identifier column; wide layouts list several,
// one row spreading a whole household across alternating columns.
type CategorySchema struct {
	// Sheets are the zero-based sheet indexes to read, in order.
	Sheets []int `json:"sheets" validate:"required,min=1,dive,gte=0"`
	// NameColumn is the zero-based column holding the person's name, nil when
	// the layout carries none.
	NameColumn *int `json:"name_column,omitempty" validate:"omitempty,gte=0"`
	// IDColumns are the zero-based columns holding identifiers.
	IDColumns []int `json:"id_columns" validate:"required,min=1,dive,gte=0"`
	// SkipRows is the number of leading rows before data begins.
	SkipRows int `json:"skip_rows" validate:"gte=0"`
	// Header, when set, locates the header row dynamically; SkipRows stays
	// the fallback when detection finds nothing.
	Header *HeaderRule `json:"header,omitempty"`
	// CaptureAux keeps every other non-empty cell of a matching row, keyed by
	// its column header.
	CaptureAux bool `json:"capture_aux,omitempty"`
	// StripGPrefix applies the entry-system prefix rule to identifiers.
	StripGPrefix bool `json:"strip_g_prefix,omitempty"`
}

// Validate validates the CategorySchema using the validator.
func (s *CategorySchema) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// Wide reports whether the layout spreads identifiers across several columns
// per row.
func (s *CategorySchema) Wide() bool {
	return len(s.IDColumns) > 1
}

// RosterLayout fixes the master roster's physical layout. Unlike the category
// sources, the roster format is owned by the school system and does not
// drift between terms.
type RosterLayout struct {
	Sheet           int
	NameColumn      int
	IDColumn        int
	StudentIDColumn int
	ClassColumn     int
	GradeColumn     int
	SchoolColumn    int
	SkipRows        int
}

// RosterSchema is the deployed roster layout.
var RosterSchema = RosterLayout{
	Sheet:           0,
	NameColumn:      0,
	IDColumn:        1,
	StudentIDColumn: 10,
	ClassColumn:     9,
	GradeColumn:     8,
	SchoolColumn:    4,
	SkipRows:        1,
}

func col(n int) *int { return &n }

// builtinTable holds the deployed layouts. The orphan roster spreads across
// sheets 0 and 2 of one workbook; the minimum-living and special-difficulty
// sources are wide household layouts.
var builtinTable = map[types.CategoryTag]CategorySchema{
	types.TagPovertyAlleviatedContinuePolicy: {
		Sheets:     []int{0},
		NameColumn: col(6),
		IDColumns:  []int{7},
		SkipRows:   1,
	},
	types.TagPovertyAlleviatedNoPolicy: {
		Sheets:     []int{0},
		NameColumn: col(6),
		IDColumns:  []int{7},
		SkipRows:   1,
	},
	types.TagDisabledWithCertificate: {
		Sheets:       []int{0},
		NameColumn:   col(0),
		IDColumns:    []int{1},
		SkipRows:     1,
		StripGPrefix: true,
	},
	types.TagRuralMinimumLiving: {
		Sheets:    []int{1},
		IDColumns: []int{6, 15, 17, 19, 21, 23, 25, 27, 29},
		SkipRows:  2,
	},
	types.TagUrbanMinimumLiving: {
		Sheets:    []int{1},
		IDColumns: []int{6, 16, 18, 20, 22, 24},
		SkipRows:  2,
	},
	types.TagRuralSpecialDifficulty: {
		Sheets:    []int{1},
		IDColumns: []int{5, 26, 31, 33, 35, 37, 39, 41},
		SkipRows:  3,
	},
	types.TagMonitoringRiskNotEliminated: {
		Sheets:     []int{0},
		NameColumn: col(10),
		IDColumns:  []int{11},
		SkipRows:   1,
	},
	types.TagMonitoringRiskEliminated: {
		Sheets:     []int{0},
		NameColumn: col(10),
		IDColumns:  []int{11},
		SkipRows:   1,
	},
	types.TagOrphanUnsupportedChild: {
		Sheets:     []int{0, 2},
		NameColumn: col(1),
		IDColumns:  []int{2},
		SkipRows:   3,
	},
	types.TagLowIncomePopulation: {
		Sheets:     []int{0},
		NameColumn: col(2),
		IDColumns:  []int{3},
		SkipRows:   1,
		CaptureAux: true,
		Header: &HeaderRule{
			MaxScanRows: 10,
			NameTokens:  []string{"姓名"},
			IDTokens:    []string{"身份证", "证件号"},
		},
	},
}

// deploymentOrder is the order sources are configured and reported in. Map
// iteration order must never leak into output.
var deploymentOrder = []types.CategoryTag{
	types.TagPovertyAlleviatedContinuePolicy,
	types.TagPovertyAlleviatedNoPolicy,
	types.TagDisabledWithCertificate,
	types.TagRuralMinimumLiving,
	types.TagUrbanMinimumLiving,
	types.TagRuralSpecialDifficulty,
	types.TagMonitoringRiskNotEliminated,
	types.TagMonitoringRiskEliminated,
	types.TagOrphanUnsupportedChild,
	types.TagLowIncomePopulation,
}

// SchemaFor looks a tag up in the built-in table.
func SchemaFor(tag types.CategoryTag) (CategorySchema, error) {
	schema, ok := builtinTable[tag]
	if !ok {
		return CategorySchema{}, &SchemaUnknownError{Tag: tag}
	}
	return schema, nil
}

// AllTags returns the closed category set in deployment order.
func AllTags() []types.CategoryTag {
	out := make([]types.CategoryTag, len(deploymentOrder))
	copy(out, deploymentOrder)
	return out
}

// Table is a tag-to-layout mapping with a stable listing order.
type Table struct {
	schemas map[types.CategoryTag]CategorySchema
	order   []types.CategoryTag
}

// Builtin returns a fresh copy of the deployed table; Load overlays external
// entries onto one.
func Builtin() *Table {
	schemas := make(map[types.CategoryTag]CategorySchema, len(builtinTable))
	for tag, schema := range builtinTable {
		schemas[tag] = schema
	}
	return &Table{schemas: schemas, order: AllTags()}
}

// SchemaFor looks a tag up in the table.
func (t *Table) SchemaFor(tag types.CategoryTag) (CategorySchema, error) {
	schema, ok := t.schemas[tag]
	if !ok {
		return CategorySchema{}, &SchemaUnknownError{Tag: tag}
	}
	return schema, nil
}

// Tags returns the table's tags in deployment order.
func (t *Table) Tags() []types.CategoryTag {
	out := make([]types.CategoryTag, len(t.order))
	copy(out, t.order)
	return out
}
