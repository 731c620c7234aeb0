package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/roster-reconciler/internal/types"
)

func TestBuiltinTable_CoversEveryTag(t *testing.T) {
	tags := AllTags()
	require.Len(t, tags, 10)

	for _, tag := range tags {
		t.Run(string(tag), func(t *testing.T) {
			schema, err := SchemaFor(tag)
			require.NoError(t, err)
			assert.NotEmpty(t, schema.Sheets)
			assert.NotEmpty(t, schema.IDColumns)
			assert.NoError(t, schema.Validate())
		})
	}
}

func TestAllTags_DeploymentOrder(t *testing.T) {
	expected := []types.CategoryTag{
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

	assert.Equal(t, expected, AllTags())
	// Repeated calls must agree; callers mutating the returned slice must not
	// corrupt the order.
	first := AllTags()
	first[0] = types.CategoryTag("mutated")
	assert.Equal(t, expected, AllTags())
}

func TestSchemaFor_UnknownTag(t *testing.T) {
	_, err := SchemaFor(types.CategoryTag("retired_category"))
	require.Error(t, err)

	var unknown *SchemaUnknownError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, types.CategoryTag("retired_category"), unknown.Tag)
}

func TestBuiltinTable_WideLayouts(t *testing.T) {
	tests := []struct {
		tag     types.CategoryTag
		columns int
	}{
		{types.TagRuralMinimumLiving, 9},
		{types.TagUrbanMinimumLiving, 6},
		{types.TagRuralSpecialDifficulty, 8},
	}

	for _, tt := range tests {
		t.Run(string(tt.tag), func(t *testing.T) {
			schema, err := SchemaFor(tt.tag)
			require.NoError(t, err)
			assert.True(t, schema.Wide())
			assert.Len(t, schema.IDColumns, tt.columns)
			assert.Nil(t, schema.NameColumn, "wide household layouts carry no name column")
		})
	}
}

func TestBuiltinTable_TallLayoutsAreNotWide(t *testing.T) {
	for _, tag := range []types.CategoryTag{
		types.TagPovertyAlleviatedContinuePolicy,
		types.TagDisabledWithCertificate,
		types.TagMonitoringRiskEliminated,
		types.TagOrphanUnsupportedChild,
		types.TagLowIncomePopulation,
	} {
		schema, err := SchemaFor(tag)
		require.NoError(t, err)
		assert.False(t, schema.Wide(), "tag %s", tag)
		require.NotNil(t, schema.NameColumn, "tag %s", tag)
	}
}

func TestBuiltinTable_OrphanSpansTwoSheets(t *testing.T) {
	schema, err := SchemaFor(types.TagOrphanUnsupportedChild)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, schema.Sheets)
	assert.Equal(t, 3, schema.SkipRows)
}

func TestBuiltinTable_OnlyDisabledStripsPrefix(t *testing.T) {
	for _, tag := range AllTags() {
		schema, err := SchemaFor(tag)
		require.NoError(t, err)
		assert.Equal(t, tag == types.TagDisabledWithCertificate, schema.StripGPrefix, "tag %s", tag)
	}
}

func TestBuiltinTable_OnlyLowIncomeCapturesAux(t *testing.T) {
	for _, tag := range AllTags() {
		schema, err := SchemaFor(tag)
		require.NoError(t, err)
		assert.Equal(t, tag == types.TagLowIncomePopulation, schema.CaptureAux, "tag %s", tag)
		assert.Equal(t, tag == types.TagLowIncomePopulation, schema.Header != nil, "tag %s", tag)
	}
}

func TestCategorySchema_Validate(t *testing.T) {
	tests := []struct {
		name    string
		schema  CategorySchema
		wantErr bool
	}{
		{
			name:   "minimal tall layout",
			schema: CategorySchema{Sheets: []int{0}, IDColumns: []int{1}},
		},
		{
			name: "full entry",
			schema: CategorySchema{
				Sheets:     []int{0, 2},
				NameColumn: col(1),
				IDColumns:  []int{2},
				SkipRows:   3,
				Header:     &HeaderRule{MaxScanRows: 5, NameTokens: []string{"姓名"}, IDTokens: []string{"身份证"}},
			},
		},
		{
			name:    "no sheets",
			schema:  CategorySchema{IDColumns: []int{1}},
			wantErr: true,
		},
		{
			name:    "no id columns",
			schema:  CategorySchema{Sheets: []int{0}},
			wantErr: true,
		},
		{
			name:    "negative id column",
			schema:  CategorySchema{Sheets: []int{0}, IDColumns: []int{-1}},
			wantErr: true,
		},
		{
			name:    "negative skip rows",
			schema:  CategorySchema{Sheets: []int{0}, IDColumns: []int{1}, SkipRows: -1},
			wantErr: true,
		},
		{
			name:    "header without tokens",
			schema:  CategorySchema{Sheets: []int{0}, IDColumns: []int{1}, Header: &HeaderRule{MaxScanRows: 5}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRosterSchema_FixedLayout(t *testing.T) {
	assert.Equal(t, 0, RosterSchema.Sheet)
	assert.Equal(t, 0, RosterSchema.NameColumn)
	assert.Equal(t, 1, RosterSchema.IDColumn)
	assert.Equal(t, 10, RosterSchema.StudentIDColumn)
	assert.Equal(t, 9, RosterSchema.ClassColumn)
	assert.Equal(t, 8, RosterSchema.GradeColumn)
	assert.Equal(t, 4, RosterSchema.SchoolColumn)
	assert.Equal(t, 1, RosterSchema.SkipRows)
}

func TestBuiltin_TableMatchesPackageLookups(t *testing.T) {
	table := Builtin()
	assert.Equal(t, AllTags(), table.Tags())

	for _, tag := range table.Tags() {
		fromTable, err := table.SchemaFor(tag)
		require.NoError(t, err)
		fromPackage, err := SchemaFor(tag)
		require.NoError(t, err)
		assert.Equal(t, fromPackage, fromTable)
	}

	_, err := table.SchemaFor(types.CategoryTag("retired_category"))
	var unknown *SchemaUnknownError
	assert.ErrorAs(t, err, &unknown)
}
