package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jonathan/roster-reconciler/internal/types"
)

func sampleResults() []types.MatchResult {
	return []types.MatchResult{
		{
			Student: types.RosterRecord{
				Name:      "张三",
				ID:        "420101199001011234",
				StudentID: "G420101199001011234",
				Class:     "三年二班",
				Grade:     "三年级",
				School:    "第一小学",
			},
			Category: types.CategoryRecord{
				Name:        "张三",
				ID:          "420101199001011234",
				Tag:         types.TagRuralMinimumLiving,
				SourceLabel: "rural.xls",
			},
		},
		{
			Student: types.RosterRecord{Name: "李四", ID: "420101199002021234"},
			Category: types.CategoryRecord{
				Name:        types.UnknownName,
				ID:          "420101199002021234",
				Tag:         types.TagRuralMinimumLiving,
				SourceLabel: "rural.xls",
			},
		},
		{
			Student: types.RosterRecord{Name: "王五", ID: "420101199003031234"},
			Category: types.CategoryRecord{
				Name:        "王五",
				ID:          "420101199003031234",
				Tag:         types.TagOrphanUnsupportedChild,
				SourceLabel: "orphans.xlsx",
			},
		},
	}
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matches.json")

	payload := &Payload{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Roster:      "roster.xlsx",
		Total:       3,
		Counts: map[types.CategoryTag]int{
			types.TagRuralMinimumLiving:     2,
			types.TagOrphanUnsupportedChild: 1,
		},
		Failed: []SourceFailure{
			{Tag: types.TagUrbanMinimumLiving, Path: "urban.xls", Error: "source not found"},
		},
		Results: sampleResults(),
	}
	require.NoError(t, WriteJSON(path, payload))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Payload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, payload.RunID, decoded.RunID)
	assert.Equal(t, payload.Total, decoded.Total)
	assert.Equal(t, payload.Counts, decoded.Counts)
	assert.Equal(t, payload.Failed, decoded.Failed)
	require.Len(t, decoded.Results, 3)
	assert.Equal(t, "张三", decoded.Results[0].Student.Name)
	assert.Equal(t, types.TagRuralMinimumLiving, decoded.Results[0].Category.Tag)
}

func TestWriteJSON_BadPath(t *testing.T) {
	err := WriteJSON(filepath.Join(t.TempDir(), "missing", "out.json"), &Payload{})
	require.Error(t, err)

	var writeErr *WriteError
	assert.ErrorAs(t, err, &writeErr)
}

func TestWriteWorkbook_ResultsSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matches.xlsx")
	require.NoError(t, WriteWorkbook(path, sampleResults()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("匹配结果")
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"姓名", "身份证件号", "全国学籍号", "年级", "班级", "学校名称", "困难类型", "来源表"}, rows[0])
	assert.Equal(t, "张三", rows[1][0])
	assert.Equal(t, "420101199001011234", rows[1][1])
	assert.Equal(t, "农村低保", rows[1][6])
	assert.Equal(t, "rural.xls", rows[1][7])
	assert.Equal(t, "孤儿及事实无人抚养儿童", rows[3][6])
}

func TestWriteWorkbook_SummaryCountsEveryCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matches.xlsx")
	require.NoError(t, WriteWorkbook(path, sampleResults()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("分类汇总")
	require.NoError(t, err)
	require.Len(t, rows, 11, "header plus one row per category")

	tally := make(map[string]string)
	for _, row := range rows[1:] {
		require.Len(t, row, 2)
		tally[row[0]] = row[1]
	}
	assert.Equal(t, "2", tally["农村低保"])
	assert.Equal(t, "1", tally["孤儿及事实无人抚养儿童"])
	assert.Equal(t, "0", tally["城镇低保"])
}

func TestWriteWorkbook_EmptyResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matches.xlsx")
	require.NoError(t, WriteWorkbook(path, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("匹配结果")
	require.NoError(t, err)
	assert.Len(t, rows, 1, "header only")
}
