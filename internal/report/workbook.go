package report

import (
	"github.com/xuri/excelize/v2"

	"github.com/jonathan/roster-reconciler/internal/aggregate"
	"github.com/jonathan/roster-reconciler/internal/registry"
	"github.com/jonathan/roster-reconciler/internal/types"
)

const (
	resultsSheet = "匹配结果"
	summarySheet = "分类汇总"
)

// WriteWorkbook writes the match list and a per-category tally as a plain
// two-sheet workbook. No styling: the file is a working document for manual
// review, not the report the school issues.
func WriteWorkbook(path string, results []types.MatchResult) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return &WriteError{Path: path, Cause: err}
	}

	if err := writeSheet(f, resultsSheet, resultRows(results)); err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	if err := writeSheet(f, summarySheet, summaryRows(results)); err != nil {
		return &WriteError{Path: path, Cause: err}
	}

	if err := f.SaveAs(path); err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	return nil
}

func resultRows(results []types.MatchResult) [][]interface{} {
	rows := [][]interface{}{
		{"姓名", "身份证件号", "全国学籍号", "年级", "班级", "学校名称", "困难类型", "来源表"},
	}
	for _, result := range results {
		rows = append(rows, []interface{}{
			result.Student.Name,
			result.Student.ID,
			result.Student.StudentID,
			result.Student.Grade,
			result.Student.Class,
			result.Student.School,
			result.Category.Tag.Label(),
			result.Category.SourceLabel,
		})
	}
	return rows
}

// summaryRows tallies every category in deployment order, zeros included, so
// reviewers see at a glance which sources produced nothing.
func summaryRows(results []types.MatchResult) [][]interface{} {
	counts := aggregate.CountByTag(results)

	rows := [][]interface{}{{"困难类型", "人数"}}
	for _, tag := range registry.AllTags() {
		rows = append(rows, []interface{}{tag.Label(), counts[tag]})
	}
	return rows
}

func writeSheet(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
