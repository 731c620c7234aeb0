package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/roster-reconciler/internal/workbook"
)

func TestHeaderRule_Detect(t *testing.T) {
	rule := &HeaderRule{
		MaxScanRows: 5,
		NameTokens:  []string{"姓名"},
		IDTokens:    []string{"身份证", "证件号"},
	}

	tests := []struct {
		name      string
		rows      []workbook.Row
		wantIndex int
		wantFound bool
	}{
		{
			name: "header on first row",
			rows: []workbook.Row{
				{"序号", "乡镇", "姓名", "身份证号码"},
				{"1", "某镇", "张三", "420101199001011234"},
			},
			wantIndex: 0,
			wantFound: true,
		},
		{
			name: "header after banner rows",
			rows: []workbook.Row{
				{"某县低收入人口花名册"},
				{"制表日期：2025年9月"},
				{},
				{"序号", "乡镇", "姓名", "证件号码", "救助类别"},
				{"1", "某镇", "张三", "420101199001011234", "低保边缘"},
			},
			wantIndex: 3,
			wantFound: true,
		},
		{
			name: "tokens must share a row",
			rows: []workbook.Row{
				{"姓名一览表"},
				{"身份证号码", "户籍地址"},
			},
			wantFound: false,
		},
		{
			name: "name token alone is not a header",
			rows: []workbook.Row{
				{"序号", "姓名", "班级"},
				{"1", "张三", "三年二班"},
			},
			wantFound: false,
		},
		{
			name: "header beyond scan window",
			rows: []workbook.Row{
				{"banner"}, {""}, {""}, {""}, {""},
				{"姓名", "身份证号"},
			},
			wantFound: false,
		},
		{
			name:      "no rows",
			rows:      nil,
			wantFound: false,
		},
		{
			name: "alternate id token",
			rows: []workbook.Row{
				{"姓名", "证件号"},
			},
			wantIndex: 0,
			wantFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, found := rule.Detect(tt.rows)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.wantIndex, index)
			}
		})
	}
}

func TestHeaderRule_DetectScanWindowClampsToRowCount(t *testing.T) {
	rule := &HeaderRule{
		MaxScanRows: 50,
		NameTokens:  []string{"姓名"},
		IDTokens:    []string{"身份证"},
	}

	rows := []workbook.Row{{"姓名", "身份证号"}}
	index, found := rule.Detect(rows)
	assert.True(t, found)
	assert.Equal(t, 0, index)
}
