// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/paperdesk/pkg/types"
)

func TestNormalizeRow(t *testing.T) {
	tests := []struct {
		name string
		row  Row
		want types.PaperFields
	}{
		{
			name: "localized labels",
			row: Row{
				"标题":  "深度学习综述",
				"作者":  "张三, 李四",
				"摘要":  "这是摘要。",
				"DOI": "10.1/abc",
				"期刊名": "计算机学报",
				"时间":  "2023",
			},
			want: types.PaperFields{
				Title:    "深度学习综述",
				Authors:  []string{"张三", "李四"},
				Abstract: "这是摘要。",
				DOI:      "10.1/abc",
				Journal:  "计算机学报",
				Date:     "2023",
			},
		},
		{
			name: "english labels",
			row: Row{
				"Title":   "A Survey",
				"Authors": "Smith; Jones",
				"Journal": "TPAMI",
			},
			want: types.PaperFields{
				Title:   "A Survey",
				Authors: []string{"Smith", "Jones"},
				Journal: "TPAMI",
			},
		},
		{
			name: "localized label wins over english",
			row: Row{
				"标题":    "中文标题",
				"Title": "English Title",
			},
			want: types.PaperFields{Title: "中文标题", Authors: []string{}},
		},
		{
			name: "empty localized cell falls through to english",
			row: Row{
				"标题":    "  ",
				"Title": "English Title",
			},
			want: types.PaperFields{Title: "English Title", Authors: []string{}},
		},
		{
			name: "empty row yields all defaults",
			row:  Row{},
			want: types.PaperFields{Authors: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRow(tt.row)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitAuthors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "commas", in: "Alice, Bob", want: []string{"Alice", "Bob"}},
		{name: "semicolons", in: "Alice; Bob", want: []string{"Alice", "Bob"}},
		{name: "mixed with empties", in: "Alice, Bob ; , Carol", want: []string{"Alice", "Bob", "Carol"}},
		{name: "single author", in: "Alice", want: []string{"Alice"}},
		{name: "empty string", in: "", want: []string{}},
		{name: "only delimiters", in: ",;,", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitAuthors(tt.in))
		})
	}
}

func TestNormalize_NilAuthors(t *testing.T) {
	got := Normalize(types.PaperFields{Title: "t"})
	assert.NotNil(t, got.Authors)
	assert.Empty(t, got.Authors)
}

func TestNewPaper(t *testing.T) {
	fields := types.PaperFields{Title: "T", Abstract: "A", DOI: "d", Journal: "J", Date: "2024"}

	p1 := NewPaper(fields)
	p2 := NewPaper(fields)

	assert.NotEmpty(t, p1.ID)
	assert.NotEqual(t, p1.ID, p2.ID)
	assert.Equal(t, "T", p1.Title)
	assert.Equal(t, []string{}, p1.Authors)
	assert.Equal(t, "A", p1.Abstract)
	assert.Empty(t, p1.Notes)
	assert.Empty(t, p1.TranslatedTitle)
}
