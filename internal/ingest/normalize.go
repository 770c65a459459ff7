// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"strings"

	"github.com/google/uuid"

	"github.com/pdiddy/paperdesk/pkg/types"
)

// Row is one spreadsheet row keyed by column label.
type Row map[string]string

// columnLabels maps each metadata field to its candidate column labels,
// localized label first. The first non-empty cell wins.
var columnLabels = map[string][]string{
	"title":    {"标题", "Title"},
	"authors":  {"作者", "Authors"},
	"abstract": {"摘要", "Abstract"},
	"doi":      {"DOI", "doi"},
	"journal":  {"期刊名", "Journal"},
	"date":     {"时间", "Date"},
}

// NormalizeRow maps a spreadsheet row into the canonical metadata shape.
// Missing or empty cells become "" (or an empty author list); a row can
// never fail to normalize.
func NormalizeRow(row Row) types.PaperFields {
	return Normalize(types.PaperFields{
		Title:    cell(row, "title"),
		Authors:  SplitAuthors(cell(row, "authors")),
		Abstract: cell(row, "abstract"),
		DOI:      cell(row, "doi"),
		Journal:  cell(row, "journal"),
		Date:     cell(row, "date"),
	})
}

// Normalize fills defaults so that all six base fields are present:
// strings stay as-is and a nil author list becomes an empty one.
func Normalize(f types.PaperFields) types.PaperFields {
	if f.Authors == nil {
		f.Authors = []string{}
	}
	return f
}

func cell(row Row, field string) string {
	for _, label := range columnLabels[field] {
		if v := strings.TrimSpace(row[label]); v != "" {
			return v
		}
	}
	return ""
}

// SplitAuthors splits a delimited author string on commas and semicolons,
// trims each segment, and drops empties, preserving source order.
func SplitAuthors(s string) []string {
	out := []string{}
	for _, part := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		if name := strings.TrimSpace(part); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// NewPaper mints a library Paper from normalized metadata. The id is
// assigned here, exactly once, and is never reused even after deletion.
func NewPaper(f types.PaperFields) types.Paper {
	f = Normalize(f)
	return types.Paper{
		ID:       uuid.NewString(),
		Title:    f.Title,
		Authors:  f.Authors,
		Abstract: f.Abstract,
		DOI:      f.DOI,
		Journal:  f.Journal,
		Date:     f.Date,
		Notes:    "",
	}
}
