// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"strings"

	"github.com/pdiddy/paperdesk/pkg/types"
)

// Filter returns the papers whose title, any author, or journal contains
// query, case-insensitively, preserving collection order. An empty query
// returns all papers. Filtering affects only what is visible; it never
// changes the selection.
func Filter(papers []types.Paper, query string) []types.Paper {
	if query == "" {
		return papers
	}
	q := strings.ToLower(query)

	var out []types.Paper
	for _, p := range papers {
		if matches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p types.Paper, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	for _, a := range p.Authors {
		if strings.Contains(strings.ToLower(a), q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(p.Journal), q)
}

// IDs returns the ids of papers in order, for feeding SelectAll.
func IDs(papers []types.Paper) []string {
	out := make([]string, len(papers))
	for i, p := range papers {
		out[i] = p.ID
	}
	return out
}
