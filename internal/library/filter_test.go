// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/paperdesk/pkg/types"
)

func TestFilter(t *testing.T) {
	papers := []types.Paper{
		{ID: "p1", Title: "Attention Is All You Need", Authors: []string{"Vaswani"}, Journal: "NeurIPS"},
		{ID: "p2", Title: "Deep Residual Learning", Authors: []string{"He", "Zhang"}, Journal: "CVPR"},
		{ID: "p3", Title: "BERT", Authors: []string{"Devlin"}, Journal: "NAACL"},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query returns all", query: "", want: []string{"p1", "p2", "p3"}},
		{name: "title match is case-insensitive", query: "attention", want: []string{"p1"}},
		{name: "author match", query: "zhang", want: []string{"p2"}},
		{name: "journal match", query: "naacl", want: []string{"p3"}},
		{name: "substring across papers keeps order", query: "e", want: []string{"p1", "p2", "p3"}},
		{name: "no match", query: "quantum", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(papers, tt.query)
			assert.Equal(t, tt.want, IDs(got))
		})
	}
}

func TestIDs(t *testing.T) {
	papers := []types.Paper{{ID: "b"}, {ID: "a"}}
	assert.Equal(t, []string{"b", "a"}, IDs(papers))
	assert.Equal(t, []string{}, IDs(nil))
}
