// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package review generates an AI literature review over the selected
// papers. The result is display-only and is never persisted.
package review

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/paperdesk/internal/ai"
	"github.com/pdiddy/paperdesk/internal/library"
	"github.com/pdiddy/paperdesk/pkg/types"
)

// Run sends one summarization call over the selected papers, taken in
// collection order, and returns the review prose.
func Run(ctx context.Context, c ai.Caller, store *library.Store, sel *library.Selection, w io.Writer) (string, error) {
	var selected []types.Paper
	for _, p := range store.List() {
		if sel.Has(p.ID) {
			selected = append(selected, p)
		}
	}
	if len(selected) == 0 {
		return "", fmt.Errorf("no papers selected for review")
	}

	fmt.Fprintf(w, "generating review over %d paper(s)\n", len(selected))
	return ai.Summarize(ctx, c, selected)
}
