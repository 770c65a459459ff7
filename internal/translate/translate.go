// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package translate runs the per-paper translation batch over the
// selected subset of the library.
package translate

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/paperdesk/internal/ai"
	"github.com/pdiddy/paperdesk/internal/library"
	"github.com/pdiddy/paperdesk/pkg/types"
)

// Batch translates the selected papers in the order they appear in the
// collection, not the order they were selected. Calls are strictly
// sequential; a progress line is printed before each one.
//
// The first failure aborts the batch and discards every translation
// already made in memory: the store is written exactly once, after the
// whole loop has succeeded. Partial progress is intentionally never
// persisted.
func Batch(ctx context.Context, c ai.Caller, store *library.Store, sel *library.Selection, w io.Writer) (int, error) {
	papers := store.List()

	var selected []types.Paper
	for _, p := range papers {
		if sel.Has(p.ID) {
			selected = append(selected, p)
		}
	}
	if len(selected) == 0 {
		return 0, fmt.Errorf("no papers selected for translation")
	}

	updated := papers
	for i, p := range selected {
		fmt.Fprintf(w, "translating (%d/%d): %s\n", i+1, len(selected), p.Title)

		tr, err := ai.Translate(ctx, c, p)
		if err != nil {
			return 0, fmt.Errorf("translating %q: %w", p.Title, err)
		}

		for j := range updated {
			if updated[j].ID == p.ID {
				updated[j].TranslatedTitle = tr.TranslatedTitle
				updated[j].TranslatedAbstract = tr.TranslatedAbstract
				break
			}
		}
	}

	if err := store.Replace(updated); err != nil {
		return 0, fmt.Errorf("saving library: %w", err)
	}
	return len(selected), nil
}
