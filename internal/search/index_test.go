// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paperdesk/pkg/types"
)

func indexedPapers() []types.Paper {
	return []types.Paper{
		{
			ID:       "p1",
			Title:    "Attention Is All You Need",
			Authors:  []string{"Vaswani", "Shazeer"},
			Abstract: "We propose the Transformer, based solely on attention mechanisms.",
		},
		{
			ID:      "p2",
			Title:   "Deep Residual Learning",
			Authors: []string{"He", "Zhang"},
			Notes:   "foundational resnet paper",
		},
		{
			ID:              "p3",
			Title:           "BERT",
			TranslatedTitle: "BERT 预训练语言模型",
		},
	}
}

func TestIndex_RebuildAndSearch(t *testing.T) {
	ix, err := Open(t.TempDir())
	require.NoError(t, err)
	defer ix.Close()

	ctx := context.Background()
	mod := time.Now()
	require.NoError(t, ix.Rebuild(ctx, indexedPapers(), mod))

	results, err := ix.Search(ctx, "attention", 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "p1", results[0].ID)
	assert.Equal(t, "Attention Is All You Need", results[0].Title)
	assert.Contains(t, results[0].Snippet, "[")

	// Notes are searchable.
	results, err = ix.Search(ctx, "resnet", 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "p2", results[0].ID)

	// Translated fields are searchable.
	results, err = ix.Search(ctx, "预训练语言模型", 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "p3", results[0].ID)
}

func TestIndex_SearchNoResults(t *testing.T) {
	ix, err := Open(t.TempDir())
	require.NoError(t, err)
	defer ix.Close()

	ctx := context.Background()
	require.NoError(t, ix.Rebuild(ctx, indexedPapers(), time.Now()))

	results, err := ix.Search(ctx, "nonexistentterm", 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestIndex_SearchLimit(t *testing.T) {
	ix, err := Open(t.TempDir())
	require.NoError(t, err)
	defer ix.Close()

	ctx := context.Background()
	papers := []types.Paper{
		{ID: "a", Title: "graph networks one"},
		{ID: "b", Title: "graph networks two"},
		{ID: "c", Title: "graph networks three"},
	}
	require.NoError(t, ix.Rebuild(ctx, papers, time.Now()))

	results, err := ix.Search(ctx, "graph", 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestIndex_RebuildReplaces(t *testing.T) {
	ix, err := Open(t.TempDir())
	require.NoError(t, err)
	defer ix.Close()

	ctx := context.Background()
	require.NoError(t, ix.Rebuild(ctx, indexedPapers(), time.Now()))
	require.NoError(t, ix.Rebuild(ctx, []types.Paper{{ID: "x", Title: "fresh start"}}, time.Now()))

	results, err := ix.Search(ctx, "attention", 0)
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = ix.Search(ctx, "fresh", 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "x", results[0].ID)
}

func TestIndex_Stale(t *testing.T) {
	dir := t.TempDir()
	ix, err := Open(dir)
	require.NoError(t, err)
	defer ix.Close()

	ctx := context.Background()
	mod := time.Now()

	// Never rebuilt: always stale.
	stale, err := ix.Stale(ctx, mod)
	require.NoError(t, err)
	assert.True(t, stale)

	require.NoError(t, ix.Rebuild(ctx, indexedPapers(), mod))

	stale, err = ix.Stale(ctx, mod)
	require.NoError(t, err)
	assert.False(t, stale)

	stale, err = ix.Stale(ctx, mod.Add(time.Second))
	require.NoError(t, err)
	assert.True(t, stale)

	// Staleness survives reopening the index.
	require.NoError(t, ix.Close())
	reopened, err := Open(dir)
	require.NoError(t, err)
	defer reopened.Close()

	stale, err = reopened.Stale(ctx, mod)
	require.NoError(t, err)
	assert.False(t, stale)
}
