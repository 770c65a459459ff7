// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paperdesk/internal/library"
	"github.com/pdiddy/paperdesk/pkg/types"
)

// scriptedCaller answers each call in sequence, failing at failAt (1-based).
type scriptedCaller struct {
	calls  int
	failAt int
}

func (c *scriptedCaller) Call(_ context.Context, _, userPrompt string) (string, error) {
	c.calls++
	if c.failAt > 0 && c.calls == c.failAt {
		return "", fmt.Errorf("model unavailable")
	}
	return fmt.Sprintf(`{"translatedTitle":"译文 %d","translatedAbstract":"摘要 %d"}`, c.calls, c.calls), nil
}

func newLibrary(t *testing.T) (string, *library.Store) {
	t.Helper()
	dir := t.TempDir()
	store, err := library.Open(dir)
	require.NoError(t, err)
	require.NoError(t, store.Add(
		types.Paper{ID: "a", Title: "First"},
		types.Paper{ID: "b", Title: "Second"},
		types.Paper{ID: "c", Title: "Third"},
	))
	return dir, store
}

func TestBatch_TranslatesInCollectionOrder(t *testing.T) {
	dir, store := newLibrary(t)

	sel := library.NewSelection()
	// Toggle out of collection order; the batch still runs a, then c.
	sel.Toggle("c")
	sel.Toggle("a")

	c := &scriptedCaller{}
	var progress bytes.Buffer
	n, err := Batch(context.Background(), c, store, sel, &progress)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	out := progress.String()
	assert.Contains(t, out, "translating (1/2): First")
	assert.Contains(t, out, "translating (2/2): Third")
	assert.Less(t, strings.Index(out, "First"), strings.Index(out, "Third"))

	// First call translated a, second translated c; b is untouched.
	reopened, err := library.Open(dir)
	require.NoError(t, err)
	papers := reopened.List()
	assert.Equal(t, "译文 1", papers[0].TranslatedTitle)
	assert.Empty(t, papers[1].TranslatedTitle)
	assert.Equal(t, "译文 2", papers[2].TranslatedTitle)
	assert.Equal(t, "摘要 2", papers[2].TranslatedAbstract)
}

func TestBatch_FailureDiscardsAllProgress(t *testing.T) {
	dir, store := newLibrary(t)
	before, err := json.Marshal(store.List())
	require.NoError(t, err)

	sel := library.NewSelection()
	sel.Toggle("a")
	sel.Toggle("b")
	sel.Toggle("c")

	c := &scriptedCaller{failAt: 2}
	var progress bytes.Buffer
	_, err = Batch(context.Background(), c, store, sel, &progress)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `translating "Second"`)

	// The third paper was never attempted.
	assert.Equal(t, 2, c.calls)
	assert.NotContains(t, progress.String(), "3/3")

	// The first paper's finished translation is gone too: nothing was
	// persisted and the in-memory collection is unchanged.
	after, err := json.Marshal(store.List())
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))

	reopened, err := library.Open(dir)
	require.NoError(t, err)
	for _, p := range reopened.List() {
		assert.Empty(t, p.TranslatedTitle)
		assert.Empty(t, p.TranslatedAbstract)
	}
}

func TestBatch_EmptySelection(t *testing.T) {
	_, store := newLibrary(t)

	var progress bytes.Buffer
	_, err := Batch(context.Background(), &scriptedCaller{}, store, library.NewSelection(), &progress)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no papers selected")
	assert.Empty(t, progress.String())
}

func TestBatch_SelectionOfMissingIDs(t *testing.T) {
	_, store := newLibrary(t)

	sel := library.NewSelection()
	sel.Toggle("ghost")

	_, err := Batch(context.Background(), &scriptedCaller{}, store, sel, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no papers selected")
}
