// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import "sort"

// Selection tracks the set of paper ids marked for batch operations.
// Membership changes only through explicit toggles, select-all, or a
// retract on delete; changing the filter never touches it.
type Selection struct {
	ids map[string]bool
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[string]bool)}
}

// Toggle flips membership of id.
func (s *Selection) Toggle(id string) {
	if s.ids[id] {
		delete(s.ids, id)
	} else {
		s.ids[id] = true
	}
}

// Has reports whether id is selected.
func (s *Selection) Has(id string) bool { return s.ids[id] }

// Len returns the number of selected ids.
func (s *Selection) Len() int { return len(s.ids) }

// IDs returns the selected ids in sorted order.
func (s *Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// SelectAll sets the selection to exactly visibleIDs. If the selection
// already equals that set it clears instead, giving toggle-all semantics
// keyed to the currently visible subset. A selected paper hidden by the
// filter is dropped only because it is not in visibleIDs; it is never
// cleared by a filter change alone.
func (s *Selection) SelectAll(visibleIDs []string) {
	if s.equals(visibleIDs) {
		s.ids = make(map[string]bool)
		return
	}
	s.ids = make(map[string]bool, len(visibleIDs))
	for _, id := range visibleIDs {
		s.ids[id] = true
	}
}

// Retract removes a single id without affecting the rest. Used when a
// paper is deleted from the store.
func (s *Selection) Retract(id string) {
	delete(s.ids, id)
}

func (s *Selection) equals(ids []string) bool {
	if len(s.ids) != len(ids) {
		return false
	}
	for _, id := range ids {
		if !s.ids[id] {
			return false
		}
	}
	return true
}
