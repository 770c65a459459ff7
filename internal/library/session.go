// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

// Session bundles the store with the selection state for one run, so
// mutations that must keep the two consistent have a single home.
type Session struct {
	Store     *Store
	Selection *Selection
}

// NewSession returns a session over store with an empty selection.
func NewSession(store *Store) *Session {
	return &Session{Store: store, Selection: NewSelection()}
}

// Delete removes the paper from the store and retracts its id from the
// selection, so a later select-all over the remaining papers cannot
// resurrect it.
func (s *Session) Delete(id string) error {
	if err := s.Store.Delete(id); err != nil {
		return err
	}
	s.Selection.Retract(id)
	return nil
}
