// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library persists the paper collection and tracks which papers
// are selected for batch operations. The collection is one ordered JSON
// blob: every mutation rewrites the whole file (write-through), so the
// on-disk state always matches memory.
package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pdiddy/paperdesk/pkg/types"
)

const papersFile = "papers.json"

// ErrNotFound reports an id with no matching paper in the store.
var ErrNotFound = errors.New("paper not found")

// Store is the ordered paper collection with write-through persistence.
type Store struct {
	path   string
	papers []types.Paper
}

// Open loads the persisted collection from dir/papers.json. A missing
// file is not an error; the collection starts empty.
func Open(dir string) (*Store, error) {
	s := &Store{path: filepath.Join(dir, papersFile)}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading library %s: %w", s.path, err)
	}
	if err := json.Unmarshal(data, &s.papers); err != nil {
		return nil, fmt.Errorf("parsing library %s: %w", s.path, err)
	}
	return s, nil
}

// Path returns the location of the persisted collection.
func (s *Store) Path() string { return s.path }

// Len returns the number of papers in the collection.
func (s *Store) Len() int { return len(s.papers) }

// List returns a copy of the collection in its stored order.
func (s *Store) List() []types.Paper {
	out := make([]types.Paper, len(s.papers))
	copy(out, s.papers)
	return out
}

// Get returns the paper with the given id.
func (s *Store) Get(id string) (types.Paper, error) {
	for _, p := range s.papers {
		if p.ID == id {
			return p, nil
		}
	}
	return types.Paper{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Add appends papers to the end of the collection, in the given order,
// and persists.
func (s *Store) Add(papers ...types.Paper) error {
	s.papers = append(s.papers, papers...)
	return s.save()
}

// Update applies patch to the paper with the given id, leaving order and
// all other papers untouched, and persists.
func (s *Store) Update(id string, patch func(*types.Paper)) error {
	for i := range s.papers {
		if s.papers[i].ID == id {
			patch(&s.papers[i])
			return s.save()
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Delete removes the paper with the given id and persists.
func (s *Store) Delete(id string) error {
	for i := range s.papers {
		if s.papers[i].ID == id {
			s.papers = append(s.papers[:i], s.papers[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Replace swaps in a whole new collection and persists.
func (s *Store) Replace(papers []types.Paper) error {
	s.papers = papers
	return s.save()
}

// ModTime returns the last modification time of the persisted blob, or
// the zero time when nothing has been written yet.
func (s *Store) ModTime() time.Time {
	info, err := os.Stat(s.path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

// save writes the full collection as JSON via a temp file and rename, so
// a crash mid-write never leaves a truncated library behind.
func (s *Store) save() error {
	papers := s.papers
	if papers == nil {
		papers = []types.Paper{}
	}
	data, err := json.MarshalIndent(papers, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding library: %w", err)
	}
	return writeFileAtomic(s.path, data)
}

// writeFileAtomic writes data to path using a temp file in the same
// directory and an atomic rename.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".library-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", path, writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
