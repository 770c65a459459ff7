// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search maintains a SQLite full-text index over the paper
// library. The JSON blob stays the source of truth; the index is a
// rebuildable cache under dataDir/index/.
package search

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/paperdesk/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "papers.db"
)

// Index wraps the SQLite database holding the full-text index.
type Index struct {
	db *sql.DB
}

// Open opens or creates the index database under dataDir/index/ and
// ensures the schema exists.
func Open(dataDir string) (*Index, error) {
	dir := filepath.Join(dataDir, indexDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening index database: %w", err)
	}

	ix := &Index{db: db}
	if err := ix.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return ix, nil
}

// Close releases the database connection.
func (ix *Index) Close() error {
	return ix.db.Close()
}

func (ix *Index) createSchema() error {
	statements := []string{
		`CREATE VIRTUAL TABLE IF NOT EXISTS papers_fts USING fts5(
			id UNINDEXED,
			title,
			authors,
			abstract,
			notes,
			translated_title,
			translated_abstract
		)`,
		`CREATE TABLE IF NOT EXISTS index_status (
			key TEXT PRIMARY KEY,
			value TEXT
		)`,
	}
	for _, stmt := range statements {
		if _, err := ix.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// sourceModKey records the library blob's modification time at the last
// rebuild, so a stale index can be detected cheaply.
const sourceModKey = "source_mod_time"

// Stale reports whether the library has changed since the last rebuild.
func (ix *Index) Stale(ctx context.Context, sourceMod time.Time) (bool, error) {
	var stored string
	err := ix.db.QueryRowContext(ctx,
		`SELECT value FROM index_status WHERE key = ?`, sourceModKey,
	).Scan(&stored)
	if err == sql.ErrNoRows {
		return true, nil
	}
	if err != nil {
		return true, fmt.Errorf("reading index status: %w", err)
	}
	return stored != sourceMod.UTC().Format(time.RFC3339Nano), nil
}

// Rebuild replaces the index contents with the given papers and records
// the library blob's modification time.
func (ix *Index) Rebuild(ctx context.Context, papers []types.Paper, sourceMod time.Time) error {
	tx, err := ix.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM papers_fts`); err != nil {
		return fmt.Errorf("clearing index: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO papers_fts (id, title, authors, abstract, notes, translated_title, translated_abstract)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range papers {
		_, err := stmt.ExecContext(ctx,
			p.ID, p.Title, strings.Join(p.Authors, ", "), p.Abstract,
			p.Notes, p.TranslatedTitle, p.TranslatedAbstract,
		)
		if err != nil {
			return fmt.Errorf("indexing paper %s: %w", p.ID, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO index_status (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		sourceModKey, sourceMod.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("updating index status: %w", err)
	}

	return tx.Commit()
}

// Result is one full-text search hit.
type Result struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// Search runs an FTS5 match over the index and returns hits ranked by
// relevance. The snippet highlights the best-matching column.
func (ix *Index) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := ix.db.QueryContext(ctx,
		`SELECT id, title, snippet(papers_fts, -1, '[', ']', '…', 12)
		 FROM papers_fts WHERE papers_fts MATCH ?
		 ORDER BY rank LIMIT ?`,
		query, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("executing search: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.ID, &r.Title, &r.Snippet); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
