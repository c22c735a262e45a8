// Package storage maintains an ephemeral SQLite full-text index over a list file.
//
// The list file is the source of truth; the index is rebuilt from it before
// each query and can be deleted at any time.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/matsen/apa/internal/reflist"
	_ "modernc.org/sqlite"
)

// DefaultSearchLimit caps search results when no limit is given.
const DefaultSearchLimit = 50

// Entry is one indexed list line.
type Entry struct {
	Ordinal  int    `json:"ordinal"`
	Text     string `json:"text"`
	Initials string `json:"initials,omitempty"`
}

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS entries (
			ordinal INTEGER PRIMARY KEY,
			text TEXT NOT NULL,
			initials TEXT NOT NULL DEFAULT ''
		);

		-- Standalone FTS table keyed by ordinal via rowid
		CREATE VIRTUAL TABLE IF NOT EXISTS entries_fts USING fts5(text);
	`
	_, err := db.Exec(schema)
	return err
}

// RebuildFromList clears the index and reloads it from a list file.
func (d *DB) RebuildFromList(path string) (int, error) {
	lines, err := reflist.ReadEntries(path)
	if err != nil {
		return 0, fmt.Errorf("reading list: %w", err)
	}
	return d.RebuildFromLines(lines)
}

// RebuildFromLines clears the index and loads lines, numbered from 1.
func (d *DB) RebuildFromLines(lines []string) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM entries"); err != nil {
		return 0, fmt.Errorf("clearing entries table: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM entries_fts"); err != nil {
		return 0, fmt.Errorf("clearing entries_fts table: %w", err)
	}

	entryStmt, err := tx.Prepare("INSERT INTO entries (ordinal, text, initials) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("preparing entry insert: %w", err)
	}
	defer entryStmt.Close()

	ftsStmt, err := tx.Prepare("INSERT INTO entries_fts (rowid, text) VALUES (?, ?)")
	if err != nil {
		return 0, fmt.Errorf("preparing fts insert: %w", err)
	}
	defer ftsStmt.Close()

	for i, line := range lines {
		ordinal := i + 1
		if _, err := entryStmt.Exec(ordinal, line, reflist.InitialsKey(line)); err != nil {
			return 0, fmt.Errorf("inserting entry %d: %w", ordinal, err)
		}
		if _, err := ftsStmt.Exec(ordinal, line); err != nil {
			return 0, fmt.Errorf("inserting fts for entry %d: %w", ordinal, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing index: %w", err)
	}
	return len(lines), nil
}

// Search returns entries matching every term of query, in list order.
func (d *DB) Search(query string, limit int) ([]Entry, error) {
	ftsQuery := prepareFTSQuery(query)
	if ftsQuery == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	rows, err := d.db.Query(`
		SELECT ordinal, text, initials FROM entries
		WHERE ordinal IN (SELECT rowid FROM entries_fts WHERE entries_fts MATCH ?)
		ORDER BY ordinal
		LIMIT ?`, ftsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Count returns the number of indexed entries.
func (d *DB) Count() (int, error) {
	var count int
	if err := d.db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting entries: %w", err)
	}
	return count, nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Ordinal, &e.Text, &e.Initials); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}
	return entries, nil
}

// prepareFTSQuery turns free text into an FTS5 query of quoted prefix terms,
// so punctuation in citations (periods, colons, parentheses) is never parsed
// as query syntax.
func prepareFTSQuery(query string) string {
	var terms []string
	for _, part := range strings.Fields(query) {
		if !strings.ContainsFunc(part, isWordRune) {
			continue // Pure punctuation tokenizes to an empty phrase
		}
		escaped := strings.ReplaceAll(part, "\"", "\"\"")
		terms = append(terms, "\""+escaped+"\"*")
	}
	return strings.Join(terms, " ")
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
