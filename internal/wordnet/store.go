// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wordnet stores a noun semantic network in SQLite and answers
// hypernym-path queries over it. Paths follow WordNet conventions: each path
// runs from a root synset down to the queried synset, and only the first
// (most frequent) sense of a word is consulted.
package wordnet

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	_ "github.com/mattn/go-sqlite3"
)

// PersonSynset is the synset whose presence on a hypernym path marks a noun
// as denoting a person.
const PersonSynset = "person.n.01"

// Store manages the semantic network database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and ensures the schema exists.
// The special path ":memory:" opens a private in-memory database.
func Open(path string) (*Store, error) {
	dsn := "file::memory:?cache=private&_foreign_keys=on"
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating wordnet directory: %w", err)
		}
		dsn = path + "?_journal_mode=WAL&_foreign_keys=on"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// A second connection to :memory: would see an empty database.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS synsets (
			id TEXT PRIMARY KEY
		)`,
		`CREATE TABLE IF NOT EXISTS senses (
			word TEXT NOT NULL,
			rank INTEGER NOT NULL,
			synset_id TEXT NOT NULL REFERENCES synsets(id),
			PRIMARY KEY (word, rank)
		)`,
		`CREATE TABLE IF NOT EXISTS hypernyms (
			synset_id TEXT NOT NULL REFERENCES synsets(id),
			parent_id TEXT NOT NULL REFERENCES synsets(id),
			PRIMARY KEY (synset_id, parent_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_senses_synset ON senses(synset_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// ImportSummary holds counts from a taxonomy import.
type ImportSummary struct {
	Synsets int
	Links   int
	Words   int
}

// Import upserts a taxonomy in one transaction. A word's sense list is
// replaced as a whole; synsets and hypernym links are only ever added.
func (s *Store) Import(ctx context.Context, tx *Taxonomy) (ImportSummary, error) {
	dbtx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbtx.Rollback()

	var summary ImportSummary

	ids := sortedKeys(tx.Synsets)
	for _, id := range ids {
		if _, err := dbtx.ExecContext(ctx, `INSERT OR IGNORE INTO synsets (id) VALUES (?)`, id); err != nil {
			return ImportSummary{}, fmt.Errorf("inserting synset %s: %w", id, err)
		}
		summary.Synsets++
	}

	for _, id := range ids {
		for _, parent := range tx.Synsets[id] {
			_, err := dbtx.ExecContext(ctx,
				`INSERT OR IGNORE INTO hypernyms (synset_id, parent_id) VALUES (?, ?)`, id, parent)
			if err != nil {
				return ImportSummary{}, fmt.Errorf("linking %s to %s: %w", id, parent, err)
			}
			summary.Links++
		}
	}

	for _, word := range sortedKeys(tx.Words) {
		if _, err := dbtx.ExecContext(ctx, `DELETE FROM senses WHERE word = ?`, word); err != nil {
			return ImportSummary{}, fmt.Errorf("clearing senses of %q: %w", word, err)
		}
		for rank, synset := range tx.Words[word] {
			_, err := dbtx.ExecContext(ctx,
				`INSERT INTO senses (word, rank, synset_id) VALUES (?, ?, ?)`, word, rank, synset)
			if err != nil {
				return ImportSummary{}, fmt.Errorf("inserting sense %s of %q: %w", synset, word, err)
			}
		}
		summary.Words++
	}

	if err := dbtx.Commit(); err != nil {
		return ImportSummary{}, fmt.Errorf("committing import: %w", err)
	}
	return summary, nil
}

// CountWords returns the number of distinct words with at least one sense.
func (s *Store) CountWords(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT word) FROM senses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting words: %w", err)
	}
	return n, nil
}

// FirstSense returns the most frequent synset of word, or "" when the word
// is unknown.
func (s *Store) FirstSense(ctx context.Context, word string) (string, error) {
	var synset string
	err := s.db.QueryRowContext(ctx,
		`SELECT synset_id FROM senses WHERE word = ? ORDER BY rank LIMIT 1`, word,
	).Scan(&synset)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("looking up %q: %w", word, err)
	}
	return synset, nil
}

// HypernymPaths returns the root-to-synset paths of the first sense of word.
// An unknown word yields no paths and no error.
func (s *Store) HypernymPaths(word string) ([][]string, error) {
	return s.HypernymPathsContext(context.Background(), word)
}

// HypernymPathsContext is HypernymPaths with an explicit context.
func (s *Store) HypernymPathsContext(ctx context.Context, word string) ([][]string, error) {
	synset, err := s.FirstSense(ctx, word)
	if err != nil || synset == "" {
		return nil, err
	}
	return s.paths(ctx, synset, map[string]bool{})
}

func (s *Store) paths(ctx context.Context, synset string, onPath map[string]bool) ([][]string, error) {
	if onPath[synset] {
		return nil, fmt.Errorf("hypernym cycle through %s", synset)
	}
	parents, err := s.parents(ctx, synset)
	if err != nil {
		return nil, err
	}
	if len(parents) == 0 {
		return [][]string{{synset}}, nil
	}

	onPath[synset] = true
	defer delete(onPath, synset)

	var out [][]string
	for _, p := range parents {
		up, err := s.paths(ctx, p, onPath)
		if err != nil {
			return nil, err
		}
		for _, path := range up {
			full := make([]string, 0, len(path)+1)
			full = append(full, path...)
			out = append(out, append(full, synset))
		}
	}
	return out, nil
}

func (s *Store) parents(ctx context.Context, synset string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT parent_id FROM hypernyms WHERE synset_id = ? ORDER BY parent_id`, synset)
	if err != nil {
		return nil, fmt.Errorf("querying hypernyms of %s: %w", synset, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scanning hypernym: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// IsPerson reports whether any hypernym path of word's first sense passes
// through PersonSynset. Unknown words are not persons.
func (s *Store) IsPerson(word string) (bool, error) {
	paths, err := s.HypernymPaths(word)
	if err != nil {
		return false, err
	}
	return OnAnyPath(paths, PersonSynset), nil
}

// OnAnyPath reports whether synset occurs on any of the paths.
func OnAnyPath(paths [][]string, synset string) bool {
	for _, path := range paths {
		for _, s := range path {
			if s == synset {
				return true
			}
		}
	}
	return false
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
