// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wordnet

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- test helpers ---

func seededStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "wordnet", "wordnet.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	tx, err := DefaultTaxonomy()
	require.NoError(t, err)
	_, err = s.Import(context.Background(), tx)
	require.NoError(t, err)
	return s
}

// --- taxonomy tests ---

func TestDecodeTaxonomy(t *testing.T) {
	input := `
synsets:
  entity.n.01: []
  thing.n.01: [entity.n.01]
words:
  thing: [thing.n.01]
`
	tx, err := DecodeTaxonomy(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, tx.Synsets, 2)
	assert.Equal(t, []string{"thing.n.01"}, tx.Words["thing"])
}

func TestDecodeTaxonomyRejectsDanglingReferences(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "unknown hypernym",
			input: "synsets:\n  a.n.01: [missing.n.01]\n",
		},
		{
			name:  "unknown sense",
			input: "synsets:\n  a.n.01: []\nwords:\n  a: [b.n.01]\n",
		},
		{
			name:  "word without senses",
			input: "synsets:\n  a.n.01: []\nwords:\n  a: []\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeTaxonomy(strings.NewReader(tc.input))
			assert.Error(t, err)
		})
	}
}

// --- store tests ---

func TestImportSummary(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	tx := &Taxonomy{
		Synsets: map[string][]string{
			"entity.n.01": nil,
			"dog.n.01":    {"entity.n.01"},
		},
		Words: map[string][]string{"dog": {"dog.n.01"}},
	}
	summary, err := s.Import(context.Background(), tx)
	require.NoError(t, err)
	assert.Equal(t, ImportSummary{Synsets: 2, Links: 1, Words: 1}, summary)

	// Re-import is idempotent.
	_, err = s.Import(context.Background(), tx)
	require.NoError(t, err)
	paths, err := s.HypernymPaths("dog")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"entity.n.01", "dog.n.01"}}, paths)
}

func TestCountWords(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	n, err := s.CountWords(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)

	tx, err := DefaultTaxonomy()
	require.NoError(t, err)
	_, err = s.Import(context.Background(), tx)
	require.NoError(t, err)

	n, err = s.CountWords(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(tx.Words), n)
}

func TestFirstSense(t *testing.T) {
	s := seededStore(t)

	got, err := s.FirstSense(context.Background(), "woman")
	require.NoError(t, err)
	assert.Equal(t, "woman.n.01", got)

	got, err = s.FirstSense(context.Background(), "xyzzy")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHypernymPathsMultipleInheritance(t *testing.T) {
	s := seededStore(t)

	paths, err := s.HypernymPaths("woman")
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, p := range paths {
		assert.Equal(t, "entity.n.01", p[0], "paths start at the root")
		assert.Equal(t, "woman.n.01", p[len(p)-1], "paths end at the sense")
	}
	// woman -> adult/female, person -> organism/causal_agent: 2 x 2 paths.
	assert.Len(t, paths, 4)
}

func TestHypernymPathsUnknownWord(t *testing.T) {
	s := seededStore(t)

	paths, err := s.HypernymPaths("florp")
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestIsPerson(t *testing.T) {
	s := seededStore(t)

	tests := []struct {
		word string
		want bool
	}{
		{"woman", true},
		{"doctor", true},
		{"boy", true},
		{"dog", false},
		{"car", false},
		{"idea", false},
		{"florp", false},
	}
	for _, tc := range tests {
		t.Run(tc.word, func(t *testing.T) {
			got, err := s.IsPerson(tc.word)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSenseReplacement(t *testing.T) {
	s := seededStore(t)

	tx := &Taxonomy{
		Synsets: map[string][]string{"entity.n.01": nil, "hound.n.01": {"entity.n.01"}},
		Words:   map[string][]string{"dog": {"hound.n.01"}},
	}
	_, err := s.Import(context.Background(), tx)
	require.NoError(t, err)

	got, err := s.FirstSense(context.Background(), "dog")
	require.NoError(t, err)
	assert.Equal(t, "hound.n.01", got)
}

func TestPersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordnet.db")
	s, err := Open(path)
	require.NoError(t, err)
	tx, err := DefaultTaxonomy()
	require.NoError(t, err)
	_, err = s.Import(context.Background(), tx)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	ok, err := s2.IsPerson("man")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOnAnyPath(t *testing.T) {
	paths := [][]string{{"a", "b"}, {"c", "d"}}
	assert.True(t, OnAnyPath(paths, "d"))
	assert.False(t, OnAnyPath(paths, "e"))
	assert.False(t, OnAnyPath(nil, "a"))
}
