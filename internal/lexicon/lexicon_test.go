// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexicon

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	lex, err := Default()
	require.NoError(t, err)

	tests := []struct {
		name string
		fn   func(string) bool
		word string
		want bool
	}{
		{"male pronoun", lex.IsMalePronoun, "He", true},
		{"female pronoun", lex.IsFemalePronoun, "hers", true},
		{"male pronoun rejects she", lex.IsMalePronoun, "she", false},
		{"plural pronoun", lex.IsPluralPronoun, "They", true},
		{"reflexive", lex.IsReflexive, "himself", true},
		{"reflexive capitalised", lex.IsReflexive, "Herself", true},
		{"non-it pronoun", lex.IsNonItPronoun, "them", true},
		{"it is allowed", lex.IsNonItPronoun, "it", false},
		{"male noun", lex.IsMaleNoun, "chairman", true},
		{"probable male noun", lex.IsMaleNoun, "surgeon", true},
		{"female noun", lex.IsFemaleNoun, "woman", true},
		{"probable female noun", lex.IsFemaleNoun, "nurse", true},
		{"male name", lex.IsMaleName, "John", true},
		{"names are case-sensitive", lex.IsMaleName, "john", false},
		{"female name", lex.IsFemaleName, "Mary", true},
		{"person name", lex.IsPersonName, "Mary", true},
		{"not a name", lex.IsPersonName, "France", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.fn(tc.word))
		})
	}
}

func TestWithNames(t *testing.T) {
	lex, err := Default()
	require.NoError(t, err)

	dir := t.TempDir()
	male := filepath.Join(dir, "male.txt")
	require.NoError(t, os.WriteFile(male, []byte("# NLTK names corpus\nZebulon\n\n  Quincy  \n"), 0o644))

	merged, err := lex.WithNames(male, "")
	require.NoError(t, err)

	assert.True(t, merged.IsMaleName("Zebulon"))
	assert.True(t, merged.IsMaleName("Quincy"))
	assert.True(t, merged.IsMaleName("John"), "seed names kept")
	assert.False(t, lex.IsMaleName("Zebulon"), "original lexicon unchanged")
	assert.False(t, merged.IsMaleName("# NLTK names corpus"))
}

func TestWithNamesMissingFile(t *testing.T) {
	lex, err := Default()
	require.NoError(t, err)

	_, err = lex.WithNames("", filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	data := "male_pronouns: [he]\nreflexives: [himself]\nmale_names: [Ivo]\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	lex, err := Load(path)
	require.NoError(t, err)
	assert.True(t, lex.IsMalePronoun("he"))
	assert.True(t, lex.IsMaleName("Ivo"))
	assert.False(t, lex.IsFemalePronoun("she"))
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("male_pronouns: [he\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestFoldConcurrent(t *testing.T) {
	words := map[string]string{"He": "he", "ÉCOLE": "école", "Themselves": "themselves", "it": "it"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				for in, want := range words {
					if got := Fold(in); got != want {
						t.Errorf("Fold(%q) = %q, want %q", in, got, want)
					}
				}
			}
		}()
	}
	wg.Wait()
}
