// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/coref-engine/pkg/types"
)

var sampleResult = types.Result{
	Sentences: []string{"John hurt himself."},
	Mentions: []types.MentionRecord{
		{Sentence: 1, Index: 1, Text: "John"},
		{Sentence: 1, Index: 2, Text: "himself"},
	},
	Pairs: []types.PairRecord{{
		Mention:    types.MentionRecord{Sentence: 1, Index: 2, Text: "himself"},
		Antecedent: types.MentionRecord{Sentence: 1, Index: 1, Text: "John"},
		Local:      true,
		Strategies: []string{"reflexive"},
	}},
}

func TestWriteRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeRecords(&buf, formatJSON, sampleResult))
	var fromJSON types.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	assert.Equal(t, sampleResult, fromJSON)

	buf.Reset()
	require.NoError(t, writeRecords(&buf, formatYAML, sampleResult))
	assert.Contains(t, buf.String(), "strategies:\n")
	var fromYAML types.Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, sampleResult.Pairs, fromYAML.Pairs)

	assert.Error(t, writeRecords(&buf, "xml", sampleResult))
}

func TestWritePairTable(t *testing.T) {
	var buf bytes.Buffer
	writePairTable(&buf, sampleResult)
	out := buf.String()
	assert.Contains(t, out, "s1:2 himself")
	assert.Contains(t, out, "s1:1 John")
	assert.Contains(t, out, "reflexive")
	assert.Contains(t, out, "1 pairs, 2 mentions, 1 sentences")

	buf.Reset()
	writePairTable(&buf, types.Result{})
	assert.Equal(t, "No coreference pairs found.\n", buf.String())
}

func TestWriteMentionTable(t *testing.T) {
	var buf bytes.Buffer
	writeMentionTable(&buf, sampleResult)
	assert.Contains(t, buf.String(), "himself")
	assert.Contains(t, buf.String(), "2 mentions")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "a long ...", truncate("a long mention text", 10))
	assert.Equal(t, "Zoë", truncate("Zoë", 3))

	got := truncate("the café in Zürich", 8)
	assert.Equal(t, "the c...", got)
	got = truncate("Ærøskøbing ferry", 6)
	assert.Equal(t, "Ærø...", got)
	assert.True(t, utf8.ValidString(got))
}

func TestReadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("from file"), 0o644))

	got, err := readInput([]string{path}, strings.NewReader("unused"))
	require.NoError(t, err)
	assert.Equal(t, "from file", got)

	got, err = readInput(nil, strings.NewReader("from stdin"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin", got)

	got, err = readInput([]string{"-"}, strings.NewReader("dash"))
	require.NoError(t, err)
	assert.Equal(t, "dash", got)

	_, err = readInput([]string{filepath.Join(t.TempDir(), "missing.txt")}, nil)
	assert.Error(t, err)
}

func TestBuildParserErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     types.ParserConfig
		wantMsg string
	}{
		{name: "treebank without path", cfg: types.ParserConfig{Backend: types.ParserTreebank}, wantMsg: "requires --treebank"},
		{name: "unknown backend", cfg: types.ParserConfig{Backend: "stanza"}, wantMsg: "unknown parser backend"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := buildParser(tc.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestBuildParserCoreNLP(t *testing.T) {
	p, err := buildParser(types.ParserConfig{Backend: types.ParserCoreNLP, CoreNLPURL: "http://localhost:9000"})
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestBuildLexiconWithNames(t *testing.T) {
	names := filepath.Join(t.TempDir(), "male.txt")
	require.NoError(t, os.WriteFile(names, []byte("# extra\nZebedee\n"), 0o644))

	lex, err := buildLexicon(types.LexiconConfig{MaleNames: names})
	require.NoError(t, err)
	assert.True(t, lex.IsMaleName("Zebedee"))
	assert.True(t, lex.IsMaleName("John"))
}

func TestResolveCommand(t *testing.T) {
	dir := t.TempDir()
	treebank := filepath.Join(dir, "treebank.yaml")
	require.NoError(t, os.WriteFile(treebank, []byte(
		`"John hurt himself.": "(ROOT (S (NP (NNP John)) (VP (VBD hurt) (NP (PRP himself))) (. .)))"`+"\n"), 0o644))
	doc := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(doc, []byte("John hurt himself.\n"), 0o644))

	viper.Set("parser.backend", "treebank")
	viper.Set("parser.treebank_path", treebank)
	viper.Set("wordnet.path", filepath.Join(dir, "wordnet.db"))
	t.Cleanup(viper.Reset)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"resolve", doc, "--format", "json"})
	t.Cleanup(func() { rootCmd.SetOut(nil); rootCmd.SetArgs(nil) })
	require.NoError(t, rootCmd.Execute())

	var res types.Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	require.Len(t, res.Pairs, 1)
	assert.Equal(t, "himself", res.Pairs[0].Mention.Text)
	assert.Equal(t, "John", res.Pairs[0].Antecedent.Text)
	assert.Equal(t, []string{"reflexive"}, res.Pairs[0].Strategies)
}
