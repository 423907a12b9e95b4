// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package syntax

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/coref-engine/internal/tree"
)

// Treebank is a Parser that looks sentences up in a set of pre-computed
// parses. It is used offline and in tests; unknown sentences fail with
// ErrNoParse.
type Treebank struct {
	parses map[string]string
}

// NewTreebank builds a treebank from sentence → bracketed tree pairs. Every
// tree is validated up front.
func NewTreebank(parses map[string]string) (*Treebank, error) {
	tb := &Treebank{parses: make(map[string]string, len(parses))}
	for sentence, bracketed := range parses {
		if _, err := tree.Parse(bracketed); err != nil {
			return nil, fmt.Errorf("treebank entry %q: %w", sentence, err)
		}
		tb.parses[normalizeSentence(sentence)] = bracketed
	}
	return tb, nil
}

// LoadTreebank reads a treebank file. Files ending in .yaml or .yml hold a
// sentence → tree map; any other file holds "sentence<TAB>tree" lines, with
// blank lines and # comments ignored.
func LoadTreebank(path string) (*Treebank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening treebank: %w", err)
	}
	defer f.Close()

	var parses map[string]string
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(f).Decode(&parses); err != nil {
			return nil, fmt.Errorf("decoding treebank %s: %w", path, err)
		}
	default:
		parses, err = readTabbed(f)
		if err != nil {
			return nil, fmt.Errorf("reading treebank %s: %w", path, err)
		}
	}
	return NewTreebank(parses)
}

func readTabbed(r io.Reader) (map[string]string, error) {
	parses := make(map[string]string)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sentence, bracketed, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("line %d: missing tab between sentence and tree", n)
		}
		parses[sentence] = bracketed
	}
	return parses, sc.Err()
}

// Parse returns a fresh tree for the sentence so no two sentences share
// nodes, even when the same sentence occurs twice.
func (tb *Treebank) Parse(_ context.Context, sentence string) (*tree.Tree, error) {
	bracketed, ok := tb.parses[normalizeSentence(sentence)]
	if !ok {
		return nil, fmt.Errorf("%w: %q not in treebank", ErrNoParse, sentence)
	}
	return tree.Parse(bracketed)
}

// Len returns the number of sentences in the treebank.
func (tb *Treebank) Len() int { return len(tb.parses) }

func normalizeSentence(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
