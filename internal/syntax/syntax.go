// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package syntax supplies the linguistic analyses the resolver consumes but
// does not compute itself: sentence segmentation, constituency parsing,
// part-of-speech tagging and named-entity chunking. Each analysis is an
// interface so backends can be swapped and faked in tests.
package syntax

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pdiddy/coref-engine/internal/tree"
)

// ErrNoParse is returned when a parser produces no tree for a sentence.
var ErrNoParse = errors.New("no parse produced")

// Segmenter splits raw text into sentences, in order.
type Segmenter interface {
	Segment(text string) ([]string, error)
}

// Parser produces exactly one constituency tree for a sentence.
type Parser interface {
	Parse(ctx context.Context, sentence string) (*tree.Tree, error)
}

// TaggedToken is a token with its Penn Treebank part-of-speech tag.
type TaggedToken struct {
	Text string
	Tag  string
}

// Tagger assigns part-of-speech tags to pre-tokenised text.
type Tagger interface {
	Tag(tokens []string) ([]TaggedToken, error)
}

// Entity is a named-entity chunk such as ("John Smith", "PERSON").
type Entity struct {
	Text  string
	Label string
}

// PersonLabel is the entity label for people.
const PersonLabel = "PERSON"

// Chunker finds named entities in pre-tokenised text.
type Chunker interface {
	Chunk(tokens []string) ([]Entity, error)
}

// Provider bundles the analyses needed to turn a document into parse trees
// and to answer tagging/chunking queries from the matching strategies.
type Provider struct {
	Segmenter Segmenter
	Parser    Parser
	Tagger    Tagger
	Chunker   Chunker

	// Timeout bounds each sentence parse when positive.
	Timeout time.Duration
}

// ParseDocument segments text and parses every sentence. The first parse
// failure aborts the document; there is no partial result.
func (p *Provider) ParseDocument(ctx context.Context, text string) ([]string, []*tree.Tree, error) {
	sentences, err := p.Segmenter.Segment(text)
	if err != nil {
		return nil, nil, fmt.Errorf("segmenting document: %w", err)
	}

	trees := make([]*tree.Tree, 0, len(sentences))
	for i, s := range sentences {
		t, err := p.parseOne(ctx, s)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing sentence %d: %w", i+1, err)
		}
		trees = append(trees, t)
	}
	return sentences, trees, nil
}

func (p *Provider) parseOne(ctx context.Context, sentence string) (*tree.Tree, error) {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}
	t, err := p.Parser.Parse(ctx, sentence)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrNoParse
	}
	return t, nil
}
