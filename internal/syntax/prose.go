// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package syntax

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
)

// Prose segments, tags and chunks English text with the prose models.
// It implements Segmenter, Tagger and Chunker.
type Prose struct{}

// NewProse returns a prose-backed analyser.
func NewProse() *Prose { return &Prose{} }

// Segment splits text into sentences.
func (p *Prose) Segment(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("segmenting: %w", err)
	}

	var out []string
	for _, s := range doc.Sentences() {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	return out, nil
}

// Tag re-tokenises the joined tokens and tags them. Tokens prose splits
// differently (e.g. "France.") yield more tags than inputs.
func (p *Prose) Tag(tokens []string) ([]TaggedToken, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	doc, err := prose.NewDocument(strings.Join(tokens, " "),
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("tagging: %w", err)
	}

	out := make([]TaggedToken, 0, len(tokens))
	for _, tok := range doc.Tokens() {
		out = append(out, TaggedToken{Text: tok.Text, Tag: tok.Tag})
	}
	return out, nil
}

// Chunk returns the named entities found in the tokens.
func (p *Prose) Chunk(tokens []string) ([]Entity, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	doc, err := prose.NewDocument(strings.Join(tokens, " "),
		prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("chunking: %w", err)
	}

	var out []Entity
	for _, ent := range doc.Entities() {
		out = append(out, Entity{Text: ent.Text, Label: ent.Label})
	}
	return out, nil
}
