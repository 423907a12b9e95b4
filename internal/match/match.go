// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package match decides whether a mention corefers with an earlier candidate.
// Each Strategy is a stateless predicate over one (mention, candidate) pair;
// strategies are tried in a fixed priority order set by Default.
//
// Strategies decline rather than guess: a missing feature (no head noun, no
// sense in the semantic network, a tagging failure) is a non-match, never an
// error.
package match

import (
	"github.com/pdiddy/coref-engine/internal/lexicon"
	"github.com/pdiddy/coref-engine/internal/mention"
	"github.com/pdiddy/coref-engine/internal/syntax"
	"github.com/pdiddy/coref-engine/internal/tree"
)

// Strategy names, as reported on resolved pairs.
const (
	NameReflexive       = "reflexive"
	NamePronoun         = "pronoun"
	NameRefDeterminer   = "referential-determiner"
	NameOneSubstitution = "one-substitution"
)

// Strategy is one way of recognising an anaphor/antecedent pair. sents are
// the document's sentence trees, indexed by TreeI-1. local is true when both
// mentions are in the same sentence.
type Strategy interface {
	Name() string
	Match(m, c *mention.Mention, sents []*tree.Tree, local bool) bool
}

// Semantic answers hypernym queries for the first sense of a noun. Paths
// run from a root concept down to the sense.
type Semantic interface {
	HypernymPaths(word string) ([][]string, error)
}

// Deps are the shared, read-only resources handed to every strategy.
// Tagger, Chunker and Semantic may be nil; the checks that need them then
// fall back to parse-tree tags or decline.
type Deps struct {
	Lexicon  *lexicon.Lexicon
	Tagger   syntax.Tagger
	Chunker  syntax.Chunker
	Semantic Semantic
}

// Default returns the strategies in priority order: Reflexive, Pronoun,
// Referential-Determiner, One-Substitution.
func Default(d Deps) []Strategy {
	return []Strategy{
		&Reflexive{deps: d},
		&Pronoun{deps: d},
		&RefDeterminer{},
		&OneSubstitution{},
	}
}

// tags returns the part-of-speech tags of the mention's tokens, from the
// tagger when one is configured and from the parse tree otherwise.
func (d Deps) tags(m *mention.Mention) []string {
	if d.Tagger != nil {
		tagged, err := d.Tagger.Tag(m.Leaves)
		if err != nil {
			return nil
		}
		out := make([]string, len(tagged))
		for i, t := range tagged {
			out[i] = t.Tag
		}
		return out
	}
	var out []string
	for _, p := range m.Tree.Preterminals() {
		out = append(out, p.Tag)
	}
	return out
}

// allProper reports whether every token of m is tagged NNP.
func (d Deps) allProper(m *mention.Mention) bool {
	tags := d.tags(m)
	if len(tags) == 0 {
		return false
	}
	for _, t := range tags {
		if t != "NNP" {
			return false
		}
	}
	return true
}
