// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"strings"

	"github.com/pdiddy/coref-engine/internal/lexicon"
	"github.com/pdiddy/coref-engine/internal/mention"
	"github.com/pdiddy/coref-engine/internal/syntax"
	"github.com/pdiddy/coref-engine/internal/tree"
	"github.com/pdiddy/coref-engine/internal/wordnet"
)

// Pronoun links a mention to a gendered candidate, a plural pronoun to a
// plural candidate, and "it" to non-person antecedents. Pronouns are never
// bound inside their own minimal clause; that is left to Reflexive.
type Pronoun struct {
	deps Deps
}

func (p *Pronoun) Name() string { return NamePronoun }

func (p *Pronoun) Match(m, c *mention.Mention, sents []*tree.Tree, local bool) bool {
	if local {
		root := sentence(sents, m.TreeI)
		if root != nil && clausemates(root, m.Tree, c.Tree) {
			return false
		}
	}
	return p.male(c) || p.female(c) || p.plural(m, c) || p.it(m, c)
}

// male and female inspect the candidate only.
func (p *Pronoun) male(c *mention.Mention) bool {
	lex := p.deps.Lexicon
	return p.gendered(c, lex.IsMalePronoun, lex.IsMaleName, lex.IsMaleNoun)
}

func (p *Pronoun) female(c *mention.Mention) bool {
	lex := p.deps.Lexicon
	return p.gendered(c, lex.IsFemalePronoun, lex.IsFemaleName, lex.IsFemaleNoun)
}

// gendered checks the candidate for a pronoun, a proper name, or a common
// noun of the wanted gender.
func (p *Pronoun) gendered(c *mention.Mention, isPronoun, isName, isNoun func(string) bool) bool {
	if isPronoun(c.First()) {
		return true
	}
	if p.deps.allProper(c) && isName(c.First()) {
		return true
	}
	for _, pt := range c.Tree.Preterminals() {
		if pt.Tag == "NN" && isNoun(pt.Word) {
			return true
		}
	}
	return false
}

func (p *Pronoun) plural(m, c *mention.Mention) bool {
	lex := p.deps.Lexicon
	if !lex.IsPluralPronoun(m.First()) {
		return false
	}
	if lex.IsPluralPronoun(c.First()) {
		return true
	}
	return headIsPlural(c)
}

// headIsPlural reports whether the candidate's first common noun is NNS.
func headIsPlural(c *mention.Mention) bool {
	for _, pt := range c.Tree.Preterminals() {
		switch pt.Tag {
		case "NNS":
			return true
		case "NN":
			return false
		}
	}
	return false
}

func (p *Pronoun) it(m, c *mention.Mention) bool {
	lex := p.deps.Lexicon
	if lexicon.Fold(m.First()) != "it" {
		return false
	}
	if lexicon.Fold(c.First()) == "it" {
		return !lex.IsNonItPronoun(c.First())
	}

	if ent, ok := p.leadingEntity(c); ok {
		return ent.Label != syntax.PersonLabel && !lex.IsPersonName(c.First())
	}

	head, ok := c.HeadNoun()
	if !ok || p.deps.Semantic == nil {
		return false
	}
	paths, err := p.deps.Semantic.HypernymPaths(head)
	if err != nil || len(paths) == 0 {
		return false
	}
	return !wordnet.OnAnyPath(paths, wordnet.PersonSynset)
}

// leadingEntity returns the named entity the candidate starts with, if any.
func (p *Pronoun) leadingEntity(c *mention.Mention) (syntax.Entity, bool) {
	if p.deps.Chunker == nil {
		return syntax.Entity{}, false
	}
	ents, err := p.deps.Chunker.Chunk(c.Leaves)
	if err != nil {
		return syntax.Entity{}, false
	}
	for _, e := range ents {
		fields := strings.Fields(e.Text)
		if len(fields) > 0 && fields[0] == c.First() {
			return e, true
		}
	}
	return syntax.Entity{}, false
}
