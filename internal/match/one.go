// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"github.com/pdiddy/coref-engine/internal/lexicon"
	"github.com/pdiddy/coref-engine/internal/mention"
	"github.com/pdiddy/coref-engine/internal/tree"
)

var oneWords = map[string]bool{"one": true, "ones": true}

// OneSubstitution links "the <modifiers> one(s)" to an earlier phrase
// carrying the same modifiers:
// "A big dog and a small dog came in. The big one was friendly."
type OneSubstitution struct{}

func (o *OneSubstitution) Name() string { return NameOneSubstitution }

// Match applies to anaphors of at least three tokens that start with "the"
// and contain one/ones. Every remaining token must occur in the candidate.
func (o *OneSubstitution) Match(m, c *mention.Mention, _ []*tree.Tree, _ bool) bool {
	if len(m.Leaves) < 3 || lexicon.Fold(m.First()) != "the" {
		return false
	}

	var hasOne bool
	var rest []string
	for _, w := range m.Leaves {
		f := lexicon.Fold(w)
		switch {
		case oneWords[f]:
			hasOne = true
		case f != "the":
			rest = append(rest, f)
		}
	}
	if !hasOne || len(rest) == 0 {
		return false
	}

	have := make(map[string]bool, len(c.Leaves))
	for _, w := range c.Leaves {
		have[lexicon.Fold(w)] = true
	}
	for _, w := range rest {
		if !have[w] {
			return false
		}
	}
	return true
}
