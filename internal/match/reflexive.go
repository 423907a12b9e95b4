// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"github.com/pdiddy/coref-engine/internal/mention"
	"github.com/pdiddy/coref-engine/internal/tree"
)

// Reflexive binds a reflexive pronoun to the subject of its clause:
// "John hurt himself."
type Reflexive struct {
	deps Deps
}

func (r *Reflexive) Name() string { return NameReflexive }

// Match requires a local pair whose mention starts with a reflexive and
// whose candidate is the first NP of the innermost clause holding both.
func (r *Reflexive) Match(m, c *mention.Mention, sents []*tree.Tree, local bool) bool {
	if !local || m.TreeI != c.TreeI || !r.deps.Lexicon.IsReflexive(m.First()) {
		return false
	}
	root := sentence(sents, m.TreeI)
	if root == nil {
		return false
	}
	clause := smallestClause(root, m.Tree, c.Tree)
	if clause == nil {
		return false
	}
	return firstNP(clause) == c.Tree
}
