// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mention extracts noun-phrase mentions from sentence parse trees.
//
// Candidates are the NP and PRP$ subtrees in pre-order. Because pre-order
// visits a complex phrase before the phrases nested in it, an embedded head
// phrase such as [the man] in [[the man] [from France]] arrives right after
// its container; such fragments are dropped so that only the full phrase
// counts as a mention.
package mention

import (
	"strings"

	"github.com/pdiddy/coref-engine/internal/tree"
)

const (
	labelNP         = "NP"
	labelPossessive = "PRP$"
)

// swallowTags are the tags that, right after an embedded prefix, mark the
// rest of the container as a post-modifier: prepositions and relative
// determiners/pronouns.
var swallowTags = map[string]bool{
	"IN":  true,
	"WDT": true,
	"WP":  true,
}

// nounTags are the common-noun tags collected as head nouns.
var nounTags = map[string]bool{
	"NN":  true,
	"NNS": true,
}

// Mention is one noun-phrase occurrence. It is not modified after Extract
// returns it.
type Mention struct {
	// Tree is the mention's subtree, shared with the sentence tree.
	Tree *tree.Tree

	// Leaves are the mention's tokens.
	Leaves []string

	// I is the 1-based position of the mention within its sentence.
	I int

	// TreeI is the 1-based index of the owning sentence.
	TreeI int

	// Nouns are the common nouns (NN, NNS) in the mention, in pre-order.
	Nouns []string
}

// New wraps a subtree as a mention.
func New(t *tree.Tree, i, treeI int) *Mention {
	return &Mention{
		Tree:   t,
		Leaves: t.Leaves(),
		I:      i,
		TreeI:  treeI,
		Nouns:  nouns(t),
	}
}

// Raw returns the mention text.
func (m *Mention) Raw() string {
	return strings.Join(m.Leaves, " ")
}

// First returns the leading token, or "" for an empty mention.
func (m *Mention) First() string {
	if len(m.Leaves) == 0 {
		return ""
	}
	return m.Leaves[0]
}

// HeadNoun returns the first common noun and whether there is one.
func (m *Mention) HeadNoun() (string, bool) {
	if len(m.Nouns) == 0 {
		return "", false
	}
	return m.Nouns[0], true
}

// Precedes reports whether m comes before other in document order.
func (m *Mention) Precedes(other *Mention) bool {
	if m.TreeI != other.TreeI {
		return m.TreeI < other.TreeI
	}
	return m.I < other.I
}

func nouns(t *tree.Tree) []string {
	var out []string
	for _, p := range t.Preterminals() {
		if nounTags[p.Tag] {
			out = append(out, p.Word)
		}
	}
	return out
}

// Candidates returns the NP and PRP$ subtrees of t in pre-order, before
// fragment filtering.
func Candidates(t *tree.Tree) []*tree.Tree {
	var out []*tree.Tree
	for _, s := range t.Subtrees() {
		if s.Label() == labelNP || s.Label() == labelPossessive {
			out = append(out, s)
		}
	}
	return out
}

// Filter drops embedded fragments. Each candidate is compared only with the
// last candidate kept before it: when its tokens are a strict prefix of that
// predecessor's tokens and the predecessor's next token is tagged as a
// preposition or relative word, the candidate is dropped. The first
// candidate is always kept.
func Filter(candidates []*tree.Tree) []*tree.Tree {
	var kept []*tree.Tree
	for _, c := range candidates {
		if len(kept) > 0 && swallowedBy(c, kept[len(kept)-1]) {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

func swallowedBy(inner, outer *tree.Tree) bool {
	in := inner.Leaves()
	out := outer.Preterminals()
	if len(in) >= len(out) {
		return false
	}
	for i, w := range in {
		if out[i].Word != w {
			return false
		}
	}
	return swallowTags[out[len(in)].Tag]
}

// Extract returns the mentions of one sentence tree. treeI is the 1-based
// sentence index.
func Extract(t *tree.Tree, treeI int) []*Mention {
	kept := Filter(Candidates(t))
	out := make([]*Mention, 0, len(kept))
	for i, s := range kept {
		out = append(out, New(s, i+1, treeI))
	}
	return out
}

// ExtractAll returns the mentions of every sentence in document order.
func ExtractAll(trees []*tree.Tree) []*Mention {
	var out []*Mention
	for i, t := range trees {
		out = append(out, Extract(t, i+1)...)
	}
	return out
}
