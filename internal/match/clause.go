// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import "github.com/pdiddy/coref-engine/internal/tree"

const labelClause = "S"

// sentence returns the tree of the 1-based sentence index, or nil.
func sentence(sents []*tree.Tree, treeI int) *tree.Tree {
	if treeI < 1 || treeI > len(sents) {
		return nil
	}
	return sents[treeI-1]
}

// smallestClause returns the innermost S node containing all of nodes.
// Such clauses form a chain of ancestors and pre-order visits ancestors
// first, so the last hit is the innermost.
func smallestClause(root *tree.Tree, nodes ...*tree.Tree) *tree.Tree {
	var found *tree.Tree
	for _, n := range root.Subtrees() {
		if n.Label() != labelClause {
			continue
		}
		all := true
		for _, x := range nodes {
			if !n.Contains(x) {
				all = false
				break
			}
		}
		if all {
			found = n
		}
	}
	return found
}

// isMinimalClause reports whether n is an S with no S below it.
func isMinimalClause(n *tree.Tree) bool {
	if n.Label() != labelClause {
		return false
	}
	for _, d := range n.Subtrees()[1:] {
		if d.Label() == labelClause {
			return false
		}
	}
	return true
}

// clausemates reports whether a and b lie in the same minimal clause.
func clausemates(root, a, b *tree.Tree) bool {
	for _, n := range root.Subtrees() {
		if isMinimalClause(n) && n.Contains(a) && n.Contains(b) {
			return true
		}
	}
	return false
}

// firstNP returns the first NP in pre-order under n, or nil.
func firstNP(n *tree.Tree) *tree.Tree {
	for _, s := range n.Subtrees() {
		if s.Label() == "NP" {
			return s
		}
	}
	return nil
}
