// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"github.com/pdiddy/coref-engine/internal/mention"
	"github.com/pdiddy/coref-engine/internal/tree"
)

// RefDeterminer links a description back to a fuller description with the
// same head noun, ignoring the leading determiner:
// "A woman from France was here. The woman was tall."
type RefDeterminer struct{}

func (r *RefDeterminer) Name() string { return NameRefDeterminer }

func (r *RefDeterminer) Match(m, c *mention.Mention, _ []*tree.Tree, _ bool) bool {
	mHead, ok := m.HeadNoun()
	if !ok {
		return false
	}
	cHead, ok := c.HeadNoun()
	if !ok || mHead != cHead {
		return false
	}

	have := make(map[string]bool, len(c.Leaves))
	for _, w := range c.Leaves {
		have[w] = true
	}
	for _, w := range m.Leaves[1:] {
		if !have[w] {
			return false
		}
	}
	return true
}
